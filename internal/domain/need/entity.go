package need

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("need not found")

// Need is a community request for help, tagged with a skill category.
type Need struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    string
	CreatedBy   uuid.UUID
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
