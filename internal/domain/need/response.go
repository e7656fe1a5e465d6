package need

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrResponseNotFound = errors.New("need response not found")

type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "pending"
	ResponseReviewed ResponseStatus = "reviewed"
	ResponseAccepted ResponseStatus = "accepted"
	ResponseDeclined ResponseStatus = "declined"
)

func IsValidResponseStatus(v string) bool {
	switch ResponseStatus(v) {
	case ResponsePending, ResponseReviewed, ResponseAccepted, ResponseDeclined:
		return true
	}
	return false
}

// Response is a member volunteering for a need. Status moves from pending
// through an admin review; ReviewedAt is nil until then.
type Response struct {
	ID         uuid.UUID
	NeedID     uuid.UUID
	UserID     uuid.UUID
	Message    string
	Status     ResponseStatus
	AdminNotes string
	CreatedAt  time.Time
	ReviewedAt *time.Time
}
