package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string

	DisplayName  string
	FirstName    string
	LastName     string
	PhoneNumber  string
	Bio          string
	ProfilePhoto string
	LinkedinURL  string
	Location     string

	IsAdmin            bool
	OnboardingComplete bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile carries the editable subset of a user record.
type Profile struct {
	DisplayName  string
	FirstName    string
	LastName     string
	PhoneNumber  string
	Bio          string
	ProfilePhoto string
	LinkedinURL  string
	Location     string
}
