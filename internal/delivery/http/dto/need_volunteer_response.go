package dto

import (
	"time"

	"caps-connect/internal/domain/need"
	"caps-connect/internal/usecase"

	"github.com/google/uuid"
)

// NeedVolunteerResponse is a member's response to a need. The user fields are
// populated only on the admin review listing.
type NeedVolunteerResponse struct {
	ID         uuid.UUID  `json:"id"`
	NeedID     uuid.UUID  `json:"needId"`
	UserID     uuid.UUID  `json:"userId"`
	UserName   string     `json:"userName,omitempty"`
	UserEmail  string     `json:"userEmail,omitempty"`
	UserPhoto  string     `json:"userProfilePhoto,omitempty"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	AdminNotes string     `json:"adminNotes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
}

func NewNeedVolunteerResponse(r need.Response) NeedVolunteerResponse {
	return NeedVolunteerResponse{
		ID:         r.ID,
		NeedID:     r.NeedID,
		UserID:     r.UserID,
		Message:    r.Message,
		Status:     string(r.Status),
		AdminNotes: r.AdminNotes,
		CreatedAt:  r.CreatedAt,
		ReviewedAt: r.ReviewedAt,
	}
}

func NewEnrichedNeedVolunteerResponse(item usecase.NeedResponseItem) NeedVolunteerResponse {
	out := NewNeedVolunteerResponse(item.Response)
	out.UserName = item.UserName
	out.UserEmail = item.UserEmail
	out.UserPhoto = item.UserPhoto
	return out
}
