package dto

import (
	"time"

	"caps-connect/internal/domain/need"

	"github.com/google/uuid"
)

type NeedResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewNeedResponse(n need.Need) NeedResponse {
	return NeedResponse{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Category:    n.Category,
		CreatedBy:   n.CreatedBy,
		IsActive:    n.IsActive,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}
