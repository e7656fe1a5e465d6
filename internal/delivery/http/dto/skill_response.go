package dto

import (
	"time"

	"caps-connect/internal/domain/connection"
	"caps-connect/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID               uuid.UUID `json:"id"`
	Category         string    `json:"category"`
	SkillName        string    `json:"skillName"`
	WillingnessLevel string    `json:"willingnessLevel"`
	IsHobby          bool      `json:"isHobby"`
	CreatedAt        time.Time `json:"createdAt"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:               s.ID,
		Category:         s.Category,
		SkillName:        s.SkillName,
		WillingnessLevel: string(s.WillingnessLevel),
		IsHobby:          s.IsHobby,
		CreatedAt:        s.CreatedAt,
	}
}

type ConnectionResponse struct {
	ID                   uuid.UUID `json:"id"`
	Sector               string    `json:"sector"`
	OrganizationName     string    `json:"organizationName"`
	ContactName          string    `json:"contactName,omitempty"`
	RelationshipStrength string    `json:"relationshipStrength"`
	CreatedAt            time.Time `json:"createdAt"`
}

func NewConnectionResponse(c connection.Connection) ConnectionResponse {
	return ConnectionResponse{
		ID:                   c.ID,
		Sector:               c.Sector,
		OrganizationName:     c.OrganizationName,
		ContactName:          c.ContactName,
		RelationshipStrength: string(c.RelationshipStrength),
		CreatedAt:            c.CreatedAt,
	}
}
