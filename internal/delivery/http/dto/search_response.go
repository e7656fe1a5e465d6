package dto

import (
	"caps-connect/internal/domain/connection"
	"caps-connect/internal/domain/skill"
	"caps-connect/internal/usecase"

	"github.com/google/uuid"
)

type MatchedSkillResponse struct {
	ID               uuid.UUID `json:"id"`
	Category         string    `json:"category"`
	SkillName        string    `json:"skillName"`
	WillingnessLevel string    `json:"willingnessLevel"`
	IsHobby          bool      `json:"isHobby"`
}

type MatchedConnectionResponse struct {
	ID                   uuid.UUID `json:"id"`
	Sector               string    `json:"sector"`
	OrganizationName     string    `json:"organizationName"`
	ContactName          string    `json:"contactName,omitempty"`
	RelationshipStrength string    `json:"relationshipStrength"`
}

type SearchResultResponse struct {
	UserID             uuid.UUID                   `json:"userId"`
	Score              float64                     `json:"score"`
	StrengthMeter      int                         `json:"strengthMeter"`
	MatchedSkills      []MatchedSkillResponse      `json:"matchedSkills"`
	MatchedConnections []MatchedConnectionResponse `json:"matchedConnections"`
	User               MatchUserResponse           `json:"user"`
}

func NewSearchResultResponse(it usecase.SearchItem) SearchResultResponse {
	return SearchResultResponse{
		UserID:             it.UserID,
		Score:              it.Score,
		StrengthMeter:      it.StrengthMeter,
		MatchedSkills:      newMatchedSkills(it.MatchedSkills),
		MatchedConnections: newMatchedConnections(it.MatchedConnections),
		User: MatchUserResponse{
			Email:        it.UserEmail,
			Name:         it.UserName,
			PhoneNumber:  it.UserPhone,
			Bio:          it.UserBio,
			ProfilePhoto: it.UserPhoto,
		},
	}
}

func newMatchedSkills(skills []skill.Skill) []MatchedSkillResponse {
	out := make([]MatchedSkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, MatchedSkillResponse{
			ID:               s.ID,
			Category:         s.Category,
			SkillName:        s.SkillName,
			WillingnessLevel: string(s.WillingnessLevel),
			IsHobby:          s.IsHobby,
		})
	}
	return out
}

func newMatchedConnections(conns []connection.Connection) []MatchedConnectionResponse {
	out := make([]MatchedConnectionResponse, 0, len(conns))
	for _, c := range conns {
		out = append(out, MatchedConnectionResponse{
			ID:                   c.ID,
			Sector:               c.Sector,
			OrganizationName:     c.OrganizationName,
			ContactName:          c.ContactName,
			RelationshipStrength: string(c.RelationshipStrength),
		})
	}
	return out
}
