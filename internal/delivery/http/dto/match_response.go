package dto

import (
	"caps-connect/internal/usecase"

	"github.com/google/uuid"
)

type MatchDetailsResponse struct {
	DirectSkillMatches int `json:"directSkillMatches"`
	ConnectionMatches  int `json:"connectionMatches"`
	HobbySkillMatches  int `json:"hobbySkillMatches"`
}

type MatchUserResponse struct {
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Bio          string `json:"bio,omitempty"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

type MatchResultResponse struct {
	UserID        uuid.UUID            `json:"userId"`
	Score         float64              `json:"score"`
	StrengthMeter int                  `json:"strengthMeter"`
	Details       MatchDetailsResponse `json:"matchDetails"`
	User          MatchUserResponse    `json:"user"`
}

func NewMatchResultResponse(it usecase.MatchItem) MatchResultResponse {
	return MatchResultResponse{
		UserID:        it.UserID,
		Score:         it.Score,
		StrengthMeter: it.StrengthMeter,
		Details: MatchDetailsResponse{
			DirectSkillMatches: it.Details.DirectSkillMatches,
			ConnectionMatches:  it.Details.ConnectionMatches,
			HobbySkillMatches:  it.Details.HobbySkillMatches,
		},
		User: MatchUserResponse{
			Email:        it.UserEmail,
			Name:         it.UserName,
			PhoneNumber:  it.UserPhone,
			Bio:          it.UserBio,
			ProfilePhoto: it.UserPhoto,
		},
	}
}
