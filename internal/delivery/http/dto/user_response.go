package dto

import (
	"time"

	"caps-connect/internal/domain/user"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	DisplayName        string    `json:"displayName,omitempty"`
	FirstName          string    `json:"firstName,omitempty"`
	LastName           string    `json:"lastName,omitempty"`
	PhoneNumber        string    `json:"phoneNumber,omitempty"`
	Bio                string    `json:"bio,omitempty"`
	ProfilePhoto       string    `json:"profilePhoto,omitempty"`
	LinkedinURL        string    `json:"linkedinUrl,omitempty"`
	Location           string    `json:"location,omitempty"`
	IsAdmin            bool      `json:"isAdmin"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt"`
}

func NewUserProfileResponse(u user.User) UserProfileResponse {
	return UserProfileResponse{
		ID:                 u.ID,
		Email:              u.Email,
		DisplayName:        u.DisplayName,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		PhoneNumber:        u.PhoneNumber,
		Bio:                u.Bio,
		ProfilePhoto:       u.ProfilePhoto,
		LinkedinURL:        u.LinkedinURL,
		Location:           u.Location,
		IsAdmin:            u.IsAdmin,
		OnboardingComplete: u.OnboardingComplete,
		CreatedAt:          u.CreatedAt,
	}
}

type AuthResponse struct {
	User         UserProfileResponse `json:"user"`
	AccessToken  string              `json:"accessToken"`
	RefreshToken string              `json:"refreshToken"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
