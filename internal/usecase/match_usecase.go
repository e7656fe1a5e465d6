package usecase

import (
	"context"
	"errors"

	"caps-connect/internal/domain/need"
	"caps-connect/internal/domain/scoring"
	"caps-connect/internal/domain/user"
	"caps-connect/internal/repository"

	"github.com/google/uuid"
)

var ErrNeedNotFound = errors.New("need not found")

type MatchParams struct {
	NeedID   *uuid.UUID
	Category string
}

// MatchItem is an engine result enriched with the candidate's profile.
type MatchItem struct {
	scoring.MatchResult

	UserEmail string
	UserName  string
	UserPhone string
	UserBio   string
	UserPhoto string
}

type MatchList struct {
	Category string
	NeedID   *uuid.UUID
	Results  []MatchItem
}

type MatchingUsecase interface {
	TopMatches(ctx context.Context, params MatchParams) (MatchList, error)
}

type Matching struct {
	needs       repository.NeedRepository
	skills      repository.SkillRepository
	connections repository.ConnectionRepository
	users       user.Repository
	configs     ScoringConfigUsecase
}

func NewMatchingUsecase(
	needs repository.NeedRepository,
	skills repository.SkillRepository,
	connections repository.ConnectionRepository,
	users user.Repository,
	configs ScoringConfigUsecase,
) *Matching {
	return &Matching{needs: needs, skills: skills, connections: connections, users: users, configs: configs}
}

func (u *Matching) TopMatches(ctx context.Context, params MatchParams) (MatchList, error) {
	category := params.Category

	if params.NeedID != nil {
		n, err := u.needs.GetByID(ctx, *params.NeedID)
		if err != nil {
			if errors.Is(err, need.ErrNotFound) {
				return MatchList{}, ErrNeedNotFound
			}
			return MatchList{}, ErrInternal
		}
		category = n.Category
	}

	if category == "" {
		return MatchList{}, ErrInvalidInput
	}

	skills, err := u.skills.ListAll(ctx)
	if err != nil {
		return MatchList{}, ErrInternal
	}
	connections, err := u.connections.ListAll(ctx)
	if err != nil {
		return MatchList{}, ErrInternal
	}

	values := u.configs.ActiveValues(ctx)
	results := scoring.ScoreMatches(category, skills, connections, values)

	items, err := u.enrich(ctx, results)
	if err != nil {
		return MatchList{}, ErrInternal
	}

	return MatchList{Category: category, NeedID: params.NeedID, Results: items}, nil
}

func (u *Matching) enrich(ctx context.Context, results []scoring.MatchResult) ([]MatchItem, error) {
	ids := make([]uuid.UUID, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.UserID)
	}

	profiles, err := u.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]MatchItem, 0, len(results))
	for _, r := range results {
		item := MatchItem{MatchResult: r}
		if p, ok := profiles[r.UserID]; ok {
			item.UserEmail = p.Email
			item.UserName = p.DisplayName
			item.UserPhone = p.PhoneNumber
			item.UserBio = p.Bio
			item.UserPhoto = p.ProfilePhoto
		}
		items = append(items, item)
	}
	return items, nil
}
