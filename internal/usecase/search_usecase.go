package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"caps-connect/internal/domain/scoring"
	"caps-connect/internal/domain/user"
	"caps-connect/internal/repository"

	"github.com/google/uuid"
)

var ErrQueryTooShort = errors.New("query too short")

const (
	minQueryLength = 2
	maxSearchLimit = 100

	// searchScanLimit bounds the candidate list scored before the caller's
	// limit applies; it exists so metadata can report the full match count.
	searchScanLimit = 1000
)

type SearchItem struct {
	scoring.SearchResult

	UserEmail string
	UserName  string
	UserPhone string
	UserBio   string
	UserPhoto string
}

type SearchOutput struct {
	Query        string
	TotalResults int
	Results      []SearchItem
}

type SearchUsecase interface {
	Search(ctx context.Context, query string, limit int) (SearchOutput, error)
}

type Search struct {
	skills      repository.SkillRepository
	connections repository.ConnectionRepository
	users       user.Repository
	configs     ScoringConfigUsecase
	cache       Cache
}

func NewSearchUsecase(
	skills repository.SkillRepository,
	connections repository.ConnectionRepository,
	users user.Repository,
	configs ScoringConfigUsecase,
	cache Cache,
) *Search {
	return &Search{skills: skills, connections: connections, users: users, configs: configs, cache: cache}
}

func (u *Search) Search(ctx context.Context, query string, limit int) (SearchOutput, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLength {
		return SearchOutput{}, ErrQueryTooShort
	}

	if limit <= 0 {
		limit = scoring.DefaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	cacheKey := SearchCacheKey(query, limit)
	if u.cache != nil {
		var cached SearchOutput
		if ok, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	skills, err := u.skills.ListAll(ctx)
	if err != nil {
		return SearchOutput{}, ErrInternal
	}
	connections, err := u.connections.ListAll(ctx)
	if err != nil {
		return SearchOutput{}, ErrInternal
	}

	values := u.configs.ActiveValues(ctx)
	matched := scoring.SearchMatches(query, skills, connections, values, searchScanLimit)

	total := len(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}

	items, err := u.enrich(ctx, matched)
	if err != nil {
		return SearchOutput{}, ErrInternal
	}

	out := SearchOutput{Query: query, TotalResults: total, Results: items}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, searchCacheTTL)
	}
	return out, nil
}

func (u *Search) enrich(ctx context.Context, results []scoring.SearchResult) ([]SearchItem, error) {
	ids := make([]uuid.UUID, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.UserID)
	}

	profiles, err := u.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]SearchItem, 0, len(results))
	for _, r := range results {
		item := SearchItem{SearchResult: r}
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
