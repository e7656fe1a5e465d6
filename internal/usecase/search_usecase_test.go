package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"caps-connect/internal/domain/scoring"
	"caps-connect/internal/domain/skill"
	"caps-connect/internal/domain/user"

	"github.com/google/uuid"
)

func TestSearchUsecase_RejectsShortQuery(t *testing.T) {
	uc := NewSearchUsecase(mockSkillRepo{}, mockConnectionRepo{}, mockUserRepo{}, stubConfigs{values: scoring.Defaults()}, nil)

	for _, q := range []string{"", "a", "  a  ", "é", " ü "} {
		if _, err := uc.Search(context.Background(), q, 0); !errors.Is(err, ErrQueryTooShort) {
			t.Fatalf("query %q: expected ErrQueryTooShort, got %v", q, err)
		}
	}

	// Two runes are enough, regardless of byte length.
	if _, err := uc.Search(context.Background(), "éé", 0); err != nil {
		t.Fatalf("query \"éé\": unexpected error: %v", err)
	}
}

func TestSearchUsecase_TotalCountsBeyondLimit(t *testing.T) {
	skills := make([]skill.Skill, 0, 30)
	users := map[uuid.UUID]user.User{}
	for i := 0; i < 30; i++ {
		id := uuid.New()
		skills = append(skills, skill.Skill{
			ID:               uuid.New(),
			UserID:           id,
			Category:         "Legal Services",
			SkillName:        fmt.Sprintf("Contract law %d", i),
			WillingnessLevel: skill.WillingnessAdvice,
		})
		users[id] = user.User{ID: id, Email: fmt.Sprintf("u%d@example.org", i)}
	}

	uc := NewSearchUsecase(mockSkillRepo{items: skills}, mockConnectionRepo{}, mockUserRepo{byID: users}, stubConfigs{values: scoring.Defaults()}, nil)

	out, err := uc.Search(context.Background(), "contract", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalResults != 30 {
		t.Fatalf("expected total 30, got %d", out.TotalResults)
	}
	if len(out.Results) != 5 {
		t.Fatalf("expected 5 results after limit, got %d", len(out.Results))
	}
	if out.Query != "contract" {
		t.Fatalf("expected trimmed query echoed back, got %q", out.Query)
	}
}

func TestSearchUsecase_DefaultAndMaxLimits(t *testing.T) {
	skills := make([]skill.Skill, 0, 120)
	for i := 0; i < 120; i++ {
		skills = append(skills, skill.Skill{
			ID:               uuid.New(),
			UserID:           uuid.New(),
			Category:         "Legal Services",
			SkillName:        "Contract review",
			WillingnessLevel: skill.WillingnessAdvice,
		})
	}
	uc := NewSearchUsecase(mockSkillRepo{items: skills}, mockConnectionRepo{}, mockUserRepo{}, stubConfigs{values: scoring.Defaults()}, nil)

	out, err := uc.Search(context.Background(), "contract", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Results) != scoring.DefaultSearchLimit {
		t.Fatalf("expected default limit %d, got %d", scoring.DefaultSearchLimit, len(out.Results))
	}

	out, err = uc.Search(context.Background(), "contract", 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Results) != maxSearchLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxSearchLimit, len(out.Results))
	}
}

func TestSearchUsecase_UpstreamReadFailure(t *testing.T) {
	uc := NewSearchUsecase(mockSkillRepo{err: errors.New("down")}, mockConnectionRepo{}, mockUserRepo{}, stubConfigs{values: scoring.Defaults()}, nil)
	if _, err := uc.Search(context.Background(), "contract", 0); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

type countingSkillRepo struct {
	mockSkillRepo
	calls int
}

func (r *countingSkillRepo) ListAll(ctx context.Context) ([]skill.Skill, error) {
	r.calls++
	return r.mockSkillRepo.ListAll(ctx)
}

func TestSearchUsecase_SecondCallServedFromCache(t *testing.T) {
	id := uuid.New()
	repo := &countingSkillRepo{mockSkillRepo: mockSkillRepo{items: []skill.Skill{{
		ID:               uuid.New(),
		UserID:           id,
		Category:         "Legal Services",
		SkillName:        "Contract review",
		WillingnessLevel: skill.WillingnessAdvice,
	}}}}
	users := map[uuid.UUID]user.User{id: {ID: id, Email: "lawyer@example.org"}}
	cache := &mapCache{entries: map[string][]byte{}}

	uc := NewSearchUsecase(repo, mockConnectionRepo{}, mockUserRepo{byID: users}, stubConfigs{values: scoring.Defaults()}, cache)

	first, err := uc.Search(context.Background(), "contract", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same normalized query, different casing and padding.
	second, err := uc.Search(context.Background(), "  Contract ", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.calls != 1 {
		t.Fatalf("expected a single repository scan, got %d", repo.calls)
	}
	if second.TotalResults != first.TotalResults || len(second.Results) != len(first.Results) {
		t.Fatalf("expected cached output to match, got %+v vs %+v", second, first)
	}
	if second.Results[0].UserEmail != "lawyer@example.org" {
		t.Fatalf("expected enrichment preserved through the cache, got %+v", second.Results[0])
	}
}

func TestSearchCacheKey_NormalizesQuery(t *testing.T) {
	if SearchCacheKey("  Yoga  Teacher ", 20) != SearchCacheKey("yoga teacher", 20) {
		t.Fatal("expected casing and whitespace to normalize to one key")
	}
	if SearchCacheKey("yoga", 20) == SearchCacheKey("yoga", 50) {
		t.Fatal("expected different limits to key separately")
	}
}
