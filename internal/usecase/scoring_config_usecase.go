package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"caps-connect/internal/domain/scoring"
	"caps-connect/internal/recommender"
	"caps-connect/internal/repository"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

const (
	activeConfigCacheKey = "scoring:config:active"
	activeConfigCacheTTL = 5 * time.Minute
)

// ActiveConfig is the active scoring configuration plus whether it is the
// built-in default rather than a persisted record.
type ActiveConfig struct {
	Config    scoring.Config
	IsDefault bool
}

type ScoringConfigUsecase interface {
	// Active never fails: any retrieval problem yields the built-in
	// defaults flagged IsDefault.
	Active(ctx context.Context) ActiveConfig
	// ActiveValues is the engine-facing shortcut used by the scorers.
	ActiveValues(ctx context.Context) scoring.Values
	// Recompute gathers dataset statistics, asks the recommender chain for
	// new values, and atomically replaces the active config.
	Recompute(ctx context.Context) (scoring.Config, error)
}

type ScoringConfig struct {
	configs  repository.ScoringConfigRepository
	stats    repository.StatsRepository
	advisor  recommender.Recommender
	fallback recommender.Recommender
	cache    Cache
	logger   *log.Logger

	// onActivated runs after a new config is committed (websocket fan-out).
	onActivated func(scoring.Config)
}

func NewScoringConfigUsecase(
	configs repository.ScoringConfigRepository,
	stats repository.StatsRepository,
	advisor recommender.Recommender,
	cache Cache,
	logger *log.Logger,
	onActivated func(scoring.Config),
) *ScoringConfig {
	if logger == nil {
		logger = log.Default()
	}
	return &ScoringConfig{
		configs:     configs,
		stats:       stats,
		advisor:     advisor,
		fallback:    recommender.Fallback{},
		cache:       cache,
		logger:      logger,
		onActivated: onActivated,
	}
}

func (u *ScoringConfig) Active(ctx context.Context) ActiveConfig {
	if u.cache != nil {
		var cached ActiveConfig
		if ok, err := u.cache.GetJSON(ctx, activeConfigCacheKey, &cached); err == nil && ok {
			return cached
		}
	}

	out := u.load(ctx)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, activeConfigCacheKey, out, activeConfigCacheTTL)
	}
	return out
}

func (u *ScoringConfig) load(ctx context.Context) ActiveConfig {
	if u.configs != nil {
		cfg, err := u.configs.Active(ctx)
		if err == nil {
			return ActiveConfig{Config: cfg}
		}
		if !errors.Is(err, repository.ErrNoActiveConfig) {
			u.logger.Printf("[ScoringConfig] falling back to defaults: %v", err)
		}
	}

	now := time.Now().UTC()
	return ActiveConfig{
		Config: scoring.Config{
			Values:    scoring.Defaults(),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		IsDefault: true,
	}
}

func (u *ScoringConfig) ActiveValues(ctx context.Context) scoring.Values {
	return u.Active(ctx).Config.Values
}

func (u *ScoringConfig) Recompute(ctx context.Context) (scoring.Config, error) {
	stats, err := u.stats.Collect(ctx)
	if err != nil {
		return scoring.Config{}, ErrInternal
	}

	rec := u.recommend(ctx, stats)

	analysis := &scoring.AIAnalysis{
		Reasoning:          rec.Reasoning,
		Confidence:         rec.Confidence,
		DataPointsAnalyzed: stats.DataPoints(),
		LastAnalyzedAt:     time.Now().UTC(),
	}

	cfg, err := u.configs.CreateActive(ctx, rec.Values, analysis)
	if err != nil {
		return scoring.Config{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, activeConfigCacheKey)
		// Cached search results were scored with the old weights.
		_ = u.cache.DeleteByPattern(ctx, searchCachePattern)
	}
	if u.onActivated != nil {
		u.onActivated(cfg)
	}

	return cfg, nil
}

func (u *ScoringConfig) recommend(ctx context.Context, stats recommender.DataStats) recommender.Recommendation {
	if u.advisor != nil {
		rec, err := u.advisor.Recommend(ctx, stats)
		if err == nil {
			return rec
		}
		u.logger.Printf("[ScoringConfig] advisor failed, using fallback: %v", err)
	}

	rec, _ := u.fallback.Recommend(ctx, stats)
	return rec
}
