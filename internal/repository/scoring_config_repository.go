package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"caps-connect/internal/database"
	"caps-connect/internal/domain/scoring"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNoActiveConfig = errors.New("no active scoring config")

type ScoringConfigRepository interface {
	Active(ctx context.Context) (scoring.Config, error)
	// CreateActive persists a new active config, deactivating all prior
	// active configs in the same transaction.
	CreateActive(ctx context.Context, values scoring.Values, analysis *scoring.AIAnalysis) (scoring.Config, error)
}

type PostgresScoringConfigRepository struct {
	db database.DB
}

func NewPostgresScoringConfigRepository(db database.DB) *PostgresScoringConfigRepository {
	return &PostgresScoringConfigRepository{db: db}
}

func (r *PostgresScoringConfigRepository) Active(ctx context.Context) (scoring.Config, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, config, ai_analysis, is_active, created_at, updated_at
		 FROM scoring_configs
		 WHERE is_active
		 ORDER BY created_at DESC
		 LIMIT 1`,
	)

	var (
		cfg         scoring.Config
		rawValues   []byte
		rawAnalysis []byte
	)
	if err := row.Scan(&cfg.ID, &rawValues, &rawAnalysis, &cfg.IsActive, &cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return scoring.Config{}, ErrNoActiveConfig
		}
		return scoring.Config{}, err
	}

	values, err := decodeValues(rawValues)
	if err != nil {
		return scoring.Config{}, err
	}
	cfg.Values = values

	if len(rawAnalysis) > 0 {
		var a scoring.AIAnalysis
		if err := json.Unmarshal(rawAnalysis, &a); err != nil {
			return scoring.Config{}, fmt.Errorf("decode ai analysis: %w", err)
		}
		cfg.AIAnalysis = &a
	}

	return cfg, nil
}

func (r *PostgresScoringConfigRepository) CreateActive(ctx context.Context, values scoring.Values, analysis *scoring.AIAnalysis) (scoring.Config, error) {
	rawValues, err := json.Marshal(values)
	if err != nil {
		return scoring.Config{}, err
	}

	var rawAnalysis []byte
	if analysis != nil {
		rawAnalysis, err = json.Marshal(analysis)
		if err != nil {
			return scoring.Config{}, err
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return scoring.Config{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `UPDATE scoring_configs SET is_active = FALSE, updated_at = now() WHERE is_active`); err != nil {
		return scoring.Config{}, err
	}

	cfg := scoring.Config{
		ID:         uuid.New(),
		Values:     values,
		AIAnalysis: analysis,
		IsActive:   true,
	}
	row := tx.QueryRow(
		ctx,
		`INSERT INTO scoring_configs (id, config, ai_analysis, is_active)
		 VALUES ($1, $2, $3, TRUE)
		 RETURNING created_at, updated_at`,
		cfg.ID, rawValues, rawAnalysis,
	)
	if err := row.Scan(&cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
		return scoring.Config{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return scoring.Config{}, err
	}
	return cfg, nil
}

// decodeValues is the single decode boundary between the stored JSONB and the
// typed scoring values. Missing fields fall back to the engine defaults so a
// partially written record never zeroes out a weight.
func decodeValues(raw []byte) (scoring.Values, error) {
	values := scoring.Defaults()
	if len(raw) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return scoring.Values{}, fmt.Errorf("decode scoring config: %w", err)
	}
	if values.WillingnessMultipliers == nil {
		values.WillingnessMultipliers = scoring.Defaults().WillingnessMultipliers
	}
	if values.RelationshipMultipliers == nil {
		values.RelationshipMultipliers = scoring.Defaults().RelationshipMultipliers
	}
	if values.StrengthMeterThresholds == (scoring.Thresholds{}) {
		values.StrengthMeterThresholds = scoring.Defaults().StrengthMeterThresholds
	}
	return values, nil
}
