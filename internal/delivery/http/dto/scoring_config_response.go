package dto

import (
	"time"

	"caps-connect/internal/domain/scoring"
	"caps-connect/internal/usecase"

	"github.com/google/uuid"
)

type AIAnalysisResponse struct {
	Reasoning          string    `json:"reasoning"`
	Confidence         float64   `json:"confidence"`
	DataPointsAnalyzed int       `json:"dataPointsAnalyzed"`
	LastAnalyzedAt     time.Time `json:"lastAnalyzedAt"`
}

type ScoringConfigResponse struct {
	ID         uuid.UUID           `json:"id,omitempty"`
	Values     scoring.Values      `json:"values"`
	AIAnalysis *AIAnalysisResponse `json:"aiAnalysis,omitempty"`
	IsActive   bool                `json:"isActive"`
	IsDefault  bool                `json:"isDefault"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

func NewScoringConfigResponse(cfg scoring.Config, isDefault bool) ScoringConfigResponse {
	out := ScoringConfigResponse{
		ID:        cfg.ID,
		Values:    cfg.Values,
		IsActive:  cfg.IsActive,
		IsDefault: isDefault,
		CreatedAt: cfg.CreatedAt,
		UpdatedAt: cfg.UpdatedAt,
	}
	if cfg.AIAnalysis != nil {
		out.AIAnalysis = &AIAnalysisResponse{
			Reasoning:          cfg.AIAnalysis.Reasoning,
			Confidence:         cfg.AIAnalysis.Confidence,
			DataPointsAnalyzed: cfg.AIAnalysis.DataPointsAnalyzed,
			LastAnalyzedAt:     cfg.AIAnalysis.LastAnalyzedAt,
		}
	}
	return out
}

func NewActiveConfigResponse(ac usecase.ActiveConfig) ScoringConfigResponse {
	return NewScoringConfigResponse(ac.Config, ac.IsDefault)
}
