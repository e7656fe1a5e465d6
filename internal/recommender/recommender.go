package recommender

import (
	"context"

	"caps-connect/internal/domain/connection"
	"caps-connect/internal/domain/scoring"
	"caps-connect/internal/domain/skill"
)

// DataStats summarizes the community dataset for weight recommendation.
type DataStats struct {
	TotalUsers       int `json:"totalUsers"`
	TotalSkills      int `json:"totalSkills"`
	TotalConnections int `json:"totalConnections"`
	TotalNeeds       int `json:"totalNeeds"`

	SkillsByWillingness   map[string]int `json:"skillsByWillingness"`
	ConnectionsByStrength map[string]int `json:"connectionsByStrength"`
	SkillsByCategory      map[string]int `json:"skillsByCategory"`
}

func (s DataStats) DataPoints() int {
	return s.TotalUsers + s.TotalSkills + s.TotalConnections
}

type Recommendation struct {
	Values     scoring.Values
	Reasoning  string
	Confidence float64
}

// Recommender proposes scoring values from dataset statistics. The production
// implementation consults an external model; Fallback is pure and always
// succeeds.
type Recommender interface {
	Recommend(ctx context.Context, stats DataStats) (Recommendation, error)
}

const fallbackReasoning = "Using optimized defaults (OpenAI unavailable)."

// Fallback returns a fixed, slightly more aggressive tuning than the engine
// defaults. It never fails, so a recommender chain ending in Fallback never
// surfaces an error to the caller.
type Fallback struct{}

func (Fallback) Recommend(_ context.Context, _ DataStats) (Recommendation, error) {
	return Recommendation{
		Values: scoring.Values{
			Weights: scoring.Weights{DirectSkill: 3.5, Connection: 2.5, HobbySkill: 1.2},
			WillingnessMultipliers: map[skill.WillingnessLevel]float64{
				skill.WillingnessProBono:  3.2,
				skill.WillingnessSponsor:  2.6,
				skill.WillingnessDiscount: 1.6,
				skill.WillingnessAdvice:   1.1,
				skill.WillingnessVendor:   0.8,
			},
			RelationshipMultipliers: map[connection.RelationshipStrength]float64{
				connection.RelationshipDecisionMaker: 1.6,
				connection.RelationshipStrongContact: 1.25,
				connection.RelationshipAcquaintance:  1,
			},
			StrengthMeterThresholds: scoring.Thresholds{Tier5: 0.78, Tier4: 0.58, Tier3: 0.38, Tier2: 0.18},
		},
		Reasoning:  fallbackReasoning,
		Confidence: 0.6,
	}, nil
}
