package scoring

import (
	"time"

	"caps-connect/internal/domain/connection"
	"caps-connect/internal/domain/skill"

	"github.com/google/uuid"
)

type Weights struct {
	DirectSkill float64 `json:"directSkill"`
	Connection  float64 `json:"connection"`
	HobbySkill  float64 `json:"hobbySkill"`
}

type Thresholds struct {
	Tier5 float64 `json:"tier5"`
	Tier4 float64 `json:"tier4"`
	Tier3 float64 `json:"tier3"`
	Tier2 float64 `json:"tier2"`
}

// Values is the tunable part of a scoring configuration: the weights,
// multipliers and strength-meter thresholds the engine reads.
type Values struct {
	Weights                 Weights                                     `json:"weights"`
	WillingnessMultipliers  map[skill.WillingnessLevel]float64          `json:"willingnessMultipliers"`
	RelationshipMultipliers map[connection.RelationshipStrength]float64 `json:"relationshipMultipliers"`
	StrengthMeterThresholds Thresholds                                  `json:"strengthMeterThresholds"`
}

type AIAnalysis struct {
	Reasoning          string    `json:"reasoning"`
	Confidence         float64   `json:"confidence"`
	DataPointsAnalyzed int       `json:"dataPointsAnalyzed"`
	LastAnalyzedAt     time.Time `json:"lastAnalyzedAt"`
}

// Config is a persisted, versioned scoring configuration. At most one config
// is active at a time; activation of a new one deactivates all priors.
type Config struct {
	ID         uuid.UUID
	Values     Values
	AIAnalysis *AIAnalysis
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Defaults returns the built-in scoring values used whenever no active config
// is persisted or retrieval fails. Every consumer reads this one table.
func Defaults() Values {
	return Values{
		Weights: Weights{DirectSkill: 3, Connection: 2, HobbySkill: 1},
		WillingnessMultipliers: map[skill.WillingnessLevel]float64{
			skill.WillingnessProBono:  3,
			skill.WillingnessSponsor:  2.5,
			skill.WillingnessDiscount: 1.5,
			skill.WillingnessAdvice:   1,
			skill.WillingnessVendor:   0.75,
		},
		RelationshipMultipliers: map[connection.RelationshipStrength]float64{
			connection.RelationshipDecisionMaker: 1.5,
			connection.RelationshipStrongContact: 1.2,
			connection.RelationshipAcquaintance:  1,
		},
		StrengthMeterThresholds: Thresholds{Tier5: 0.8, Tier4: 0.6, Tier3: 0.4, Tier2: 0.2},
	}
}

func (v Values) willingnessMultiplier(level skill.WillingnessLevel) float64 {
	if m, ok := v.WillingnessMultipliers[level]; ok {
		return m
	}
	return 1
}

func (v Values) relationshipMultiplier(strength connection.RelationshipStrength) float64 {
	if m, ok := v.RelationshipMultipliers[strength]; ok {
		return m
	}
	return 1
}
