package scoring

import (
	"sort"

	"caps-connect/internal/domain/connection"
	"caps-connect/internal/domain/skill"

	"github.com/google/uuid"
)

// MaxMatches caps the number of results a category match returns.
const MaxMatches = 10

type MatchDetails struct {
	DirectSkillMatches int
	ConnectionMatches  int
	HobbySkillMatches  int
}

type MatchResult struct {
	UserID        uuid.UUID
	Score         float64
	StrengthMeter int
	Details       MatchDetails
}

type tally struct {
	score   float64
	details MatchDetails
}

// ScoreMatches ranks candidate users for a need in the target category.
//
// Skills outside the category contribute nothing. A connection only counts for
// a user who already earned skill points: social capital amplifies skill
// relevance but never substitutes for it. Connections of an eligible user are
// not filtered by sector; every one of them counts. Results are ordered by
// score descending (first-seen order on ties) and truncated to MaxMatches.
func ScoreMatches(targetCategory string, skills []skill.Skill, connections []connection.Connection, cfg Values) []MatchResult {
	tallies := make(map[uuid.UUID]*tally)
	order := make([]uuid.UUID, 0)

	for _, s := range skills {
		if s.Category != targetCategory {
			continue
		}

		base := cfg.Weights.DirectSkill
		if s.IsHobby {
			base = cfg.Weights.HobbySkill
		}
		points := base * cfg.willingnessMultiplier(s.WillingnessLevel)

		t, ok := tallies[s.UserID]
		if !ok {
			t = &tally{}
			tallies[s.UserID] = t
			order = append(order, s.UserID)
		}
		t.score += points
		if s.IsHobby {
			t.details.HobbySkillMatches++
		} else {
			t.details.DirectSkillMatches++
		}
	}

	if len(tallies) == 0 {
		return []MatchResult{}
	}

	for _, c := range connections {
		t, ok := tallies[c.UserID]
		if !ok {
			continue
		}
		t.score += cfg.Weights.Connection * cfg.relationshipMultiplier(c.RelationshipStrength)
		t.details.ConnectionMatches++
	}

	var maxScore float64
	for _, t := range tallies {
		if t.score > maxScore {
			maxScore = t.score
		}
	}

	results := make([]MatchResult, 0, len(order))
	for _, id := range order {
		t := tallies[id]
		results = append(results, MatchResult{
			UserID:        id,
			Score:         t.score,
			StrengthMeter: ToStrengthMeter(t.score, maxScore, cfg.StrengthMeterThresholds),
			Details:       t.details,
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > MaxMatches {
		results = results[:MaxMatches]
	}
	return results
}
