package scoring

import (
	"sort"
	"strings"

	"caps-connect/internal/domain/connection"
	"caps-connect/internal/domain/skill"

	"github.com/google/uuid"
)

// DefaultSearchLimit applies when the caller supplies no limit.
const DefaultSearchLimit = 20

type SearchResult struct {
	MatchResult
	MatchedSkills      []skill.Skill
	MatchedConnections []connection.Connection
}

// SearchMatches scores users against a free-text query using case-insensitive
// substring matching over skill category and name, and connection sector,
// organization and contact name.
//
// Unlike ScoreMatches, a connection match counts even for users with no
// matching skill. Search is exploratory discovery; need-matching is
// skill-first. That asymmetry is deliberate and load-bearing.
func SearchMatches(query string, skills []skill.Skill, connections []connection.Connection, cfg Values, limit int) []SearchResult {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	q := strings.ToLower(strings.TrimSpace(query))

	tallies := make(map[uuid.UUID]*searchTally)
	order := make([]uuid.UUID, 0)

	get := func(id uuid.UUID) *searchTally {
		t, ok := tallies[id]
		if !ok {
			t = &searchTally{}
			tallies[id] = t
			order = append(order, id)
		}
		return t
	}

	for _, s := range skills {
		if !containsFold(s.Category, q) && !containsFold(s.SkillName, q) {
			continue
		}

		base := cfg.Weights.DirectSkill
		if s.IsHobby {
			base = cfg.Weights.HobbySkill
		}

		t := get(s.UserID)
		t.score += base * cfg.willingnessMultiplier(s.WillingnessLevel)
		if s.IsHobby {
			t.details.HobbySkillMatches++
		} else {
			t.details.DirectSkillMatches++
		}
		t.skills = append(t.skills, s)
	}

	for _, c := range connections {
		if !containsFold(c.Sector, q) && !containsFold(c.OrganizationName, q) && !containsFold(c.ContactName, q) {
			continue
		}

		t := get(c.UserID)
		t.score += cfg.Weights.Connection * cfg.relationshipMultiplier(c.RelationshipStrength)
		t.details.ConnectionMatches++
		t.connections = append(t.connections, c)
	}

	var maxScore float64
	for _, t := range tallies {
		if t.score > maxScore {
			maxScore = t.score
		}
	}

	results := make([]SearchResult, 0, len(order))
	for _, id := range order {
		t := tallies[id]
		results = append(results, SearchResult{
			MatchResult: MatchResult{
				UserID:        id,
				Score:         t.score,
				StrengthMeter: ToStrengthMeter(t.score, maxScore, cfg.StrengthMeterThresholds),
				Details:       t.details,
			},
			MatchedSkills:      t.skills,
			MatchedConnections: t.connections,
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

type searchTally struct {
	score       float64
	details     MatchDetails
	skills      []skill.Skill
	connections []connection.Connection
}

func containsFold(s, lowered string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), lowered)
}
