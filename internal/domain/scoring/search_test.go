package scoring

import (
	"testing"

	"caps-connect/internal/domain/connection"
	"caps-connect/internal/domain/skill"

	"github.com/google/uuid"
)

func TestSearchMatches_ConnectionOnlyUserAppears(t *testing.T) {
	userID := uuid.New()
	conns := []connection.Connection{{
		ID:                   uuid.New(),
		UserID:               userID,
		Sector:               "Healthcare",
		OrganizationName:     "Lakeside Clinic",
		RelationshipStrength: connection.RelationshipDecisionMaker,
		ContactName:          "Dana Wells",
	}}

	res := SearchMatches("clinic", nil, conns, Defaults(), 0)
	if len(res) != 1 {
		t.Fatalf("expected 1 result, got %d", len(res))
	}
	if res[0].UserID != userID {
		t.Fatalf("unexpected user")
	}
	if res[0].Score != 3 {
		t.Fatalf("expected 2*1.5, got %v", res[0].Score)
	}
	if len(res[0].MatchedConnections) != 1 || len(res[0].MatchedSkills) != 0 {
		t.Fatalf("unexpected matched records: %d skills, %d connections", len(res[0].MatchedSkills), len(res[0].MatchedConnections))
	}
}

func TestSearchMatches_CaseInsensitiveSubstring(t *testing.T) {
	userID := uuid.New()
	skills := []skill.Skill{{
		ID:               uuid.New(),
		UserID:           userID,
		Category:         "Technology & Software",
		SkillName:        "Cybersecurity",
		WillingnessLevel: skill.WillingnessAdvice,
	}}

	for _, q := range []string{"CYBER", "cyber", "security", "SoftWare"} {
		res := SearchMatches(q, skills, nil, Defaults(), 0)
		if len(res) != 1 {
			t.Fatalf("query %q: expected 1 result, got %d", q, len(res))
		}
	}

	if res := SearchMatches("plumbing", skills, nil, Defaults(), 0); len(res) != 0 {
		t.Fatalf("expected no match for unrelated query, got %d", len(res))
	}
}

func TestSearchMatches_ContactNameMatches(t *testing.T) {
	userID := uuid.New()
	conns := []connection.Connection{{
		ID:                   uuid.New(),
		UserID:               userID,
		Sector:               "Corporate",
		OrganizationName:     "Acme",
		RelationshipStrength: connection.RelationshipAcquaintance,
		ContactName:          "Priya Narayan",
	}}

	res := SearchMatches("narayan", nil, conns, Defaults(), 0)
	if len(res) != 1 {
		t.Fatalf("expected contact name match, got %d results", len(res))
	}
}

func TestSearchMatches_MergesSkillAndConnectionScores(t *testing.T) {
	userID := uuid.New()
	skills := []skill.Skill{{
		ID:               uuid.New(),
		UserID:           userID,
		Category:         "Sports & Coaching",
		SkillName:        "Coaching experience",
		WillingnessLevel: skill.WillingnessProBono,
	}}
	conns := []connection.Connection{{
		ID:                   uuid.New(),
		UserID:               userID,
		Sector:               "Sports & Recreation",
		OrganizationName:     "Metro Coaching League",
		RelationshipStrength: connection.RelationshipDecisionMaker,
	}}

	res := SearchMatches("coaching", skills, conns, Defaults(), 0)
	if len(res) != 1 {
		t.Fatalf("expected merged single result, got %d", len(res))
	}
	if res[0].Score != 12 {
		t.Fatalf("expected 9 + 3 = 12, got %v", res[0].Score)
	}
	d := res[0].Details
	if d.DirectSkillMatches != 1 || d.ConnectionMatches != 1 || d.HobbySkillMatches != 0 {
		t.Fatalf("unexpected details: %+v", d)
	}
}

func TestSearchMatches_LimitAndDefault(t *testing.T) {
	skills := make([]skill.Skill, 0, 30)
	for i := 0; i < 30; i++ {
		skills = append(skills, skill.Skill{
			ID:               uuid.New(),
			UserID:           uuid.New(),
			Category:         "Technology & Software",
			SkillName:        "Web designers",
			WillingnessLevel: skill.WillingnessAdvice,
		})
	}

	if res := SearchMatches("web", skills, nil, Defaults(), 0); len(res) != DefaultSearchLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultSearchLimit, len(res))
	}
	if res := SearchMatches("web", skills, nil, Defaults(), 5); len(res) != 5 {
		t.Fatalf("expected 5 results, got %d", len(res))
	}
}

func TestSearchMatches_StrengthRelativeToBatch(t *testing.T) {
	strong := uuid.New()
	weak := uuid.New()
	skills := []skill.Skill{
		{ID: uuid.New(), UserID: strong, Category: "Legal & Compliance", SkillName: "Lawyers", WillingnessLevel: skill.WillingnessProBono},
		{ID: uuid.New(), UserID: weak, Category: "Legal & Compliance", SkillName: "Paralegals", WillingnessLevel: skill.WillingnessVendor},
	}

	res := SearchMatches("legal", skills, nil, Defaults(), 0)
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res))
	}
	if res[0].UserID != strong || res[0].StrengthMeter != 5 {
		t.Fatalf("expected the strong user first at meter 5, got %+v", res[0])
	}
	// 2.25/9 = 0.25 -> tier2
	if res[1].StrengthMeter != 2 {
		t.Fatalf("expected weak user at meter 2, got %d", res[1].StrengthMeter)
	}
}
