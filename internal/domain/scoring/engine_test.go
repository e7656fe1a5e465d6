package scoring

import (
	"fmt"
	"reflect"
	"testing"

	"caps-connect/internal/domain/connection"
	"caps-connect/internal/domain/skill"

	"github.com/google/uuid"
)

const category = "Sports & Coaching"

func directSkill(userID uuid.UUID, level skill.WillingnessLevel) skill.Skill {
	return skill.Skill{
		ID:               uuid.New(),
		UserID:           userID,
		Category:         category,
		SkillName:        "Coaching experience",
		WillingnessLevel: level,
	}
}

func TestScoreMatches_WeightArithmetic(t *testing.T) {
	userID := uuid.New()
	skills := []skill.Skill{directSkill(userID, skill.WillingnessProBono)}

	res := ScoreMatches(category, skills, nil, Defaults())
	if len(res) != 1 {
		t.Fatalf("expected 1 result, got %d", len(res))
	}
	if res[0].Score != 9 {
		t.Fatalf("expected score 9 (3*3), got %v", res[0].Score)
	}

	conns := []connection.Connection{{
		ID:                   uuid.New(),
		UserID:               userID,
		Sector:               "Corporate",
		OrganizationName:     "Acme",
		RelationshipStrength: connection.RelationshipDecisionMaker,
	}}

	res = ScoreMatches(category, skills, conns, Defaults())
	if res[0].Score != 12 {
		t.Fatalf("expected score 12 (9 + 2*1.5), got %v", res[0].Score)
	}
	if res[0].StrengthMeter != 5 {
		t.Fatalf("expected strength 5 at max score, got %d", res[0].StrengthMeter)
	}
	if res[0].Details.DirectSkillMatches != 1 || res[0].Details.ConnectionMatches != 1 {
		t.Fatalf("unexpected details: %+v", res[0].Details)
	}
}

func TestScoreMatches_CategoryFilter(t *testing.T) {
	inCategory := uuid.New()
	outOfCategory := uuid.New()

	skills := []skill.Skill{
		directSkill(inCategory, skill.WillingnessAdvice),
		{ID: uuid.New(), UserID: outOfCategory, Category: "Legal & Compliance", SkillName: "Lawyers", WillingnessLevel: skill.WillingnessProBono},
	}

	res := ScoreMatches(category, skills, nil, Defaults())
	if len(res) != 1 {
		t.Fatalf("expected 1 result, got %d", len(res))
	}
	if res[0].UserID != inCategory {
		t.Fatalf("expected only the in-category user")
	}
}

func TestScoreMatches_ConnectionsNeverQualifyAlone(t *testing.T) {
	userID := uuid.New()
	conns := []connection.Connection{{
		ID:                   uuid.New(),
		UserID:               userID,
		Sector:               "Government",
		OrganizationName:     "City Hall",
		RelationshipStrength: connection.RelationshipDecisionMaker,
	}}

	res := ScoreMatches(category, nil, conns, Defaults())
	if len(res) != 0 {
		t.Fatalf("expected no results for connection-only user, got %d", len(res))
	}
}

func TestScoreMatches_ConnectionsNotFilteredBySector(t *testing.T) {
	userID := uuid.New()
	skills := []skill.Skill{directSkill(userID, skill.WillingnessAdvice)}
	conns := []connection.Connection{
		{ID: uuid.New(), UserID: userID, Sector: "Finance", OrganizationName: "A", RelationshipStrength: connection.RelationshipAcquaintance},
		{ID: uuid.New(), UserID: userID, Sector: "Legal", OrganizationName: "B", RelationshipStrength: connection.RelationshipAcquaintance},
	}

	res := ScoreMatches(category, skills, conns, Defaults())
	if res[0].Details.ConnectionMatches != 2 {
		t.Fatalf("expected both connections counted, got %d", res[0].Details.ConnectionMatches)
	}
	// 3*1 skill + 2*1 + 2*1 connections
	if res[0].Score != 7 {
		t.Fatalf("expected score 7, got %v", res[0].Score)
	}
}

func TestScoreMatches_HobbySkillWeight(t *testing.T) {
	userID := uuid.New()
	skills := []skill.Skill{{
		ID:               uuid.New(),
		UserID:           userID,
		Category:         category,
		SkillName:        "Fitness training",
		WillingnessLevel: skill.WillingnessSponsor,
		IsHobby:          true,
	}}

	res := ScoreMatches(category, skills, nil, Defaults())
	if res[0].Score != 2.5 {
		t.Fatalf("expected 1*2.5, got %v", res[0].Score)
	}
	if res[0].Details.HobbySkillMatches != 1 || res[0].Details.DirectSkillMatches != 0 {
		t.Fatalf("unexpected details: %+v", res[0].Details)
	}
}

func TestScoreMatches_UnknownWillingnessDefaultsToOne(t *testing.T) {
	userID := uuid.New()
	skills := []skill.Skill{{
		ID:               uuid.New(),
		UserID:           userID,
		Category:         category,
		SkillName:        "Scouting",
		WillingnessLevel: "barter",
	}}

	res := ScoreMatches(category, skills, nil, Defaults())
	if res[0].Score != 3 {
		t.Fatalf("expected base weight 3 with multiplier 1, got %v", res[0].Score)
	}
}

func TestScoreMatches_TruncatesToTopTen(t *testing.T) {
	skills := make([]skill.Skill, 0, 15)
	for i := 0; i < 15; i++ {
		s := directSkill(uuid.New(), skill.WillingnessAdvice)
		// Stack extra skills so every user has a distinct score.
		skills = append(skills, s)
		for j := 0; j < i; j++ {
			extra := s
			extra.ID = uuid.New()
			skills = append(skills, extra)
		}
	}

	res := ScoreMatches(category, skills, nil, Defaults())
	if len(res) != MaxMatches {
		t.Fatalf("expected %d results, got %d", MaxMatches, len(res))
	}
	for i := 1; i < len(res); i++ {
		if res[i].Score > res[i-1].Score {
			t.Fatalf("results not sorted descending at %d", i)
		}
	}
	// The lowest surviving score must beat the 5 dropped users.
	if res[len(res)-1].Score <= 3*5 {
		t.Fatalf("expected the 10 highest scores to survive, tail=%v", res[len(res)-1].Score)
	}
}

func TestScoreMatches_EmptyWhenNoCategoryMatch(t *testing.T) {
	skills := []skill.Skill{{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		Category:         "Technology & Software",
		SkillName:        "IT support",
		WillingnessLevel: skill.WillingnessAdvice,
	}}

	res := ScoreMatches(category, skills, nil, Defaults())
	if len(res) != 0 {
		t.Fatalf("expected empty result set, got %d", len(res))
	}
}

func TestScoreMatches_Deterministic(t *testing.T) {
	skills := make([]skill.Skill, 0, 8)
	conns := make([]connection.Connection, 0, 8)
	for i := 0; i < 8; i++ {
		id := uuid.New()
		skills = append(skills, skill.Skill{
			ID:               uuid.New(),
			UserID:           id,
			Category:         category,
			SkillName:        fmt.Sprintf("skill-%d", i),
			WillingnessLevel: skill.WillingnessAdvice,
		})
		conns = append(conns, connection.Connection{
			ID:                   uuid.New(),
			UserID:               id,
			Sector:               "Corporate",
			OrganizationName:     fmt.Sprintf("org-%d", i),
			RelationshipStrength: connection.RelationshipStrongContact,
		})
	}

	first := ScoreMatches(category, skills, conns, Defaults())
	for i := 0; i < 20; i++ {
		again := ScoreMatches(category, skills, conns, Defaults())
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed from first run", i)
		}
	}
}
