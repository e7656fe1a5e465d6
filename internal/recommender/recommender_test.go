package recommender

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type cannedChat struct {
	reply string
	err   error
}

func (c cannedChat) Complete(context.Context, string) (string, error) {
	return c.reply, c.err
}

const goodReply = `{"weights":{"directSkill":3.5,"connection":2.5,"hobbySkill":1.2},` +
	`"willingnessMultipliers":{"pro_bono":3.2,"sponsor":2.6,"discount":1.6,"advice":1.1,"vendor":0.8},` +
	`"relationshipMultipliers":{"decision_maker":1.6,"strong_contact":1.25,"acquaintance":1},` +
	`"strengthMeterThresholds":{"tier5":0.78,"tier4":0.58,"tier3":0.38,"tier2":0.18},` +
	`"reasoning":"skills dominated by pro bono","confidence":0.8}`

func TestFallback_NeverFails(t *testing.T) {
	rec, err := Fallback{}.Recommend(context.Background(), DataStats{})
	if err != nil {
		t.Fatalf("fallback returned error: %v", err)
	}
	if rec.Confidence != 0.6 {
		t.Fatalf("expected confidence 0.6, got %v", rec.Confidence)
	}
	if !strings.Contains(rec.Reasoning, "unavailable") {
		t.Fatalf("expected unavailable marker in reasoning, got %q", rec.Reasoning)
	}
	if err := validateBounds(rec.Values); err != nil {
		t.Fatalf("fallback values out of bounds: %v", err)
	}
}

func TestAdvisor_ParsesCleanReply(t *testing.T) {
	a := &Advisor{client: cannedChat{reply: goodReply}}
	rec, err := a.Recommend(context.Background(), DataStats{TotalUsers: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Values.Weights.DirectSkill != 3.5 {
		t.Fatalf("unexpected weights: %+v", rec.Values.Weights)
	}
	if rec.Confidence != 0.8 {
		t.Fatalf("unexpected confidence: %v", rec.Confidence)
	}
}

func TestAdvisor_ParsesFencedReply(t *testing.T) {
	fenced := "Here you go:\n```json\n" + goodReply + "\n```\nLet me know."
	a := &Advisor{client: cannedChat{reply: fenced}}
	rec, err := a.Recommend(context.Background(), DataStats{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Values.Weights.Connection != 2.5 {
		t.Fatalf("unexpected weights: %+v", rec.Values.Weights)
	}
}

func TestAdvisor_ErrorsOnNoJSON(t *testing.T) {
	a := &Advisor{client: cannedChat{reply: "I cannot help with that."}}
	_, err := a.Recommend(context.Background(), DataStats{})
	if !errors.Is(err, ErrNoJSONInReply) {
		t.Fatalf("expected ErrNoJSONInReply, got %v", err)
	}
}

func TestAdvisor_ErrorsOnTransportFailure(t *testing.T) {
	a := &Advisor{client: cannedChat{err: errors.New("connection refused")}}
	_, err := a.Recommend(context.Background(), DataStats{})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestAdvisor_RejectsOutOfBoundsValues(t *testing.T) {
	bad := strings.Replace(goodReply, `"directSkill":3.5`, `"directSkill":50`, 1)
	a := &Advisor{client: cannedChat{reply: bad}}
	_, err := a.Recommend(context.Background(), DataStats{})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestBuildPrompt_EmbedsStats(t *testing.T) {
	p := buildPrompt(DataStats{
		TotalUsers:            12,
		TotalSkills:           40,
		TotalConnections:      25,
		TotalNeeds:            3,
		SkillsByWillingness:   map[string]int{"pro_bono": 30},
		ConnectionsByStrength: map[string]int{"decision_maker": 5},
	})
	for _, want := range []string{"Users:12", "Skills:40", "Connections:25", "Needs:3", "pro_bono", "decision_maker", "Respond ONLY with JSON"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestDataStats_DataPoints(t *testing.T) {
	s := DataStats{TotalUsers: 2, TotalSkills: 3, TotalConnections: 4, TotalNeeds: 100}
	if got := s.DataPoints(); got != 9 {
		t.Fatalf("expected 9 (needs excluded), got %d", got)
	}
}
