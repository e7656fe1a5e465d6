package recommender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"caps-connect/internal/domain/connection"
	"caps-connect/internal/domain/scoring"
	"caps-connect/internal/domain/skill"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	ErrEmptyCompletion = errors.New("empty completion")
	ErrNoJSONInReply   = errors.New("no JSON object in completion")
	ErrOutOfBounds     = errors.New("recommended values out of bounds")
)

// chatClient is the slice of the OpenAI client the advisor uses. Tests
// substitute a canned implementation.
type chatClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Advisor asks an OpenAI chat model for scoring values tuned to the dataset.
// Any failure (transport, unparseable reply, out-of-bounds values) is returned
// as an error for the caller to route to Fallback.
type Advisor struct {
	client chatClient
	model  string
}

func NewAdvisor(apiKey, model string) *Advisor {
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	return &Advisor{
		client: &openaiChat{client: openai.NewClient(option.WithAPIKey(apiKey)), model: model},
		model:  model,
	}
}

func (a *Advisor) Recommend(ctx context.Context, stats DataStats) (Recommendation, error) {
	text, err := a.client.Complete(ctx, buildPrompt(stats))
	if err != nil {
		return Recommendation{}, fmt.Errorf("advisor completion: %w", err)
	}

	parsed, err := parseRecommendation(text)
	if err != nil {
		return Recommendation{}, err
	}
	return parsed, nil
}

type openaiChat struct {
	client openai.Client
	model  string
}

func (c *openaiChat) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.3),
		MaxTokens:   openai.Int(800),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return completion.Choices[0].Message.Content, nil
}

func buildPrompt(stats DataStats) string {
	willingness, _ := json.Marshal(stats.SkillsByWillingness)
	strength, _ := json.Marshal(stats.ConnectionsByStrength)

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze community data and recommend scoring weights. ")
	fmt.Fprintf(&b, "Data: Users:%d, Skills:%d, Connections:%d, Needs:%d. ",
		stats.TotalUsers, stats.TotalSkills, stats.TotalConnections, stats.TotalNeeds)
	fmt.Fprintf(&b, "Skills by willingness: %s. Connections by strength: %s. ", willingness, strength)
	b.WriteString(`Respond ONLY with JSON: {"weights":{"directSkill":<1-5>,"connection":<1-5>,"hobbySkill":<0.5-2>},` +
		`"willingnessMultipliers":{"pro_bono":<2-4>,"sponsor":<1.5-3>,"discount":<1-2>,"advice":<0.5-1.5>,"vendor":<0.5-1>},` +
		`"relationshipMultipliers":{"decision_maker":<1.3-2>,"strong_contact":<1-1.5>,"acquaintance":<0.8-1.2>},` +
		`"strengthMeterThresholds":{"tier5":<0.75-0.9>,"tier4":<0.55-0.7>,"tier3":<0.35-0.5>,"tier2":<0.15-0.3>},` +
		`"reasoning":"<explanation>","confidence":<0.5-1>}`)
	return b.String()
}

type recommendationReply struct {
	Weights                 scoring.Weights                             `json:"weights"`
	WillingnessMultipliers  map[skill.WillingnessLevel]float64          `json:"willingnessMultipliers"`
	RelationshipMultipliers map[connection.RelationshipStrength]float64 `json:"relationshipMultipliers"`
	StrengthMeterThresholds scoring.Thresholds                          `json:"strengthMeterThresholds"`
	Reasoning               string                                      `json:"reasoning"`
	Confidence              float64                                     `json:"confidence"`
}

func parseRecommendation(text string) (Recommendation, error) {
	raw, ok := firstJSONObject(text)
	if !ok {
		return Recommendation{}, ErrNoJSONInReply
	}

	var reply recommendationReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return Recommendation{}, fmt.Errorf("decode recommendation: %w", err)
	}

	values := scoring.Values{
		Weights:                 reply.Weights,
		WillingnessMultipliers:  reply.WillingnessMultipliers,
		RelationshipMultipliers: reply.RelationshipMultipliers,
		StrengthMeterThresholds: reply.StrengthMeterThresholds,
	}
	if err := validateBounds(values); err != nil {
		return Recommendation{}, err
	}

	rec := Recommendation{Values: values, Reasoning: reply.Reasoning, Confidence: reply.Confidence}
	if rec.Reasoning == "" {
		rec.Reasoning = "AI analysis complete."
	}
	if rec.Confidence < 0.5 || rec.Confidence > 1 {
		rec.Confidence = 0.75
	}
	return rec, nil
}

// firstJSONObject extracts the outermost {...} block, tolerating prose or
// code fences around the JSON.
func firstJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func validateBounds(v scoring.Values) error {
	inRange := func(val, lo, hi float64) bool { return val >= lo && val <= hi }

	if !inRange(v.Weights.DirectSkill, 1, 5) ||
		!inRange(v.Weights.Connection, 1, 5) ||
		!inRange(v.Weights.HobbySkill, 0.5, 2) {
		return fmt.Errorf("%w: weights %+v", ErrOutOfBounds, v.Weights)
	}

	if len(v.WillingnessMultipliers) == 0 || len(v.RelationshipMultipliers) == 0 {
		return fmt.Errorf("%w: missing multipliers", ErrOutOfBounds)
	}
	for level, m := range v.WillingnessMultipliers {
		if !inRange(m, 0.5, 4) {
			return fmt.Errorf("%w: willingness %s=%v", ErrOutOfBounds, level, m)
		}
	}
	for strength, m := range v.RelationshipMultipliers {
		if !inRange(m, 0.8, 2) {
			return fmt.Errorf("%w: relationship %s=%v", ErrOutOfBounds, strength, m)
		}
	}

	th := v.StrengthMeterThresholds
	for _, t := range []float64{th.Tier5, th.Tier4, th.Tier3, th.Tier2} {
		if !inRange(t, 0.15, 0.9) {
			return fmt.Errorf("%w: thresholds %+v", ErrOutOfBounds, th)
		}
	}
	return nil
}
