package ws

import (
	"encoding/json"
	"testing"
	"time"

	"caps-connect/internal/domain/scoring"

	"github.com/google/uuid"
)

func TestHub_BroadcastsTypedConfigEvent(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil)
	hub.Register(client)

	cfg := scoring.Config{
		ID:         uuid.New(),
		AIAnalysis: &scoring.AIAnalysis{Confidence: 0.85},
	}
	hub.NotifyScoringConfigUpdated(cfg)

	select {
	case raw := <-client.send:
		var evt ScoringConfigUpdatedEvent
		if err := json.Unmarshal(raw, &evt); err != nil {
			t.Fatalf("unexpected payload: %v", err)
		}
		if evt.Type != EventScoringConfigUpdated {
			t.Fatalf("expected type %q, got %q", EventScoringConfigUpdated, evt.Type)
		}
		if evt.ConfigID != cfg.ID {
			t.Fatalf("expected config id %s, got %s", cfg.ID, evt.ConfigID)
		}
		if evt.Confidence != 0.85 {
			t.Fatalf("expected confidence carried through, got %v", evt.Confidence)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a broadcast frame")
	}
}
