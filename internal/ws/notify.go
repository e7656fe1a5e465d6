package ws

import (
	"time"

	"caps-connect/internal/domain/scoring"

	"github.com/google/uuid"
)

const EventScoringConfigUpdated = "scoring_config_updated"

type ScoringConfigUpdatedEvent struct {
	Type       string    `json:"type"`
	ConfigID   uuid.UUID `json:"configId"`
	Confidence float64   `json:"confidence,omitempty"`
	Timestamp  string    `json:"timestamp"`
}

func (e ScoringConfigUpdatedEvent) EventType() string { return EventScoringConfigUpdated }

// NotifyScoringConfigUpdated broadcasts a config activation to connected
// admin clients. Shaped to be used directly as the config usecase's
// activation callback.
func (h *Hub) NotifyScoringConfigUpdated(cfg scoring.Config) {
	if h == nil {
		return
	}

	evt := ScoringConfigUpdatedEvent{
		Type:      EventScoringConfigUpdated,
		ConfigID:  cfg.ID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if cfg.AIAnalysis != nil {
		evt.Confidence = cfg.AIAnalysis.Confidence
	}
	h.Broadcast(evt)
}
