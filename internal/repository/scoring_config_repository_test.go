package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"caps-connect/internal/database"
	"caps-connect/internal/domain/scoring"
	"caps-connect/internal/domain/skill"

	"github.com/google/uuid"
)

func TestDecodeValues_Empty(t *testing.T) {
	values, err := decodeValues(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values.Weights.DirectSkill != 3 {
		t.Fatalf("expected default weights, got %+v", values.Weights)
	}
}

func TestDecodeValues_PartialRecordKeepsDefaults(t *testing.T) {
	raw := []byte(`{"weights":{"directSkill":4}}`)
	values, err := decodeValues(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values.Weights.DirectSkill != 4 {
		t.Fatalf("expected overridden directSkill 4, got %v", values.Weights.DirectSkill)
	}
	if values.Weights.Connection != 2 {
		t.Fatalf("expected default connection weight, got %v", values.Weights.Connection)
	}
	if values.StrengthMeterThresholds.Tier5 != 0.8 {
		t.Fatalf("expected default thresholds, got %+v", values.StrengthMeterThresholds)
	}
	if got := values.WillingnessMultipliers[skill.WillingnessProBono]; got != 3 {
		t.Fatalf("expected default pro_bono multiplier, got %v", got)
	}
}

func TestDecodeValues_NullMapsFallBack(t *testing.T) {
	raw := []byte(`{"willingnessMultipliers":null,"relationshipMultipliers":null}`)
	values, err := decodeValues(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values.WillingnessMultipliers) == 0 || len(values.RelationshipMultipliers) == 0 {
		t.Fatalf("expected default multipliers restored")
	}
}

func TestDecodeValues_Malformed(t *testing.T) {
	if _, err := decodeValues([]byte(`{not json`)); err == nil {
		t.Fatalf("expected error for malformed record")
	}
}

type recordingTx struct {
	ops        []string
	committed  bool
	rolledBack bool
}

func (t *recordingTx) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	t.ops = append(t.ops, firstKeyword(query))
	return 1, nil
}

func (t *recordingTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("unexpected query in tx")
}

func (t *recordingTx) QueryRow(_ context.Context, query string, _ ...any) database.Row {
	t.ops = append(t.ops, firstKeyword(query))
	return timestampRow{}
}

func (t *recordingTx) Commit(context.Context) error   { t.committed = true; return nil }
func (t *recordingTx) Rollback(context.Context) error { t.rolledBack = true; return nil }

// timestampRow fills any *time.Time destinations, standing in for the
// RETURNING created_at, updated_at clause.
type timestampRow struct{}

func (timestampRow) Scan(dest ...any) error {
	for _, d := range dest {
		if ts, ok := d.(*time.Time); ok {
			*ts = time.Now()
		}
	}
	return nil
}

type txOnlyDB struct {
	tx *recordingTx
}

func (d *txOnlyDB) Ping(context.Context) error { return nil }
func (d *txOnlyDB) Close() error               { return nil }

func (d *txOnlyDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("exec outside tx")
}

func (d *txOnlyDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("query outside tx")
}

func (d *txOnlyDB) QueryRow(context.Context, string, ...any) database.Row {
	return timestampRow{}
}

func (d *txOnlyDB) Begin(context.Context) (database.Tx, error) {
	return d.tx, nil
}

func firstKeyword(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func TestCreateActive_DeactivatesBeforeInsertOnOneTx(t *testing.T) {
	tx := &recordingTx{}
	repo := NewPostgresScoringConfigRepository(&txOnlyDB{tx: tx})

	cfg, err := repo.CreateActive(context.Background(), scoring.Defaults(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"UPDATE", "INSERT"}
	if len(tx.ops) != len(want) || tx.ops[0] != want[0] || tx.ops[1] != want[1] {
		t.Fatalf("expected ops %v, got %v", want, tx.ops)
	}
	if !tx.committed {
		t.Fatalf("expected the transaction to be committed")
	}
	if !cfg.IsActive || cfg.ID == uuid.Nil {
		t.Fatalf("expected an active config with a fresh id, got %+v", cfg)
	}
}
