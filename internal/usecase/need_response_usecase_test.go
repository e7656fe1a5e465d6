package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"caps-connect/internal/domain/need"
	"caps-connect/internal/domain/user"

	"github.com/google/uuid"
)

type mockNeedResponseRepo struct {
	items     []need.Response
	byID      map[uuid.UUID]need.Response
	responded bool
	err       error

	created  []need.Response
	reviewed []need.ResponseStatus
}

func (m *mockNeedResponseRepo) Create(_ context.Context, r need.Response) (need.Response, error) {
	if m.err != nil {
		return need.Response{}, m.err
	}
	r.ID = uuid.New()
	r.CreatedAt = time.Now().UTC()
	m.created = append(m.created, r)
	return r, nil
}

func (m *mockNeedResponseRepo) GetByID(_ context.Context, id uuid.UUID) (need.Response, error) {
	r, ok := m.byID[id]
	if !ok {
		return need.Response{}, need.ErrResponseNotFound
	}
	return r, nil
}

func (m *mockNeedResponseRepo) ListByNeed(context.Context, uuid.UUID) ([]need.Response, error) {
	return m.items, m.err
}

func (m *mockNeedResponseRepo) ListByUser(context.Context, uuid.UUID) ([]need.Response, error) {
	return m.items, m.err
}

func (m *mockNeedResponseRepo) HasResponded(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return m.responded, m.err
}

func (m *mockNeedResponseRepo) Review(_ context.Context, id uuid.UUID, status need.ResponseStatus, adminNotes *string) (need.Response, error) {
	r, ok := m.byID[id]
	if !ok {
		return need.Response{}, need.ErrResponseNotFound
	}
	r.Status = status
	if adminNotes != nil {
		r.AdminNotes = *adminNotes
	}
	now := time.Now().UTC()
	r.ReviewedAt = &now
	m.reviewed = append(m.reviewed, status)
	return r, nil
}

func activeNeedFixture() (uuid.UUID, mockNeedRepo) {
	id := uuid.New()
	return id, mockNeedRepo{byID: map[uuid.UUID]need.Need{
		id: {ID: id, Title: "Grant writing help", Category: "Legal Services", IsActive: true},
	}}
}

func TestNeedResponses_RespondCreatesPending(t *testing.T) {
	needID, needs := activeNeedFixture()
	repo := &mockNeedResponseRepo{}
	uc := NewNeedResponseUsecase(repo, needs, mockUserRepo{})

	created, err := uc.Respond(context.Background(), uuid.New(), needID, "  I can help with this.  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != need.ResponsePending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.Message != "I can help with this." {
		t.Fatalf("expected trimmed message, got %q", created.Message)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted response, got %d", len(repo.created))
	}
}

func TestNeedResponses_RespondRejectsEmptyMessage(t *testing.T) {
	needID, needs := activeNeedFixture()
	uc := NewNeedResponseUsecase(&mockNeedResponseRepo{}, needs, mockUserRepo{})

	if _, err := uc.Respond(context.Background(), uuid.New(), needID, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNeedResponses_RespondUnknownNeed(t *testing.T) {
	uc := NewNeedResponseUsecase(&mockNeedResponseRepo{}, mockNeedRepo{}, mockUserRepo{})

	if _, err := uc.Respond(context.Background(), uuid.New(), uuid.New(), "hello"); !errors.Is(err, ErrNeedNotFound) {
		t.Fatalf("expected ErrNeedNotFound, got %v", err)
	}
}

func TestNeedResponses_RespondRejectsInactiveNeed(t *testing.T) {
	id := uuid.New()
	needs := mockNeedRepo{byID: map[uuid.UUID]need.Need{
		id: {ID: id, Title: "Closed need", IsActive: false},
	}}
	uc := NewNeedResponseUsecase(&mockNeedResponseRepo{}, needs, mockUserRepo{})

	if _, err := uc.Respond(context.Background(), uuid.New(), id, "hello"); !errors.Is(err, ErrNeedInactive) {
		t.Fatalf("expected ErrNeedInactive, got %v", err)
	}
}

func TestNeedResponses_RespondRejectsDuplicate(t *testing.T) {
	needID, needs := activeNeedFixture()
	uc := NewNeedResponseUsecase(&mockNeedResponseRepo{responded: true}, needs, mockUserRepo{})

	if _, err := uc.Respond(context.Background(), uuid.New(), needID, "hello"); !errors.Is(err, ErrAlreadyResponded) {
		t.Fatalf("expected ErrAlreadyResponded, got %v", err)
	}
}

func TestNeedResponses_ListForNeedEnrichesProfiles(t *testing.T) {
	needID, needs := activeNeedFixture()
	responderID := uuid.New()

	repo := &mockNeedResponseRepo{items: []need.Response{
		{ID: uuid.New(), NeedID: needID, UserID: responderID, Message: "count me in", Status: need.ResponsePending},
	}}
	users := mockUserRepo{byID: map[uuid.UUID]user.User{
		responderID: {ID: responderID, Email: "helper@example.org", DisplayName: "Pat Helper"},
	}}

	uc := NewNeedResponseUsecase(repo, needs, users)

	items, err := uc.ListForNeed(context.Background(), needID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one response, got %d", len(items))
	}
	if items[0].UserEmail != "helper@example.org" || items[0].UserName != "Pat Helper" {
		t.Fatalf("expected enriched responder profile, got %+v", items[0])
	}
}

func TestNeedResponses_ListForNeedUnknownNeed(t *testing.T) {
	uc := NewNeedResponseUsecase(&mockNeedResponseRepo{}, mockNeedRepo{}, mockUserRepo{})

	if _, err := uc.ListForNeed(context.Background(), uuid.New()); !errors.Is(err, ErrNeedNotFound) {
		t.Fatalf("expected ErrNeedNotFound, got %v", err)
	}
}

func TestNeedResponses_ReviewValidatesStatus(t *testing.T) {
	uc := NewNeedResponseUsecase(&mockNeedResponseRepo{}, mockNeedRepo{}, mockUserRepo{})

	if _, err := uc.Review(context.Background(), uuid.New(), "approved", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestNeedResponses_ReviewUpdatesStatusAndNotes(t *testing.T) {
	id := uuid.New()
	repo := &mockNeedResponseRepo{byID: map[uuid.UUID]need.Response{
		id: {ID: id, Status: need.ResponsePending},
	}}
	uc := NewNeedResponseUsecase(repo, mockNeedRepo{}, mockUserRepo{})

	notes := "Contacted via email"
	updated, err := uc.Review(context.Background(), id, "accepted", &notes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != need.ResponseAccepted {
		t.Fatalf("expected accepted status, got %q", updated.Status)
	}
	if updated.AdminNotes != notes {
		t.Fatalf("expected admin notes stored, got %q", updated.AdminNotes)
	}
	if updated.ReviewedAt == nil {
		t.Fatal("expected review timestamp set")
	}
}

func TestNeedResponses_ReviewUnknownResponse(t *testing.T) {
	uc := NewNeedResponseUsecase(&mockNeedResponseRepo{}, mockNeedRepo{}, mockUserRepo{})

	if _, err := uc.Review(context.Background(), uuid.New(), "declined", nil); !errors.Is(err, ErrNeedResponseMissing) {
		t.Fatalf("expected ErrNeedResponseMissing, got %v", err)
	}
}
