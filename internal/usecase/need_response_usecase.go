package usecase

import (
	"context"
	"errors"
	"strings"

	"caps-connect/internal/domain/need"
	"caps-connect/internal/domain/user"
	"caps-connect/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrNeedInactive        = errors.New("need no longer accepting responses")
	ErrAlreadyResponded    = errors.New("already responded to need")
	ErrNeedResponseMissing = errors.New("need response not found")
)

// NeedResponseItem is a response enriched with the responder's profile for
// the admin review view.
type NeedResponseItem struct {
	need.Response

	UserName  string
	UserEmail string
	UserPhoto string
}

type NeedResponseUsecase interface {
	Respond(ctx context.Context, userID, needID uuid.UUID, message string) (need.Response, error)
	ListForNeed(ctx context.Context, needID uuid.UUID) ([]NeedResponseItem, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]need.Response, error)
	Review(ctx context.Context, id uuid.UUID, status string, adminNotes *string) (need.Response, error)
}

type NeedResponses struct {
	responses repository.NeedResponseRepository
	needs     repository.NeedRepository
	users     user.Repository
}

func NewNeedResponseUsecase(
	responses repository.NeedResponseRepository,
	needs repository.NeedRepository,
	users user.Repository,
) *NeedResponses {
	return &NeedResponses{responses: responses, needs: needs, users: users}
}

func (u *NeedResponses) Respond(ctx context.Context, userID, needID uuid.UUID, message string) (need.Response, error) {
	message = strings.TrimSpace(message)
	if message == "" || userID == uuid.Nil {
		return need.Response{}, ErrInvalidInput
	}

	n, err := u.needs.GetByID(ctx, needID)
	if err != nil {
		if errors.Is(err, need.ErrNotFound) {
			return need.Response{}, ErrNeedNotFound
		}
		return need.Response{}, ErrInternal
	}
	if !n.IsActive {
		return need.Response{}, ErrNeedInactive
	}

	responded, err := u.responses.HasResponded(ctx, needID, userID)
	if err != nil {
		return need.Response{}, ErrInternal
	}
	if responded {
		return need.Response{}, ErrAlreadyResponded
	}

	created, err := u.responses.Create(ctx, need.Response{
		NeedID:  needID,
		UserID:  userID,
		Message: message,
		Status:  need.ResponsePending,
	})
	if err != nil {
		return need.Response{}, ErrInternal
	}
	return created, nil
}

func (u *NeedResponses) ListForNeed(ctx context.Context, needID uuid.UUID) ([]NeedResponseItem, error) {
	if _, err := u.needs.GetByID(ctx, needID); err != nil {
		if errors.Is(err, need.ErrNotFound) {
			return nil, ErrNeedNotFound
		}
		return nil, ErrInternal
	}

	items, err := u.responses.ListByNeed(ctx, needID)
	if err != nil {
		return nil, ErrInternal
	}
	return u.enrich(ctx, items)
}

func (u *NeedResponses) ListMine(ctx context.Context, userID uuid.UUID) ([]need.Response, error) {
	items, err := u.responses.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *NeedResponses) Review(ctx context.Context, id uuid.UUID, status string, adminNotes *string) (need.Response, error) {
	if !need.IsValidResponseStatus(status) {
		return need.Response{}, ErrInvalidInput
	}

	updated, err := u.responses.Review(ctx, id, need.ResponseStatus(status), adminNotes)
	if err != nil {
		if errors.Is(err, need.ErrResponseNotFound) {
			return need.Response{}, ErrNeedResponseMissing
		}
		return need.Response{}, ErrInternal
	}
	return updated, nil
}

func (u *NeedResponses) enrich(ctx context.Context, items []need.Response) ([]NeedResponseItem, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, r := range items {
		ids = append(ids, r.UserID)
	}

	profiles, err := u.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]NeedResponseItem, 0, len(items))
	for _, r := range items {
		item := NeedResponseItem{Response: r}
		if p, ok := profiles[r.UserID]; ok {
			item.UserName = p.DisplayName
			item.UserEmail = p.Email
			item.UserPhoto = p.ProfilePhoto
		}
		out = append(out, item)
	}
	return out, nil
}
