package usecase

import (
	"context"
	"errors"
	"strings"

	"caps-connect/internal/domain/need"
	"caps-connect/internal/domain/skill"
	"caps-connect/internal/repository"

	"github.com/google/uuid"
)

type NeedInput struct {
	Title       string
	Description string
	Category    string
	IsActive    bool
}

type NeedUsecase interface {
	ListActive(ctx context.Context) ([]need.Need, error)
	Get(ctx context.Context, id uuid.UUID) (need.Need, error)
	Create(ctx context.Context, createdBy uuid.UUID, in NeedInput) (need.Need, error)
	Update(ctx context.Context, id uuid.UUID, in NeedInput) (need.Need, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Needs struct {
	needs repository.NeedRepository
}

func NewNeedUsecase(needs repository.NeedRepository) *Needs {
	return &Needs{needs: needs}
}

func (u *Needs) ListActive(ctx context.Context) ([]need.Need, error) {
	items, err := u.needs.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Needs) Get(ctx context.Context, id uuid.UUID) (need.Need, error) {
	n, err := u.needs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, need.ErrNotFound) {
			return need.Need{}, ErrNeedNotFound
		}
		return need.Need{}, ErrInternal
	}
	return n, nil
}

func (u *Needs) Create(ctx context.Context, createdBy uuid.UUID, in NeedInput) (need.Need, error) {
	if err := validateNeedInput(&in); err != nil {
		return need.Need{}, err
	}

	created, err := u.needs.Create(ctx, need.Need{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		CreatedBy:   createdBy,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return need.Need{}, ErrInternal
	}
	return created, nil
}

func (u *Needs) Update(ctx context.Context, id uuid.UUID, in NeedInput) (need.Need, error) {
	if err := validateNeedInput(&in); err != nil {
		return need.Need{}, err
	}

	updated, err := u.needs.Update(ctx, need.Need{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		IsActive:    in.IsActive,
	})
	if err != nil {
		if errors.Is(err, need.ErrNotFound) {
			return need.Need{}, ErrNeedNotFound
		}
		return need.Need{}, ErrInternal
	}
	return updated, nil
}

func (u *Needs) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := u.needs.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrNeedNotFound
	}
	return nil
}

func validateNeedInput(in *NeedInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return ErrInvalidInput
	}
	if !skill.IsValidCategory(in.Category) {
		return ErrInvalidInput
	}
	return nil
}
