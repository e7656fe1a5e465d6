package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p Profile) error
	CountAll(ctx context.Context) (int, error)
}
