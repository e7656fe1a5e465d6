package usecase

import (
	"context"
	"time"
)

// Cache is the slice of the redis wrapper the usecases depend on. A nil-safe
// implementation that bypasses on unavailability satisfies it.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
