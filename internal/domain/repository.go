package domain

import (
	"context"
	"time"
)

// CatalogSource supplies the immutable product catalog a recommender is
// built from. Implementations must return a stable, finite sequence; the
// engine never mutates it.
type CatalogSource interface {
	Load(ctx context.Context) ([]Product, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
