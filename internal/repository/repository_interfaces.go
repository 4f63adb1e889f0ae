package repository

import (
	"context"
)

// CartStateRepositoryInterface defines the interface for cart state repository operations.
type CartStateRepositoryInterface interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// HandoffRepositoryInterface defines the interface for checkout handoff repository operations.
type HandoffRepositoryInterface interface {
	Create(ctx context.Context, doc *HandoffDocument) error
	Query(ctx context.Context, opts HandoffQueryOptions) ([]*HandoffDocument, error)
	Count(ctx context.Context, opts HandoffQueryOptions) (int64, error)
}
