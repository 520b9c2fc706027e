package service

import "context"

// Cache keys for list responses. Writes to a resource invalidate its key.
const (
	cacheKeyCategories = "categories:list"
	cacheKeyProducts   = "products:list"
)

// ListCache abstracts the read-path response cache (Redis). A miss is
// reported via the boolean, not an error.
type ListCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, key string) error
}
