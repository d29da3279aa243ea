package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradeconnect/marketplace-api/internal/core/ports"
)

const searchCacheTTL = 60 * time.Second

// ProductSearchCache caches product search results in Redis.
// Key format: product_search:<lowercased_term>
type ProductSearchCache struct {
	client *redis.Client
}

// NewProductSearchCache creates a ProductSearchCache wrapping the given Redis client.
func NewProductSearchCache(client *redis.Client) *ProductSearchCache {
	return &ProductSearchCache{client: client}
}

// Get returns the cached listings for the term. A missing or expired key is a
// miss, not an error.
func (c *ProductSearchCache) Get(ctx context.Context, term string) ([]ports.ProductListing, bool, error) {
	raw, err := c.client.Get(ctx, c.key(term)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("search cache get: %w", err)
	}

	var listings []ports.ProductListing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil, false, fmt.Errorf("search cache decode: %w", err)
	}
	return listings, true, nil
}

// Set stores the listings for the term (expires after searchCacheTTL).
func (c *ProductSearchCache) Set(ctx context.Context, term string, listings []ports.ProductListing) error {
	raw, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("search cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(term), raw, searchCacheTTL).Err()
}

func (c *ProductSearchCache) key(term string) string {
	return "product_search:" + strings.ToLower(term)
}

var _ ports.SearchCache = (*ProductSearchCache)(nil)
