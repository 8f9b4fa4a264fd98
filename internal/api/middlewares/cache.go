package middleware

// golang-lru evicts the least recently used responses once the cache is full.

import (
	"context"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/tejusbharadwaj/bemcost/internal/models"
)

const cacheKeyPrefix = "bem/calculate"

// Cache keeps successful estimation responses keyed by request body.
type Cache struct {
	lru *lru.Cache
}

// NewCache sets up an in-memory LRU cache holding up to size responses.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Interceptor serves repeated identical requests from memory. Errors are never cached.
func (c *Cache) Interceptor(
	ctx context.Context,
	req *models.CalculateRequest,
	handler Handler,
) ([]byte, error) {
	key, err := generateCacheKey(req)
	if err != nil {
		return handler(ctx, req)
	}

	if cached, ok := c.lru.Get(key); ok {
		return append([]byte(nil), cached.([]byte)...), nil
	}

	resp, err := handler(ctx, req)
	if err != nil {
		return nil, err
	}

	c.lru.Add(key, append([]byte(nil), resp...))
	return resp, nil
}

// Len returns the number of cached responses.
func (c *Cache) Len() int { return c.lru.Len() }

// generateCacheKey serializes the request into a cache key.
func generateCacheKey(req *models.CalculateRequest) (string, error) {
	reqBytes, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", cacheKeyPrefix, string(reqBytes)), nil
}
