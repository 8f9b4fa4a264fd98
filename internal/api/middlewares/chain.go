// Package middleware wraps calls to the estimation service with cross-cutting
// behaviour: request IDs, rate limiting, logging, metrics and response caching.
package middleware

import (
	"context"

	"github.com/tejusbharadwaj/bemcost/internal/models"
)

// Handler performs one estimation call and returns the raw response body.
type Handler func(ctx context.Context, req *models.CalculateRequest) ([]byte, error)

// Interceptor runs around a Handler.
type Interceptor func(ctx context.Context, req *models.CalculateRequest, handler Handler) ([]byte, error)

// Chain creates a single interceptor from multiple interceptors. The first
// interceptor is the outermost.
func Chain(interceptors ...Interceptor) Interceptor {
	return func(ctx context.Context, req *models.CalculateRequest, handler Handler) ([]byte, error) {
		chain := handler
		for i := len(interceptors) - 1; i >= 0; i-- {
			interceptor := interceptors[i]
			next := chain
			chain = func(currentCtx context.Context, currentReq *models.CalculateRequest) ([]byte, error) {
				return interceptor(currentCtx, currentReq, next)
			}
		}
		return chain(ctx, req)
	}
}
