package middleware

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/tejusbharadwaj/bemcost/internal/models"
)

var ErrRateLimited = errors.New("rate limit wait aborted")

// NewLimiter returns a limiter allowing perSecond calls with the given burst.
// A non-positive rate disables limiting.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// NewRateLimitingInterceptor blocks until the limiter admits the call or ctx ends.
func NewRateLimitingInterceptor(limiter *rate.Limiter) Interceptor {
	return func(ctx context.Context, req *models.CalculateRequest, handler Handler) ([]byte, error) {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return handler(ctx, req)
	}
}
