package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/tejusbharadwaj/bemcost/internal/models"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// ContextMiddleware tags the call with a request ID unless one is already set.
func ContextMiddleware(
	ctx context.Context,
	req *models.CalculateRequest,
	handler Handler,
) ([]byte, error) {
	if RequestIDFromContext(ctx) == "" {
		ctx = WithRequestID(ctx, generateRequestID())
	}
	return handler(ctx, req)
}

// WithRequestID returns a context carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID, or "" if none was set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func generateRequestID() string {
	return uuid.NewString()
}
