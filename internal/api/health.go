package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	middleware "github.com/tejusbharadwaj/bemcost/internal/api/middlewares"
)

const healthPath = "/health"

// Health queries the service health endpoint and returns its JSON document.
// It bypasses the cache and rate limiter and is not retried.
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	apiKey, err := c.credentials.APIKey()
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + healthPath
	requestID := middleware.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	status, body, err := c.do(ctx, http.MethodGet, endpoint, nil, func(h http.Header) {
		h.Set("Accept", "application/json")
		h.Set("Authorization", "Bearer "+apiKey)
		h.Set("X-Request-ID", requestID)
	})
	if err != nil {
		return nil, &NetworkError{Method: http.MethodGet, Endpoint: endpoint, RequestID: requestID, Err: err}
	}
	if status != http.StatusOK {
		return nil, &APIError{Method: http.MethodGet, Endpoint: endpoint, RequestID: requestID, StatusCode: status, Body: string(body)}
	}

	var health map[string]interface{}
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return health, nil
}
