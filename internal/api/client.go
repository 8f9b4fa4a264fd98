//go:generate go run github.com/golang/mock/mockgen -destination=./mocks/estimator.go -package=mocks . Estimator

// Package api is the client for the building-energy-model estimation service.
//
// The client posts calculation requests and hands back the raw response body.
// Failures come back as typed errors: *NetworkError when no usable response
// arrived, *APIError when the service answered with a failure, and
// config.ErrMissingCredential when no API key is configured.
//
// Example usage:
//
//	client, err := api.NewClient(api.DefaultClientConfig(), cfg.API.Credentials(), logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	body, err := client.Estimate(ctx, req)
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	middleware "github.com/tejusbharadwaj/bemcost/internal/api/middlewares"
	"github.com/tejusbharadwaj/bemcost/internal/config"
	"github.com/tejusbharadwaj/bemcost/internal/models"
)

const calculatePath = "/bem/calculate"

// Estimator sends a calculation request and returns the raw response body.
type Estimator interface {
	Estimate(ctx context.Context, req *models.CalculateRequest) ([]byte, error)
}

// ClientConfig holds the client's transport policy.
type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration // per attempt
	Retries        int
	Backoff        time.Duration // first retry delay, doubled per attempt
	RateLimit      float64       // requests per second, <= 0 disables
	RateLimitBurst int
	CacheSize      int // <= 0 disables the response cache
}

// DefaultClientConfig returns a ClientConfig with sensible defaults
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:        "https://ei.palmetto.com/api/v0",
		Timeout:        30 * time.Second,
		Retries:        2,
		Backoff:        200 * time.Millisecond,
		RateLimit:      5.0,
		RateLimitBurst: 10,
		CacheSize:      128,
	}
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRegisterer registers the client metrics with reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) {
		if reg != nil {
			c.registerer = reg
		}
	}
}

// Client talks to the estimation service. It is safe for concurrent use.
type Client struct {
	baseURL     string
	timeout     time.Duration
	retries     int
	backoff     time.Duration
	httpClient  *http.Client
	credentials config.CredentialSource
	registerer  prometheus.Registerer
	logger      logrus.FieldLogger
	handler     middleware.Handler
}

var _ Estimator = (*Client)(nil)

// NewClient builds a client with the interceptor chain: request ID, logging,
// metrics, response cache, rate limit.
func NewClient(cfg ClientConfig, credentials config.CredentialSource, logger logrus.FieldLogger, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("estimation service base URL is required")
	}
	if credentials == nil {
		return nil, fmt.Errorf("credential source is required")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		timeout:     cfg.Timeout,
		retries:     max(cfg.Retries, 0),
		backoff:     cfg.Backoff,
		httpClient:  &http.Client{},
		credentials: credentials,
		registerer:  prometheus.NewRegistry(),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	metrics, err := middleware.NewMetrics(c.registerer)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	interceptors := []middleware.Interceptor{
		middleware.ContextMiddleware,
		middleware.NewLoggingInterceptor(c.logger),
		middleware.NewMetricsInterceptor(metrics, Classify),
	}
	if cfg.CacheSize > 0 {
		cache, err := middleware.NewCache(cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating response cache: %w", err)
		}
		interceptors = append(interceptors, cache.Interceptor)
	}
	interceptors = append(interceptors,
		middleware.NewRateLimitingInterceptor(middleware.NewLimiter(cfg.RateLimit, cfg.RateLimitBurst)),
	)

	chain := middleware.Chain(interceptors...)
	c.handler = func(ctx context.Context, req *models.CalculateRequest) ([]byte, error) {
		return chain(ctx, req, c.calculate)
	}

	return c, nil
}

// Estimate posts req to the calculation endpoint and returns the raw body.
func (c *Client) Estimate(ctx context.Context, req *models.CalculateRequest) ([]byte, error) {
	return c.handler(ctx, req)
}

func (c *Client) calculate(ctx context.Context, req *models.CalculateRequest) ([]byte, error) {
	apiKey, err := c.credentials.APIKey()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	endpoint := c.baseURL + calculatePath
	requestID := middleware.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			if err := c.wait(ctx, attempt); err != nil {
				break
			}
			c.logger.WithFields(logrus.Fields{
				"request_id": requestID,
				"attempt":    attempt + 1,
				"error":      lastErr,
			}).Warn("Retrying estimation request")
		}

		status, body, err := c.do(ctx, http.MethodPost, endpoint, payload, func(h http.Header) {
			h.Set("Accept", "application/json")
			h.Set("Content-Type", "application/json")
			h.Set("X-API-Key", apiKey)
			h.Set("X-Request-ID", requestID)
		})
		if err != nil {
			lastErr = &NetworkError{Method: http.MethodPost, Endpoint: endpoint, RequestID: requestID, Err: err}
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if status < 200 || status > 299 {
			apiErr := &APIError{Method: http.MethodPost, Endpoint: endpoint, RequestID: requestID, StatusCode: status, Body: string(body)}
			if !apiErr.Temporary() {
				return nil, apiErr
			}
			lastErr = apiErr
			continue
		}

		if errorShaped(body) {
			return nil, &APIError{Method: http.MethodPost, Endpoint: endpoint, RequestID: requestID, StatusCode: status, Body: string(body)}
		}
		return body, nil
	}

	return nil, lastErr
}

// do performs one HTTP exchange bounded by the per-attempt timeout.
func (c *Client) do(ctx context.Context, method, url string, payload []byte, headers func(http.Header)) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, err
	}
	headers(httpReq.Header)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) wait(ctx context.Context, attempt int) error {
	delay := c.backoff << (attempt - 1)
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// errorShaped reports a success status whose body is an error object with no data.
func errorShaped(body []byte) bool {
	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Error  json.RawMessage `json:"error"`
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false
	}
	present := func(raw json.RawMessage) bool {
		return len(raw) > 0 && string(raw) != "null"
	}
	return !present(envelope.Data) && (present(envelope.Error) || present(envelope.Errors))
}
