package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejusbharadwaj/bemcost/internal/api"
)

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		io.WriteString(w, `{"status":"ok","version":"0.4.1"}`)
	}))
	defer ts.Close()

	client := newTestClient(t, testConfig(ts.URL))

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health["status"])
}

func TestHealth_Unhealthy(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, "maintenance")
	}))
	defer ts.Close()

	client := newTestClient(t, testConfig(ts.URL))

	_, err := client.Health(context.Background())
	assert.ErrorIs(t, err, api.ErrStatus)
	assert.Contains(t, err.Error(), "maintenance")
}

func TestHealth_BadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))
	defer ts.Close()

	client := newTestClient(t, testConfig(ts.URL))

	_, err := client.Health(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, api.ErrStatus)
}
