package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejusbharadwaj/bemcost/internal/models"
	"github.com/tejusbharadwaj/bemcost/internal/request"
)

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf(`
api:
  base_url: %s
  retries: 0
  rate_limit: 0
logging:
  level: error
`, baseURL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func hourlyResponse(kwh float64) string {
	var intervals []string
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for h := 0; h < 24; h++ {
		from := start.Add(time.Duration(h) * time.Hour)
		intervals = append(intervals, fmt.Sprintf(
			`{"from_datetime":%q,"to_datetime":%q,"variable":%q,"value":%v}`,
			from.Format(models.NaiveLayout), from.Add(time.Hour).Format(models.NaiveLayout),
			request.VarElectricity, kwh,
		))
	}
	return `{"data":{"intervals":[` + strings.Join(intervals, ",") + `]}}`
}

func TestCostCommand(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cli-key", r.Header.Get("X-API-Key"))
		io.WriteString(w, hourlyResponse(10))
	}))
	defer ts.Close()

	t.Setenv("EIAPI_DEV_API_KEY", "cli-key")
	path := writeConfig(t, ts.URL)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"cost", "--config", path, "--address", "929 Maxwell Ave. Boulder, CO 80304"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "90.6\n", out.String())
}

func TestPayloadCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"payload",
		"--address", "929 Maxwell Ave. Boulder, CO 80304",
		"--heating-start", "8",
		"--heating-duration", "3",
	})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	var req models.CalculateRequest
	require.NoError(t, json.Unmarshal(out.Bytes(), &req))
	assert.Equal(t, "2023-01-01T00:00:00", req.Parameters.FromDatetime)
	require.NotNil(t, req.Consumption)
	require.NotNil(t, req.Consumption.Attributes)
	require.Len(t, req.Consumption.Attributes.Baseline, 1)

	baseline := req.Consumption.Attributes.Baseline[0]
	assert.Equal(t, request.HeatingSetpointName, baseline.Name)
	assert.Equal(t, 38.0, baseline.Value[8])
	assert.Equal(t, 38.0, baseline.Value[10])
	assert.Equal(t, 10.0, baseline.Value[11])
}
