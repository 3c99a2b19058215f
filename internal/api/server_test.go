package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stackcheck/pkg/checker"
	serrors "github.com/matzehuels/stackcheck/pkg/errors"
	"github.com/matzehuels/stackcheck/pkg/httputil"
	"github.com/matzehuels/stackcheck/pkg/observability"
	"github.com/matzehuels/stackcheck/pkg/observability/metrics"
	"github.com/matzehuels/stackcheck/pkg/pipeline"
	"github.com/matzehuels/stackcheck/pkg/stacking"
)

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(&strings.Builder{}, log.Options{})
	runner := pipeline.NewRunner(nil, nil, logger)
	srv := httptest.NewServer(New(runner, logger, opts).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestSolve(t *testing.T) {
	srv := newTestServer(t, Options{})

	tests := []struct {
		name string
		body string
		want stacking.Partition
	}{
		{"example", `{"arrivals":[3,1,2]}`, stacking.Partition{{3, 1}, {2}}},
		{"increasing", `{"arrivals":[1,2,3]}`, stacking.Partition{{1}, {2}, {3}}},
		{"empty", `{"arrivals":[]}`, stacking.Partition{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, "/v1/solve", tt.body)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			got := decode[SolveResponse](t, resp)
			assert.True(t, got.Stacks.Equal(tt.want), "stacks = %v, want %v", got.Stacks, tt.want)
			assert.Equal(t, len(tt.want), got.Count)
		})
	}
}

func TestSolveRejectsBadInput(t *testing.T) {
	srv := newTestServer(t, Options{MaxContainers: 3})

	tests := []struct {
		name string
		body string
	}{
		{"negative id", `{"arrivals":[1,-2]}`},
		{"too long", `{"arrivals":[1,2,3,4]}`},
		{"malformed", `{"arrivals":[1,`},
		{"unknown field", `{"ships":[1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, "/v1/solve", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decode[httputil.ErrorResponse](t, resp)
			assert.Equal(t, serrors.ErrCodeInvalidInput, body.Code)
		})
	}
}

func TestCheck(t *testing.T) {
	srv := newTestServer(t, Options{})

	tests := []struct {
		name     string
		body     string
		accepted bool
		reason   checker.Reason
	}{
		{"accepted", `{"arrivals":[3,1,2],"reported":2,"stacks":[[3,1],[2]]}`, true, checker.ReasonAccepted},
		{"reported defaults to stack count", `{"arrivals":[3,1,2],"stacks":[[3,1],[2]]}`, true, checker.ReasonAccepted},
		{"count mismatch", `{"arrivals":[3,1,2],"reported":3,"stacks":[[3,1],[2]]}`, false, checker.ReasonStackCount},
		{"above optimal", `{"arrivals":[3,1,2],"stacks":[[3],[1],[2]]}`, false, checker.ReasonAboveOptimal},
		{"below optimal", `{"arrivals":[1,2,3],"stacks":[[3,2,1]]}`, false, checker.ReasonBelowOptimal},
		{"missing container", `{"arrivals":[3,1,2],"stacks":[[3],[2]]}`, false, checker.ReasonContainerCount},
		{"increasing stack", `{"arrivals":[3,1,2],"stacks":[[1,3],[2]]}`, false, checker.ReasonOrder},
		{"not constructible", `{"arrivals":[2,3,1],"stacks":[[3,2],[1]]}`, false, checker.ReasonInfeasible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, "/v1/check", tt.body)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			got := decode[CheckResponse](t, resp)
			assert.Equal(t, tt.accepted, got.Accepted)
			assert.Equal(t, tt.reason, got.Reason)
			assert.NotEmpty(t, got.Message)
			assert.NotEmpty(t, got.Optimal)
		})
	}
}

func TestCheckTimeout(t *testing.T) {
	srv := newTestServer(t, Options{Timeout: time.Nanosecond})

	resp := post(t, srv, "/v1/check", `{"arrivals":[3,1,2],"stacks":[[3,1],[2]]}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body := decode[httputil.ErrorResponse](t, resp)
	assert.Equal(t, serrors.ErrCodeTimeout, body.Code)
}

func TestHealthAndRequestID(t *testing.T) {
	srv := newTestServer(t, Options{})

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, resp.Header.Get(RequestIDHeader), 36)
	assert.Equal(t, "ok", decode[HealthResponse](t, resp).Status)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	const id = "0f8fad5b-d9cb-469f-a165-70867728950e"
	req.Header.Set(RequestIDHeader, id)
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, id, resp2.Header.Get(RequestIDHeader), "valid client id is kept")
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, Options{})

	resp, err := http.Get(srv.URL + "/v1/solve")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Cleanup(observability.Reset)

	reg := prometheus.NewRegistry()
	metrics.New(reg).Register()
	srv := newTestServer(t, Options{Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})})

	post(t, srv, "/v1/solve", `{"arrivals":[3,1,2]}`)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), `stackcheck_solves_total{source="computed"} 1`)
}
