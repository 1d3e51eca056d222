package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRank(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rank", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRankEndpoint(t *testing.T) {
	rec := postRank(t, `{
		"graph": {"a.html": ["b.html"], "b.html": ["a.html"]},
		"sample_count": 500
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Sampled, 2)
	require.Len(t, resp.Iterated, 2)
	assert.InDelta(t, 1.0, resp.Sampled.Sum(), 1e-6)
	assert.InDelta(t, 1.0, resp.Iterated.Sum(), 1e-6)
	// Symmetric two-page cycle: both estimates should be near 1/2.
	assert.InDelta(t, 0.5, resp.Iterated["a.html"], 1e-6)
}

func TestRankEndpointNormalizesGraph(t *testing.T) {
	// Self-links and out-of-corpus targets are stripped at the boundary.
	rec := postRank(t, `{
		"graph": {"a.html": ["a.html", "nowhere.html", "b.html"], "b.html": []},
		"sample_count": 100
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRankEndpointRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty graph", `{"graph": {}}`},
		{"bad damping", `{"graph": {"a.html": []}, "damping_factor": 1.5}`},
		{"negative samples", `{"graph": {"a.html": []}, "sample_count": -1}`},
		{"not json", `not json`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postRank(t, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
