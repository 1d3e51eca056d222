package server

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fareschokri/pagerank/pkg/graph"
	"github.com/fareschokri/pagerank/pkg/rank"
	"github.com/fareschokri/pagerank/pkg/utils"
)

// RankRequest is the JSON body of a rank submission. Parameters left at
// zero fall back to the defaults.
type RankRequest struct {
	Graph         graph.Graph `json:"graph"`
	DampingFactor float64     `json:"damping_factor,omitempty"`
	SampleCount   int         `json:"sample_count,omitempty"`
	Epsilon       float64     `json:"epsilon,omitempty"`
}

// RankResponse carries both estimates for the submitted graph.
type RankResponse struct {
	Sampled  rank.Distribution `json:"sampled"`
	Iterated rank.Distribution `json:"iterated"`
}

// New builds the HTTP API around the two estimators.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.POST("/api/v1/rank", handleRank)
	e.GET("/api/v1/health", handleHealth)
	return e
}

// Start runs the API server on the configured host and port.
func Start(env utils.EnvVars) error {
	e := New()
	utils.ServerLog("Starting API server on %s:%d", env.Host, env.Port)
	return e.Start(fmt.Sprintf("%s:%d", env.Host, env.Port))
}

func handleRank(c echo.Context) error {
	var req RankRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Graph) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "graph must not be empty")
	}
	// Enforce the construction-side invariants before the estimators see
	// the graph.
	req.Graph.Normalize()
	if err := req.Graph.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cfg := rank.Config{
		DampingFactor: req.DampingFactor,
		SampleCount:   req.SampleCount,
		Epsilon:       req.Epsilon,
	}
	if err := cfg.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Fresh random source per request, so concurrent requests do not share
	// generator state.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sampled, err := rank.SampleRank(req.Graph, cfg.DampingFactor, cfg.SampleCount, rng)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	iterated, err := rank.IterateRank(req.Graph, cfg.DampingFactor, cfg.Epsilon)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	utils.ServerLog("Ranked graph with %d pages", len(req.Graph))
	return c.JSON(http.StatusOK, RankResponse{Sampled: sampled, Iterated: iterated})
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
