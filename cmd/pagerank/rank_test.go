package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankUsesConfigGraphAndOutput(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph.txt")
	require.NoError(t, os.WriteFile(graphPath, []byte("a b\nb a\n"), 0o644))
	outputPath := filepath.Join(dir, "ranks.txt")
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(fmt.Sprintf(`{
		"Graph": %q,
		"Output": %q,
		"SampleCount": 200
	}`, graphPath, outputPath)), 0o644))

	configFile = configPath
	defer func() { configFile = "" }()

	require.NoError(t, runRank(rankCmd, nil))

	report, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "PageRank Results from Sampling (n = 200)")
	assert.Contains(t, string(report), "PageRank Results from Iteration")
	assert.Contains(t, string(report), "a: 0.5")
}

func TestRankWithoutGraphFails(t *testing.T) {
	configFile = ""
	err := runRank(rankCmd, nil)
	assert.ErrorContains(t, err, "no graph given")
}

func TestWorkerDrainFlag(t *testing.T) {
	flag := workerCmd.Flags().Lookup("drain")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
