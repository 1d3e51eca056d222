package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fareschokri/pagerank/pkg/graph"
)

var rootCmd = &cobra.Command{
	Use:   "pagerank",
	Short: "Estimate page importance in a directed link graph",
	Long: "pagerank estimates the relative importance of pages in a link graph " +
		"with two independent estimators: a random-walk sampler and an " +
		"iterative fixed-point solver.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadGraph builds the link graph from a corpus directory of HTML pages or
// from an edge-list file.
func loadGraph(path string) (graph.Graph, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return graph.Crawl(path)
	}
	return graph.LoadEdgeListFile(path)
}
