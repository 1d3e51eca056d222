package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fareschokri/pagerank/pkg/graph"
	"github.com/fareschokri/pagerank/pkg/rank"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render <corpus-dir|edge-list>",
	Short: "Draw the graph to an image, labeling every page with its rank",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Float64VarP(&dampingFactor, "damping", "d", rank.DefaultDampingFactor, "damping factor")
	renderCmd.Flags().Float64VarP(&epsilon, "epsilon", "e", rank.DefaultEpsilon, "per-page convergence threshold")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "graph.png", "output image file")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(args[0])
	if err != nil {
		return err
	}
	ranks, err := rank.IterateRank(g, dampingFactor, epsilon)
	if err != nil {
		return err
	}
	if err := graph.RenderFile(g, ranks, renderOutput); err != nil {
		return err
	}
	fmt.Printf("Rendered %d pages to %s\n", len(g), renderOutput)
	return nil
}
