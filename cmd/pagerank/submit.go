package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fareschokri/pagerank/pkg/jobs"
	"github.com/fareschokri/pagerank/pkg/rank"
	"github.com/fareschokri/pagerank/pkg/utils"
)

var submitTimeout time.Duration

var submitCmd = &cobra.Command{
	Use:   "submit <corpus-dir|edge-list>",
	Short: "Publish a rank job on the work queue and wait for the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubmit,
}

func init() {
	submitCmd.Flags().Float64VarP(&dampingFactor, "damping", "d", rank.DefaultDampingFactor, "damping factor")
	submitCmd.Flags().IntVarP(&sampleCount, "samples", "n", rank.DefaultSampleCount, "random walk sample count")
	submitCmd.Flags().Float64VarP(&epsilon, "epsilon", "e", rank.DefaultEpsilon, "per-page convergence threshold")
	submitCmd.Flags().DurationVar(&submitTimeout, "timeout", time.Minute, "how long to wait for the result")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(args[0])
	if err != nil {
		return err
	}
	env := utils.ReadEnvVars()
	utils.InitLog(env.WorkerLog, env.ServerLog)
	queue, err := jobs.Connect(env.RabbitURL(), env.WorkQueue, env.ResultQueue)
	if err != nil {
		return err
	}
	defer queue.Close()
	client, err := jobs.NewClient(queue)
	if err != nil {
		return err
	}

	id, err := client.Submit(jobs.Job{
		Graph:         g,
		DampingFactor: dampingFactor,
		SampleCount:   sampleCount,
		Epsilon:       epsilon,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Submitted job %s\n", id)

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()
	result, err := client.Await(ctx, id)
	if err != nil {
		return err
	}
	if result.Error != "" {
		return errors.New(result.Error)
	}
	fmt.Printf("PageRank Results from Sampling (n = %d)\n", sampleCount)
	fmt.Print(rank.Format(result.Sampled))
	fmt.Println("PageRank Results from Iteration")
	fmt.Print(rank.Format(result.Iterated))
	return nil
}
