package main

import (
	"github.com/spf13/cobra"

	"github.com/fareschokri/pagerank/pkg/jobs"
	"github.com/fareschokri/pagerank/pkg/utils"
)

var drainQueues bool

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume rank jobs from the work queue (env: RABBIT_HOST, WORK_QUEUE, RESULT_QUEUE)",
	RunE:  runWorker,
}

func init() {
	workerCmd.Flags().BoolVar(&drainQueues, "drain", false, "discard stale queue messages before consuming")
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	env := utils.ReadEnvVars()
	utils.InitLog(env.WorkerLog, env.ServerLog)
	queue, err := jobs.Connect(env.RabbitURL(), env.WorkQueue, env.ResultQueue)
	if err != nil {
		return err
	}
	defer queue.Close()
	if drainQueues {
		if err := queue.Drain(); err != nil {
			return err
		}
	}
	return queue.Consume()
}
