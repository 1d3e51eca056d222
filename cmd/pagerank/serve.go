package main

import (
	"github.com/spf13/cobra"

	"github.com/fareschokri/pagerank/pkg/server"
	"github.com/fareschokri/pagerank/pkg/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server (env: HOST, PORT)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	env := utils.ReadEnvVars()
	utils.InitLog(env.WorkerLog, env.ServerLog)
	return server.Start(env)
}
