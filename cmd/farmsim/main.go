package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/meverselabs/stakefarm/common/rlog"
)

func main() {
	var envPath string
	var dump bool
	var rootCmd = &cobra.Command{
		Use:   "farmsim",
		Short: "simulates reward farms on an in-memory ledger",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
				rlog.Errorw("load env", "path", envPath, "error", err)
			}
			if lv := os.Getenv("FARMSIM_LOG_LEVEL"); lv != "" {
				rlog.SetLevel(lv)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "path of the env file")
	rootCmd.PersistentFlags().BoolVar(&dump, "dump", false, "print the decoded scenario")
	rootCmd.AddCommand(runCommand(&dump))
	rootCmd.AddCommand(serveCommand(&dump))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	rlog.Sync()
}
