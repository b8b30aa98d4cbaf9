package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meverselabs/stakefarm/cmd/farmsim/api"
)

// DefaultBindAddress is used when neither the flag nor FARMSIM_ADDR is given
const DefaultBindAddress = ":48000"

func serveCommand(pDump *bool) *cobra.Command {
	var bindAddress string
	cmd := &cobra.Command{
		Use:   "serve [scenario]",
		Short: "replays the scenario and serves its state over http",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := runScenario(args[0], *pDump)
			if err != nil {
				fmt.Println("error :", err)
				return err
			}
			addr := bindAddress
			if addr == "" {
				addr = os.Getenv("FARMSIM_ADDR")
			}
			if addr == "" {
				addr = DefaultBindAddress
			}
			return api.NewServer(s).Run(addr)
		},
	}
	cmd.Flags().StringVar(&bindAddress, "addr", "", "listen address, FARMSIM_ADDR by default")
	return cmd
}
