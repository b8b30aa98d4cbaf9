package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/meverselabs/stakefarm/cmd/farmsim/config"
	"github.com/meverselabs/stakefarm/cmd/farmsim/sim"
)

func loadScenario(path string, dump bool) (*sim.Scenario, error) {
	sc := &sim.Scenario{}
	if err := config.LoadFile(path, sc); err != nil {
		return nil, err
	}
	if dump {
		spew.Fdump(os.Stderr, sc)
	}
	return sc, nil
}

// runScenario loads and replays the scenario, writing the positions to stdout
func runScenario(path string, dump bool) (*sim.Simulator, error) {
	sc, err := loadScenario(path, dump)
	if err != nil {
		return nil, err
	}
	s, err := sim.New(sc)
	if err != nil {
		return nil, err
	}
	if err := s.Run(os.Stdout); err != nil {
		return nil, err
	}
	return s, nil
}

func runCommand(pDump *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run [scenario]",
		Short: "replays the scenario and prints the pending rewards after each step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := runScenario(args[0], *pDump); err != nil {
				fmt.Println("error :", err)
				return err
			}
			return nil
		},
	}
}
