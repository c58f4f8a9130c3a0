// launchpad-sim drives a full issuance lifecycle against the in-process
// runtime: deploy, mint out the cap, seed liquidity and the farm, release
// vested units, settle the owner. Useful for eyeballing accounting with
// real parameter sets before deploying them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	root := &cobra.Command{
		Use:           "launchpad-sim",
		Short:         "Simulate a token issuance lifecycle",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var configPath string
	var verbose bool
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scenario described by a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(configPath)
			if err != nil {
				return fmt.Errorf("load scenario: %w", err)
			}
			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runScenario(scenario, log)
		},
	}
	runCmd.Flags().StringVarP(&configPath, "config", "c", "scenario.yaml", "scenario config file")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
