package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/PrithviSinghNathawat/DiscMotion/sim"
)

var (
	// CLI flags shared by the run and compare subcommands
	logLevel     string // Log verbosity level
	diskMax      int    // Highest addressable track
	requestsFlag []int  // Pending request addresses, comma-separated
	startHead    int    // Initial head position
	direction    string // Initial sweep direction for directional algorithms
	scenarioPath string // YAML scenario file (overrides --requests/--head/--direction)
	randomCount  int    // Generate this many random requests instead of --requests
	seed         int64  // Seed for random request generation
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "discmotion",
	Short: "Disk-head scheduling simulator (FCFS, SSTF, SCAN, C-SCAN, LOOK, C-LOOK)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addInputFlags attaches the simulation input flags shared by subcommands.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&requestsFlag, "requests", nil, "Comma-separated request addresses")
	cmd.Flags().IntVar(&startHead, "head", 50, "Initial head position")
	cmd.Flags().StringVar(&direction, "direction", string(sim.Right), "Initial sweep direction (left, right)")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides --requests, --head, --direction)")
	cmd.Flags().IntVar(&randomCount, "random", 0, "Generate this many random requests instead of --requests")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random request generation")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&diskMax, "disk-max", sim.DefaultDiskMax, "Highest addressable track")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
