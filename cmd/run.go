package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/PrithviSinghNathawat/DiscMotion/sim"
	"github.com/PrithviSinghNathawat/DiscMotion/sim/trace"
)

var algorithmFlag string // Scheduling policy to simulate

// runCmd simulates one algorithm and prints the step trace.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one scheduling algorithm and print its head-movement trace",
	Run: func(cmd *cobra.Command, args []string) {
		alg, err := sim.ParseAlgorithm(algorithmFlag)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		input, err := resolveInput()
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Running %s over %d requests, head=%d, disk=[0,%d]",
			alg, len(input.Requests), input.StartHead, input.DiskMax)

		run, err := sim.Generate(alg, input.Requests, input.StartHead, input.Direction, input.DiskMax)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		rt := trace.FromRun(run)
		if err := trace.WriteText(os.Stdout, rt); err != nil {
			logrus.Fatalf("writing trace: %v", err)
		}

		summary := trace.Summarize(rt)
		fmt.Printf("total seek  : %d\n", summary.TotalSeek)
		fmt.Printf("avg / track : %.2f\n", summary.AvgSeekPerTrack)
	},
}

func init() {
	runCmd.Flags().StringVar(&algorithmFlag, "algorithm", string(sim.FCFS), "Scheduling algorithm (fcfs, sstf, scan, c-scan, look, c-look)")
	addInputFlags(runCmd)
}
