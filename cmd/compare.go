package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/PrithviSinghNathawat/DiscMotion/sim"
)

// compareCmd ranks all six algorithms against one identical input.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank all six algorithms by total seek distance for one input",
	Run: func(cmd *cobra.Command, args []string) {
		input, err := resolveInput()
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Comparing all algorithms over %d requests, head=%d, direction=%s",
			len(input.Requests), input.StartHead, input.Direction)

		results, err := sim.CompareAll(input.Requests, input.StartHead, input.Direction, input.DiskMax)
		if err != nil {
			logrus.Fatalf("comparison failed: %v", err)
		}

		writeComparisonTable(os.Stdout, results)
	},
}

// writeComparisonTable renders the ranked results. Ranks start at 1; equal
// totals share what the stable ordering gave them.
func writeComparisonTable(w io.Writer, results []sim.AlgorithmResult) {
	rows := make([][]string, 0, len(results))
	for i, res := range results {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			string(res.Algorithm),
			fmt.Sprint(res.TotalSeek),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Algorithm", "Total Seek"})
	table.AppendBulk(rows)
	table.Render()
}

func init() {
	addInputFlags(compareCmd)
}
