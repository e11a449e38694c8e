package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/keysound/file"
	"github.com/jsphweid/keysound/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Reports keysound usage for every chart in a directory",
	Long: `Reports keysound usage for every chart found below a directory.
Charts that fail to parse are listed and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := analyzeCharts(args[0])
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), report)
		return nil
	},
}

type chartsReport struct {
	numFiles     int
	numFailed    int
	failed       []string
	keysounds    []int
	unused       []int
	unusedCharts []string
}

func analyzeCharts(dir string) (chartsReport, error) {
	var report chartsReport

	paths, err := util.GatherChartPaths(dir)
	if err != nil {
		return report, err
	}

	for _, path := range paths {
		report.numFiles += 1
		b, err := file.Open(path)
		if err != nil {
			report.numFailed += 1
			report.failed = append(report.failed, err.Error())
			continue
		}

		numUnused := len(b.Chart.UnusedKeysounds())
		report.keysounds = append(report.keysounds, len(b.Chart.Keysounds()))
		report.unused = append(report.unused, numUnused)
		if numUnused > 0 {
			report.unusedCharts = append(report.unusedCharts, path)
		}
	}
	return report, nil
}

func printReport(out io.Writer, report chartsReport) {
	fmt.Fprintf(out, "charts: %v\n", report.numFiles)
	fmt.Fprintf(out, "failed to parse: %v\n", report.numFailed)
	for _, f := range report.failed {
		fmt.Fprintf(out, "  %v\n", f)
	}
	fmt.Fprintf(out, "keysound declarations: %v\n", util.Sum(report.keysounds))
	fmt.Fprintf(out, "unused declarations: %v\n", util.Sum(report.unused))
	fmt.Fprintf(out, "charts with unused keysounds: %v\n", len(report.unusedCharts))
	for _, p := range report.unusedCharts {
		fmt.Fprintf(out, "  %v\n", p)
	}
}
