package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsphweid/keysound/file"
	"github.com/jsphweid/keysound/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var inspectFormat string

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chart>",
	Short: "Inspects a chart's keysounds",
	Long:  `Prints every keysound declaration with how many note slots use it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := file.Open(args[0])
		if err != nil {
			return err
		}
		return inspect(cmd.OutOrStdout(), buildReport(b), inspectFormat)
	},
}

func inspect(out io.Writer, report model.ChartReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		fmt.Fprintf(out, "path: %v\n", report.Path)
		fmt.Fprintf(out, "lines: %v\n", report.NumLines)
		fmt.Fprintf(out, "keysounds: %v\n", report.NumKeysounds)
		for _, k := range report.Keysounds {
			fmt.Fprintf(out, "%v %v (%v slots)\n", k.ID, k.File, k.Slots)
		}
		fmt.Fprintf(out, "unused: %v\n", len(report.Unused))
		for _, u := range report.Unused {
			fmt.Fprintln(out, u)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
