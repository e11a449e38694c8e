package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jsphweid/keysound/constants"
	"github.com/jsphweid/keysound/file"
	"github.com/jsphweid/keysound/util"
	"github.com/spf13/cobra"
)

var deleteOrphans bool

func init() {
	orphansCmd.Flags().BoolVar(&deleteOrphans, "delete", false, "delete the files that were found")
	rootCmd.AddCommand(orphansCmd)
}

var orphansCmd = &cobra.Command{
	Use:   "orphans <chart>",
	Short: "Lists audio files no keysound declaration names",
	Long: `Lists audio files next to the chart that no keysound declaration
names and optionally deletes them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := file.Open(args[0])
		if err != nil {
			return err
		}
		orphans, err := findOrphans(cmd.OutOrStdout(), b)
		if err != nil {
			return err
		}
		if deleteOrphans {
			deleteOrphanFiles(cmd.OutOrStdout(), orphans)
		}
		return nil
	},
}

func findOrphans(out io.Writer, b *file.BmsFile) ([]string, error) {
	paths, err := util.GatherAudioPaths(b.Dir(), constants.GetAudioExtensions())
	if err != nil {
		return nil, err
	}

	var res []string
	for _, name := range b.Chart.UnreferencedFiles(util.BaseNames(paths)) {
		res = append(res, filepath.Join(b.Dir(), name))
	}

	if len(res) == 0 {
		fmt.Fprintln(out, "No unused files found.")
		return nil, nil
	}
	for _, p := range res {
		fmt.Fprintln(out, p)
	}
	fmt.Fprintf(out, "\n%v unused files were found.\n", len(res))
	return res, nil
}

func deleteOrphanFiles(out io.Writer, paths []string) {
	for _, p := range paths {
		deleteAudioFile(out, p)
	}
}
