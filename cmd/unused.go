package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/keysound/bms"
	"github.com/jsphweid/keysound/file"
	"github.com/jsphweid/keysound/keysound"
	"github.com/spf13/cobra"
)

var (
	removeUnused bool
	deleteFiles  bool
)

func init() {
	unusedCmd.Flags().BoolVar(&removeUnused, "remove", false, "remove the unused declarations from the chart")
	unusedCmd.Flags().BoolVar(&deleteFiles, "delete-files", false, "also delete the audio files of removed declarations")
	rootCmd.AddCommand(unusedCmd)
}

var unusedCmd = &cobra.Command{
	Use:   "unused <chart>",
	Short: "Lists keysounds no note uses",
	Long:  `Lists keysounds no note uses and optionally removes them.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var b *file.BmsFile
		var err error
		if removeUnused {
			b, err = openForEdit(cmd.OutOrStdout(), args[0])
		} else {
			b, err = file.Open(args[0])
		}
		if err != nil {
			return err
		}

		unused := listUnused(cmd.OutOrStdout(), b)
		if !removeUnused || len(unused) == 0 {
			return nil
		}
		return removeKeysounds(cmd.OutOrStdout(), b, unused, deleteFiles)
	},
}

func listUnused(out io.Writer, b *file.BmsFile) []keysound.Keysound {
	unused := b.Chart.UnusedKeysounds()
	if len(unused) == 0 {
		fmt.Fprintln(out, "No unused keysounds are present in the .bms file.")
		return nil
	}

	fmt.Fprintln(out, "The following keysounds are unused:")
	for _, k := range unused {
		fmt.Fprintln(out, k)
	}
	return unused
}

// removeKeysounds drops the given declarations and saves. With deleteAudio
// the audio files go too; a declaration whose file could not be deleted
// is kept.
func removeKeysounds(out io.Writer, b *file.BmsFile, keysounds []keysound.Keysound, deleteAudio bool) error {
	keep := make(map[bms.ID]bool)
	if deleteAudio {
		for _, k := range keysounds {
			if !deleteAudioFile(out, b.AudioPath(k.File)) {
				keep[k.ID] = true
			}
		}
	}

	var ids []bms.ID
	for _, k := range keysounds {
		if !keep[k.ID] {
			ids = append(ids, k.ID)
		}
	}
	removed := b.Chart.RemoveKeysounds(ids...)
	fmt.Fprintf(out, "Removed %v keysound declarations\n", removed)

	fmt.Fprintf(out, "Saving %v\n", b.Path)
	return b.Save()
}

// deleteAudioFile reports false when the file exists but could not be
// removed. A missing file counts as deleted.
func deleteAudioFile(out io.Writer, path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(out, "Skipping deletion of file %v (doesn't exist)\n", path)
		return true
	}
	if err != nil {
		fmt.Fprintf(out, "Error checking %v: %v\n", path, err)
		return false
	}
	if !info.Mode().IsRegular() {
		fmt.Fprintf(out, "File %v exists, but is not a regular file.\n", path)
		return false
	}
	if err := os.Remove(path); err != nil {
		fmt.Fprintf(out, "Error removing %v: %v\n", path, err)
		return false
	}
	fmt.Fprintf(out, "Removed %v\n", path)
	return true
}
