package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/keysound/bms"
	"github.com/jsphweid/keysound/chart"
	"github.com/jsphweid/keysound/file"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(replaceCmd)
}

var replaceCmd = &cobra.Command{
	Use:   "replace <chart> <new-id> <old-id,old-id,...>",
	Short: "Replaces one or more keysounds with another one",
	Long: `Replaces one or more keysounds with another one. The old
declarations are removed and every playable note that used them is
pointed at the new keysound.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		newID, err := parseID(args[1])
		if err != nil {
			return err
		}
		oldIDs, err := parseIDs(args[2])
		if err != nil {
			return err
		}

		b, err := openForEdit(cmd.OutOrStdout(), args[0])
		if err != nil {
			return err
		}
		_, err = replaceKeysounds(cmd.OutOrStdout(), b, newID, oldIDs)
		return err
	},
}

// replaceKeysounds reloads the chart so edits made elsewhere are not lost,
// checks every id is declared, rewrites and saves. Nothing is written when
// validation fails.
func replaceKeysounds(out io.Writer, b *file.BmsFile, newID bms.ID, oldIDs []bms.ID) ([]chart.RewriteResult, error) {
	if err := b.Reload(); err != nil {
		return nil, err
	}
	if !b.Chart.HasKeysound(newID) {
		return nil, fmt.Errorf("no keysound exists with id %v", newID)
	}

	var missing []string
	for _, oldID := range oldIDs {
		if oldID == newID {
			return nil, fmt.Errorf("cannot replace keysound %v with itself", newID)
		}
		if !b.Chart.HasKeysound(oldID) {
			missing = append(missing, oldID.String())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("ids don't exist in the bms file: %v", strings.Join(missing, ", "))
	}

	var results []chart.RewriteResult
	for _, oldID := range oldIDs {
		fmt.Fprintf(out, "Replacing %v with %v\n", oldID, newID)
		res := b.Chart.Rewrite(oldID, newID)
		fmt.Fprintf(out, "Rewrote %v slots on %v lines\n", res.Slots, res.Lines)
		if res.Dangling() {
			fmt.Fprintf(out, "WARNING: %v is still used by %v lines on protected channels but its declaration was removed\n", oldID, res.Protected)
		}
		results = append(results, res)
	}

	fmt.Fprintf(out, "Saving %v\n", b.Path)
	if err := b.Save(); err != nil {
		return nil, err
	}
	return results, nil
}
