package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/keysound/constants"
	"github.com/jsphweid/keysound/file"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <chart>",
	Short: "Reports unused keysounds whenever the chart changes",
	Long: `Watches a chart while it is being edited elsewhere and reports
unused keysounds each time it settles after a change.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := file.Open(args[0])
		if err != nil {
			return err
		}
		listUnused(cmd.OutOrStdout(), b)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return watch(ctx, cmd.OutOrStdout(), b, constants.GetWatchInterval(), constants.GetDebounce())
	},
}

type watcher struct {
	ctx  context.Context
	mu   sync.Mutex
	out  io.Writer
	file *file.BmsFile
}

func (w *watcher) report() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.ctx.Err() != nil {
		return
	}
	fmt.Fprintf(w.out, "Reloading %v\n", w.file.Path)
	if err := w.file.Reload(); err != nil {
		fmt.Fprintf(w.out, "Error reloading the BMS file: %v\n", err)
		return
	}
	listUnused(w.out, w.file)
}

// watch polls the chart's modification time every interval. Bursts of
// changes closer together than wait produce a single report.
func watch(ctx context.Context, out io.Writer, b *file.BmsFile, interval, wait time.Duration) error {
	w := &watcher{ctx: ctx, out: out, file: b}
	debounced := debounce.New(wait)

	lastMod, err := modTime(b.Path)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			// drop a report still waiting on the debounce timer
			debounced(func() {})
			return nil
		case <-ticker.C:
			mod, err := modTime(b.Path)
			if err != nil {
				fmt.Fprintf(out, "Error checking %v: %v\n", b.Path, err)
				continue
			}
			if mod.Equal(lastMod) {
				continue
			}
			lastMod = mod
			debounced(w.report)
		}
	}
}

func modTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
