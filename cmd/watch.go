package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
)

var (
	pollInterval time.Duration
	settle       time.Duration
)

func init() {
	watchCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")
	watchCmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json|gob|midi")
	watchCmd.Flags().DurationVar(&pollInterval, "poll", 250*time.Millisecond, "how often the input is checked for changes")
	watchCmd.Flags().DurationVar(&settle, "settle", 500*time.Millisecond, "quiet time after the last change before converting")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <project.json|song.mid>",
	Short: "Reconverts a project whenever it changes",
	Long:  `Reconverts a project whenever it changes`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		watch(ctx, args[0], func() {
			if err := Convert(args[0], outPath, format); err != nil {
				fmt.Printf("Conversion failed: %v\n", err)
			}
		})
		return nil
	},
}

// watch polls path and calls onChange once changes have settled, until ctx
// is done.
func watch(ctx context.Context, path string, onChange func()) {
	debounced := debounce.New(settle)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastMod time.Time
	var lastSize int64 = -1
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		info, err := os.Stat(path)
		if err != nil {
			fmt.Printf("Could not stat %v: %v\n", path, err)
			continue
		}
		if info.ModTime().Equal(lastMod) && info.Size() == lastSize {
			continue
		}
		lastMod, lastSize = info.ModTime(), info.Size()
		fmt.Printf("Change detected in %v\n", path)
		debounced(onChange)
	}
}
