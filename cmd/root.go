package cmd

import (
	"context"

	"github.com/jsphweid/pitchcurve/constants"
	"github.com/jsphweid/pitchcurve/model"
	"github.com/jsphweid/pitchcurve/pitch"
	"github.com/spf13/cobra"
)

var (
	samplingInterval int64
	resolution       int64
)

var rootCmd = &cobra.Command{
	Use:   "pitchcurve",
	Short: "Note pitch points to tick pitch curves",
	Long: `Converts per-note pitch points (milliseconds from the note onset, tenths of a
semitone) into one absolute-tick, semitone-offset pitch curve per project.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&samplingInterval, "interval", constants.GetSamplingInterval(), "sampling interval in ticks")
	rootCmd.PersistentFlags().Int64Var(&resolution, "resolution", 0, "ticks per quarter note (default: taken from the input)")
}

func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}

func pitchOptions() []pitch.Option {
	opts := []pitch.Option{pitch.WithSamplingInterval(samplingInterval)}
	if resolution > 0 {
		opts = append(opts, pitch.WithResolution(resolution))
	}
	return opts
}

func effectiveResolution(project model.Project) int64 {
	if resolution > 0 {
		return resolution
	}
	if project.Resolution > 0 {
		return project.Resolution
	}
	return constants.GetResolution()
}
