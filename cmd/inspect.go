package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jsphweid/pitchcurve/file"
	"github.com/jsphweid/pitchcurve/model"
	"github.com/jsphweid/pitchcurve/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <pitch.json|pitch.gob>",
	Short: "Inspects a converted pitch curve",
	Long:  `Prints every point of a converted pitch curve`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := readPitch(args[0])
		if err != nil {
			return err
		}
		inspect(os.Stdout, p)
		return nil
	},
}

func readPitch(path string) (*model.Pitch, error) {
	if filepath.Ext(path) == ".gob" {
		b, err := util.ReadBinary[model.PitchBinary](path)
		if err != nil {
			return nil, err
		}
		return b.Pitch(), nil
	}
	return file.ReadPitchJSON(path)
}

func inspect(w io.Writer, p *model.Pitch) {
	fmt.Fprintf(w, "relative: %v\n", p.Relative)
	for _, pt := range p.Points {
		if pt.Value == nil {
			fmt.Fprintf(w, "%v: -\n", pt.Tick)
			continue
		}
		fmt.Fprintf(w, "%v: %.4f\n", pt.Tick, *pt.Value)
	}
}
