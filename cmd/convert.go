package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/pitchcurve/constants"
	"github.com/jsphweid/pitchcurve/file"
	"github.com/jsphweid/pitchcurve/midi"
	"github.com/jsphweid/pitchcurve/model"
	"github.com/jsphweid/pitchcurve/pitch"
	"github.com/jsphweid/pitchcurve/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	outPath   string
	format    string
	bendRange float64
)

func init() {
	convertCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout for json, the out dir otherwise)")
	convertCmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json|gob|midi")
	convertCmd.Flags().Float64Var(&bendRange, "bend-range", constants.DefaultBendRange, "pitch bend range in semitones for midi output")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <project.json|song.mid>",
	Short: "Converts a project into a pitch curve",
	Long:  `Converts a project into a single merged pitch curve`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Convert(args[0], outPath, format)
	},
}

// Convert loads input, builds the merged curve of all its parts and writes it
// to out in the given format.
func Convert(input, out, format string) error {
	project, err := file.LoadProject(input)
	if err != nil {
		return err
	}
	p := pitch.FromProject(project, pitchOptions()...)
	if p == nil {
		fmt.Fprintf(os.Stderr, "No pitch curve for %v\n", input)
		return nil
	}
	fmt.Fprintf(os.Stderr, "Converted %v parts of %v into %v points\n", len(project.Parts), input, len(p.Points))
	return writePitch(p, project, defaultOutPath(input, out, format), format)
}

func defaultOutPath(input, out, format string) string {
	if out != "" || format == "json" {
		return out
	}
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	ext := map[string]string{"gob": ".gob", "midi": ".mid"}[format]
	return util.OutputPath(constants.GetOutDir(), name+".pitch"+ext)
}

func writePitch(p *model.Pitch, project model.Project, out, format string) error {
	if out == "" {
		return file.WriteJSON(os.Stdout, p)
	}
	if err := util.EnsureOutputDir(filepath.Dir(out)); err != nil {
		return err
	}

	switch format {
	case "json":
		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "couldn't open file")
		}
		defer f.Close()
		return file.WriteJSON(f, p)
	case "gob":
		return util.CreateBinary(out, p.Binary())
	case "midi":
		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "couldn't open file")
		}
		defer f.Close()
		return midi.WritePitch(f, p, project.Tempo, effectiveResolution(project), bendRange)
	default:
		return errors.Errorf("invalid format %q (expected json|gob|midi)", format)
	}
}
