package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jsphweid/pitchcurve/file"
	"github.com/jsphweid/pitchcurve/model"
	"github.com/jsphweid/pitchcurve/pitch"
	"github.com/jsphweid/pitchcurve/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <project.json|song.mid>",
	Short: "Creates a report",
	Long:  `Summarizes the pitch curve of every part and of the whole project`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := file.LoadProject(args[0])
		if err != nil {
			return err
		}
		report(os.Stdout, project)
		return nil
	},
}

type curveReport struct {
	numPoints int
	firstTick int64
	lastTick  int64
	minValue  float64
	maxValue  float64
}

func analyzeCurve(p *model.Pitch) curveReport {
	r := curveReport{minValue: math.Inf(1), maxValue: math.Inf(-1)}
	curve := p.Curve()
	r.numPoints = len(curve)
	if len(curve) == 0 {
		return r
	}
	r.firstTick = curve[0].Tick
	r.lastTick = curve[len(curve)-1].Tick
	for _, pt := range curve {
		r.minValue = util.Min(r.minValue, pt.Value)
		r.maxValue = util.Max(r.maxValue, pt.Value)
	}
	return r
}

func printReport(w io.Writer, name string, r curveReport) {
	if r.numPoints == 0 {
		fmt.Fprintf(w, "%v: no pitch curve\n", name)
		return
	}
	fmt.Fprintf(w, "%v: %v points, ticks %v..%v, semitones %.3f..%.3f\n",
		name, r.numPoints, r.firstTick, r.lastTick, r.minValue, r.maxValue)
}

func report(w io.Writer, project model.Project) {
	opts := pitchOptions()
	if project.Resolution > 0 && resolution <= 0 {
		opts = append([]pitch.Option{pitch.WithResolution(project.Resolution)}, opts...)
	}
	fmt.Fprintf(w, "tempo: %v, resolution: %v, parts: %v\n", project.Tempo, effectiveResolution(project), len(project.Parts))

	var merged *model.Pitch
	for _, part := range project.Parts {
		p := pitch.FromPart(part, project.Tempo, opts...)
		printReport(w, fmt.Sprintf("part %v (%v notes)", part.ID, len(part.Notes)), analyzeCurve(p))
		merged = pitch.MergeFromParts(merged, p)
	}
	printReport(w, "merged", analyzeCurve(merged))
}
