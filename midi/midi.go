package midi

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/jsphweid/pitchcurve/constants"
	"github.com/jsphweid/pitchcurve/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const maxBend = 8191

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = &blank
			e = fmt.Errorf("error parsing midi file... %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "error reading midi file")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}

func ReadProject(filepath string) (model.Project, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return model.Project{}, err
	}
	return ProjectFromSMF(s, constants.DefaultBendRange), nil
}

// ProjectFromSMF turns every track with notes or pitch bends into a part.
// Notes carry no authored pitch points; pitch bends become the part curve,
// scaled by bendRange semitones. The first tempo event sets the project tempo.
func ProjectFromSMF(s *smf.SMF, bendRange float64) model.Project {
	project := model.Project{
		Tempo:      constants.DefaultTempo,
		Resolution: constants.DefaultResolution,
	}
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		project.Resolution = int64(mt.Resolution())
	}

	tempoFound := false
	for i, track := range s.Tracks {
		var absTicks int64
		pressed := make(map[uint8]int64)
		var notes []model.NoteWithPitch
		var curve []model.PartCurvePoint

		for _, event := range track {
			absTicks += int64(event.Delta)
			var bpm float64
			if event.Message.GetMetaTempo(&bpm) {
				if !tempoFound {
					project.Tempo = bpm
					tempoFound = true
				}
				continue
			}

			msg := midi.Message(event.Message)
			var channel, key, velocity uint8
			var relative int16
			var absolute uint16
			switch {
			case msg.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				pressed[key] = absTicks
			case msg.GetNoteOn(&channel, &key, &velocity), msg.GetNoteOff(&channel, &key, &velocity):
				on, ok := pressed[key]
				if !ok {
					continue
				}
				delete(pressed, key)
				notes = append(notes, model.NoteWithPitch{Note: model.Note{TickOn: on, TickOff: absTicks, Key: int(key)}})
			case msg.GetPitchBend(&channel, &relative, &absolute):
				curve = append(curve, model.PartCurvePoint{Tick: absTicks, Cent: BendToCent(relative, bendRange)})
			}
		}

		if len(notes) == 0 && len(curve) == 0 {
			continue
		}
		sort.SliceStable(notes, func(a, b int) bool {
			return notes[a].TickOn < notes[b].TickOn
		})
		project.Parts = append(project.Parts, model.Part{ID: model.PartID(i), Notes: notes, Curve: curve})
	}
	return project
}

// WritePitch writes a relative pitch curve as a single-track SMF of pitch
// bend messages on channel 0. Points before tick 0 are played at tick 0.
func WritePitch(w io.Writer, p *model.Pitch, tempo float64, resolution int64, bendRange float64) error {
	if p == nil {
		return errors.New("no pitch curve to write")
	}
	if !p.Relative {
		return errors.New("absolute pitch curves cannot be written as pitch bend")
	}
	if resolution <= 0 || resolution > math.MaxUint16 {
		return errors.Errorf("resolution %d does not fit a midi header", resolution)
	}
	if tempo <= 0 {
		tempo = constants.DefaultTempo
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(uint16(resolution))

	var track smf.Track
	track.Add(0, smf.MetaTempo(tempo))
	var last int64
	for _, pt := range p.Curve() {
		tick := pt.Tick
		if tick < 0 {
			tick = 0
		}
		track.Add(uint32(tick-last), midi.Pitchbend(0, SemitoneToBend(pt.Value, bendRange)))
		last = tick
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return errors.Wrap(err, "could not add pitch track")
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write midi file")
	}
	return nil
}

// SemitoneToBend clamps to the 14 bit pitch bend range.
func SemitoneToBend(semitones float64, bendRange float64) int16 {
	if bendRange <= 0 {
		bendRange = constants.DefaultBendRange
	}
	v := math.Round(semitones / bendRange * (maxBend + 1))
	v = math.Max(-maxBend-1, math.Min(maxBend, v))
	return int16(v)
}

func BendToCent(bend int16, bendRange float64) int {
	if bendRange <= 0 {
		bendRange = constants.DefaultBendRange
	}
	return int(math.Round(float64(bend) / (maxBend + 1) * bendRange * 100))
}
