package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Note struct {
	TickOn  int64 `json:"tickOn"`
	TickOff int64 `json:"tickOff"`
	Key     int   `json:"key"`
}

// Shape declares how the segment following a point is filled in.
type Shape int

const (
	ShapeEaseInOut Shape = iota
	ShapeEaseIn
	ShapeEaseOut
	ShapeLinear
)

var shapeNames = map[Shape][2]string{
	ShapeEaseInOut: {"io", "easeInOut"},
	ShapeEaseIn:    {"i", "easeIn"},
	ShapeEaseOut:   {"o", "easeOut"},
	ShapeLinear:    {"l", "linear"},
}

func (s Shape) String() string {
	if names, ok := shapeNames[s]; ok {
		return names[1]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

func ParseShape(text string) (Shape, error) {
	for s, names := range shapeNames {
		if strings.EqualFold(text, names[0]) || strings.EqualFold(text, names[1]) {
			return s, nil
		}
	}
	return ShapeEaseInOut, fmt.Errorf("unknown shape %q", text)
}

func (s Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(shapeNames[s][0])
}

func (s *Shape) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParseShape(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// RawNotePoint is a pitch point as authored on a note: X is milliseconds from
// the note onset, Y is in tenths of a semitone.
type RawNotePoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Shape Shape   `json:"shape"`
}

// VibratoParams follow the usual vocal-synth layout: Length, In, Out, Shift
// and Drift are percentages, Period is milliseconds and Depth is cents.
type VibratoParams struct {
	Length float64 `json:"length"`
	Period float64 `json:"period"`
	Depth  float64 `json:"depth"`
	In     float64 `json:"in"`
	Out    float64 `json:"out"`
	Shift  float64 `json:"shift"`
	Drift  float64 `json:"drift"`
}

type NotePitch struct {
	Points  []RawNotePoint `json:"points"`
	Vibrato VibratoParams  `json:"vibrato"`
}

type NoteWithPitch struct {
	Note
	Pitch NotePitch `json:"pitch"`
}

var ErrLengthMismatch = errors.New("notes and pitch inputs differ in length")

// PairNotes zips notes with their pitch inputs. Extra entries on the longer
// side are dropped.
func PairNotes(notes []Note, pitches []NotePitch) []NoteWithPitch {
	n := len(notes)
	if len(pitches) < n {
		n = len(pitches)
	}
	res := make([]NoteWithPitch, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, NoteWithPitch{Note: notes[i], Pitch: pitches[i]})
	}
	return res
}

func PairNotesStrict(notes []Note, pitches []NotePitch) ([]NoteWithPitch, error) {
	if len(notes) != len(pitches) {
		return nil, fmt.Errorf("%w: %d notes, %d pitch inputs", ErrLengthMismatch, len(notes), len(pitches))
	}
	return PairNotes(notes, pitches), nil
}
