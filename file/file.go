package file

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/pitchcurve/constants"
	"github.com/jsphweid/pitchcurve/midi"
	"github.com/jsphweid/pitchcurve/model"
	"github.com/pkg/errors"
)

func IsMidiPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".mid" || ext == ".midi"
}

// LoadProject reads a JSON project or a standard MIDI file.
func LoadProject(path string) (model.Project, error) {
	if IsMidiPath(path) {
		return midi.ReadProject(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, errors.Wrap(err, "error reading project file")
	}
	return DecodeProject(bytes.NewReader(data))
}

// DecodeProject parses a JSON project and fills in defaults for the tempo,
// the resolution and missing part IDs.
func DecodeProject(r io.Reader) (model.Project, error) {
	var p model.Project
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&p); err != nil {
		return p, errors.Wrap(err, "error parsing project")
	}
	if p.Tempo <= 0 {
		p.Tempo = constants.DefaultTempo
	}
	if p.Resolution <= 0 {
		p.Resolution = constants.GetResolution()
	}
	for i := range p.Parts {
		if p.Parts[i].ID == "" {
			p.Parts[i].ID = model.PartID(i)
		}
	}
	return p, nil
}

func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(v), "could not encode json")
}

func ReadPitchJSON(path string) (*model.Pitch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading pitch file")
	}
	var p model.Pitch
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrapf(err, "error parsing pitch file %s", path)
	}
	return &p, nil
}
