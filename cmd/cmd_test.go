package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsphweid/pitchcurve/model"
	"github.com/jsphweid/pitchcurve/util"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

const singleNoteProject = `{
  "tempo": 120,
  "resolution": 480,
  "parts": [
    {"id": "vocal", "notes": [{"tickOn": 0, "tickOff": 480, "key": 60, "pitch": {"points": [{"x": 0, "y": 0}]}}]},
    {"id": "bend", "curve": [{"tick": 480, "cent": 50}]}
  ]
}`

func writeProject(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "song.json")
	if err := os.WriteFile(path, []byte(singleNoteProject), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertToJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pitch.json")
	assert.NoError(t, Convert(writeProject(t), out, "json"))

	p, err := readPitch(out)
	assert.NoError(t, err)
	assert.Equal(t, []model.CurvePoint{{Tick: 0, Value: 0}, {Tick: 480, Value: 0.5}}, p.Curve())
	assert.True(t, p.Relative)
}

func TestConvertToGob(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pitch.gob")
	assert.NoError(t, Convert(writeProject(t), out, "gob"))

	b, err := util.ReadBinary[model.PitchBinary](out)
	assert.NoError(t, err)
	assert.Equal(t, []model.CurvePoint{{Tick: 0, Value: 0}, {Tick: 480, Value: 0.5}}, b.Points)
}

func TestConvertToMidi(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pitch.mid")
	assert.NoError(t, Convert(writeProject(t), out, "midi"))

	f, err := os.Open(out)
	if !assert.NoError(t, err) {
		return
	}
	defer f.Close()
	s, err := smf.ReadFrom(f)
	assert.NoError(t, err)
	assert.Equal(t, smf.MetricTicks(480), s.TimeFormat)
}

func TestConvertRejectsUnknownFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pitch.txt")
	assert.Error(t, Convert(writeProject(t), out, "txt"))
}

func TestDefaultOutPath(t *testing.T) {
	t.Setenv("PITCH_OUT_DIR", "results")
	assert.Equal(t, "", defaultOutPath("a/song.json", "", "json"))
	assert.Equal(t, "x.json", defaultOutPath("a/song.json", "x.json", "json"))
	assert.Equal(t, filepath.Join("results", "song.pitch.mid"), defaultOutPath("a/song.json", "", "midi"))
	assert.Equal(t, filepath.Join("results", "song.pitch.gob"), defaultOutPath("a/song.json", "", "gob"))
}

func TestInspectPrintsPoints(t *testing.T) {
	v := 0.5
	p := &model.Pitch{Points: []model.PitchPoint{{Tick: 0, Value: &v}, {Tick: 4}}, Relative: true}
	var buf bytes.Buffer
	inspect(&buf, p)
	assert.Equal(t, "relative: true\n0: 0.5000\n4: -\n", buf.String())
}

func TestReport(t *testing.T) {
	project := model.Project{
		Tempo:      120,
		Resolution: 480,
		Parts: []model.Part{
			{ID: "a", Curve: []model.PartCurvePoint{{Tick: 0, Cent: -100}, {Tick: 8, Cent: 200}}},
			{ID: "b"},
		},
	}
	var buf bytes.Buffer
	report(&buf, project)

	out := buf.String()
	assert.Contains(t, out, "tempo: 120, resolution: 480, parts: 2")
	assert.Contains(t, out, "part a (0 notes): 2 points, ticks 0..8, semitones -1.000..2.000")
	assert.Contains(t, out, "part b (0 notes): no pitch curve")
	assert.True(t, strings.HasSuffix(out, "merged: 2 points, ticks 0..8, semitones -1.000..2.000\n"))
}

func TestWatchDebouncesChanges(t *testing.T) {
	pollInterval = 10 * time.Millisecond
	settle = 50 * time.Millisecond
	path := writeProject(t)

	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watch(ctx, path, func() { atomic.AddInt32(&calls, 1) })
		close(done)
	}()

	// the first poll sees the file, then a burst of writes follows
	time.Sleep(30 * time.Millisecond)
	for i := 0; i < 3; i++ {
		os.WriteFile(path, []byte(singleNoteProject+strings.Repeat(" ", i+1)), 0644)
		time.Sleep(15 * time.Millisecond)
	}
	time.Sleep(200 * time.Millisecond)
	cancel()
	<-done

	got := atomic.LoadInt32(&calls)
	assert.GreaterOrEqual(t, got, int32(1))
	assert.Less(t, got, int32(4))
}
