package pitch

import (
	"github.com/jsphweid/pitchcurve/constants"
	"github.com/jsphweid/pitchcurve/model"
	"github.com/jsphweid/pitchcurve/timing"
	"github.com/jsphweid/pitchcurve/vibrato"
)

// TickConverter maps a millisecond offset to ticks at a tempo.
type TickConverter interface {
	TicksFromMs(ms float64, tempo float64) int64
}

// VibratoOverlay superimposes a note's vibrato on the part of its curve that
// lies within [TickOn, TickOff].
type VibratoOverlay interface {
	Apply(points []model.CurvePoint, params model.VibratoParams, note model.Note, tempo float64, interval int64) []model.CurvePoint
}

// Config holds conversion settings.
type Config struct {
	SamplingInterval int64
	Resolution       int64
	Ticks            TickConverter
	Vibrato          VibratoOverlay
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig samples every 4 ticks at 480 ticks per quarter note.
func DefaultConfig() Config {
	return Config{
		SamplingInterval: constants.DefaultSamplingInterval,
		Resolution:       constants.DefaultResolution,
	}
}

func WithSamplingInterval(interval int64) Option {
	return func(cfg *Config) {
		if interval > 0 {
			cfg.SamplingInterval = interval
		}
	}
}

func WithResolution(resolution int64) Option {
	return func(cfg *Config) {
		if resolution > 0 {
			cfg.Resolution = resolution
		}
	}
}

func WithTickConverter(c TickConverter) Option {
	return func(cfg *Config) {
		if c != nil {
			cfg.Ticks = c
		}
	}
}

func WithVibrato(v VibratoOverlay) Option {
	return func(cfg *Config) {
		if v != nil {
			cfg.Vibrato = v
		}
	}
}

// ApplyOptions applies opts to the default config. Collaborators left unset
// are built for the resulting resolution.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Ticks == nil {
		cfg.Ticks = timing.NewConverter(cfg.Resolution)
	}
	if cfg.Vibrato == nil {
		cfg.Vibrato = vibrato.NewOverlay(cfg.Resolution)
	}
	return cfg
}
