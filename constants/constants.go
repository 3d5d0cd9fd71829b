package constants

import (
	"os"
	"strconv"
)

const DefaultResolution = 480

// Ticks between samples of every generated curve.
const DefaultSamplingInterval = 4

const DefaultTempo = 120.0

// General MIDI default pitch-bend range, in semitones.
const DefaultBendRange = 2.0

const DefaultDynamoTable = "pitchcurve-cache"

func GetOutDir() string {
	path := os.Getenv("PITCH_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetSamplingInterval() int64 {
	return getPositiveInt("PITCH_SAMPLING_INTERVAL", DefaultSamplingInterval)
}

func GetResolution() int64 {
	return getPositiveInt("PITCH_RESOLUTION", DefaultResolution)
}

// GetDynamoEndpoint returns "" when no cache is configured.
func GetDynamoEndpoint() string {
	return os.Getenv("PITCH_DYNAMO_ENDPOINT")
}

func GetDynamoTable() string {
	table := os.Getenv("PITCH_DYNAMO_TABLE")
	if table != "" {
		return table
	}
	return DefaultDynamoTable
}

func getPositiveInt(name string, fallback int64) int64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
