package encoder

import (
	"strconv"
	"strings"
)

// Sample is the latest progress reading parsed from ffmpeg's -progress
// stream: how much of the input has been processed and at what speed
// relative to realtime.
type Sample struct {
	ProcessedSeconds float64
	SpeedFactor      float64
}

// ProgressState accumulates key=value lines from ffmpeg's -progress output.
// Unrecognized keys and malformed values are ignored, keeping the last good
// sample; garbage input never fails.
type ProgressState struct {
	sample Sample
}

// UpdateFromLine folds one progress line into the state. Returns true when
// the line updated a recognized field.
func (ps *ProgressState) UpdateFromLine(line string) bool {
	kv := strings.SplitN(line, "=", 2)
	if len(kv) != 2 {
		return false
	}
	key := strings.TrimSpace(kv[0])
	val := strings.TrimSpace(kv[1])

	switch key {
	case "out_time_ms":
		// Despite the name, ffmpeg reports this field in microseconds.
		v, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return false
		}
		ps.sample.ProcessedSeconds = float64(v) / 1_000_000.0
		return true
	case "speed":
		// Formatted as a realtime multiple with a trailing "x", e.g. "1.23x".
		v, err := strconv.ParseFloat(strings.TrimSuffix(val, "x"), 64)
		if err != nil {
			return false
		}
		ps.sample.SpeedFactor = v
		return true
	}
	return false
}

// Sample returns the last good reading.
func (ps *ProgressState) Sample() Sample { return ps.sample }
