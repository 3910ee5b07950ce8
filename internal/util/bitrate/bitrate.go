// Package bitrate holds the audio bitrate ladder offered in the bitrate menu
// and the recommendation heuristic used to preselect a step.
package bitrate

// Steps are the selectable audio bitrates in kbps, lowest first.
var Steps = []int{64, 96, 128, 160, 192, 256, 320, 384}

// DefaultKbps is the safe default when the source bitrate is unknown.
// 128 kbps stereo is YouTube's recommended audio bitrate.
const DefaultKbps = 128

// NextHigher returns the first ladder step strictly above the probed source
// bitrate, so a re-encode never lands below the source quality. Zero or
// negative means the source bitrate is unknown and yields the default.
func NextHigher(sourceKbps int) int {
	if sourceKbps <= 0 {
		return DefaultKbps
	}
	for _, v := range Steps {
		if v > sourceKbps {
			return v
		}
	}
	return Steps[len(Steps)-1]
}

// StepIndex returns the ladder index of kbps, or fallback when it is not a
// ladder value.
func StepIndex(kbps, fallback int) int {
	for i, v := range Steps {
		if v == kbps {
			return i
		}
	}
	return fallback
}

// Clamp returns v constrained to [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
