// Package probe asks ffprobe about a media file. Probing is best-effort:
// any failure, missing field, or non-numeric value degrades to "unknown"
// rather than aborting the flow.
package probe

import (
	"context"
	"strconv"
	"strings"

	"ytstill/internal/util"
)

// Info describes an audio file. Zero values mean unknown.
type Info struct {
	DurationSec  float64
	BitrateKbps  int
	CodecName    string
	SampleRateHz int
}

// Audio probes path for duration, bitrate, codec, and sample rate with a
// single ffprobe call. The stream bitrate is preferred; the container
// bitrate fills in when the stream does not carry one.
func Audio(ctx context.Context, runner util.CmdRunner, ffprobePath, path string) Info {
	res, err := runner.Run(ctx, util.CmdSpec{
		Path: ffprobePath,
		Args: []string{
			"-v", "error",
			"-select_streams", "a:0",
			"-show_entries", "stream=codec_name,sample_rate,bit_rate",
			"-show_entries", "format=duration,bit_rate",
			"-of", "default=noprint_wrappers=1",
			path,
		},
		CaptureStdout: true,
	})
	if err != nil && len(res.Stdout) == 0 {
		return Info{}
	}
	return ParseInfo(string(res.Stdout))
}

// ParseInfo reads ffprobe's key=value output into an Info. The stream
// section prints before the format section, so the first bit_rate seen is
// the stream's; the format bit_rate only fills a still-unknown value.
// Exported for testing without a real ffprobe binary.
func ParseInfo(out string) Info {
	var info Info
	for _, line := range strings.Split(out, "\n") {
		kv := strings.SplitN(strings.TrimSpace(line), "=", 2)
		if len(kv) != 2 {
			continue
		}
		key, val := kv[0], kv[1]
		switch key {
		case "bit_rate":
			if info.BitrateKbps == 0 {
				if v, err := strconv.Atoi(val); err == nil && v > 0 {
					info.BitrateKbps = v / 1000
				}
			}
		case "duration":
			if v, err := strconv.ParseFloat(val, 64); err == nil && v > 0 {
				info.DurationSec = v
			}
		case "codec_name":
			info.CodecName = val
		case "sample_rate":
			if v, err := strconv.Atoi(val); err == nil && v > 0 {
				info.SampleRateHz = v
			}
		}
	}
	return info
}
