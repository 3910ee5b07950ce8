package encoder

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"ytstill/internal/model"
)

// ContainerSpec binds an audio codec choice to the container and video codec
// that carry it. Opus and Vorbis are only valid in WebM, which in turn means
// VP9 video; everything else rides in MP4 with H.264.
type ContainerSpec struct {
	Container  string
	VideoCodec string
	VideoArgs  []string // codec-specific video arguments
}

var h264Still = ContainerSpec{
	Container:  "mp4",
	VideoCodec: "libx264",
	VideoArgs:  []string{"-tune", "stillimage", "-pix_fmt", "yuv420p", "-preset", "veryfast", "-movflags", "+faststart"},
}

var vp9Still = ContainerSpec{
	Container:  "webm",
	VideoCodec: "libvpx-vp9",
	// Constant-quality mode; a still frame compresses well at CRF 32.
	VideoArgs: []string{"-pix_fmt", "yuv420p", "-crf", "32", "-b:v", "0"},
}

var containerTable = map[model.AudioCodec]ContainerSpec{
	model.CodecAAC:    h264Still,
	model.CodecMP3:    h264Still,
	model.CodecOpus:   vp9Still,
	model.CodecVorbis: vp9Still,
}

// Lookup returns the container mapping for the codec, falling back to the
// MP4/H.264 path for codecs missing from the table.
func Lookup(codec model.AudioCodec) ContainerSpec {
	if spec, ok := containerTable[codec]; ok {
		return spec
	}
	return h264Still
}

// ScalePadFilter scales the input into the target frame preserving aspect
// ratio, then pads to the exact resolution with centered borders.
func ScalePadFilter(r model.Resolution) string {
	return fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2",
		r.Width, r.Height, r.Width, r.Height)
}

// BuildArgs constructs the ffmpeg argument vector for a still-image encode.
// The image loops as the sole video frame for the duration of the audio.
// Returns the arguments and the output path, rewritten when its extension
// does not match the container chosen by the codec table.
func BuildArgs(req model.EncodeRequest, includeProgress bool) (args []string, outputPath string) {
	spec := Lookup(req.AudioCodec)

	outputPath = req.OutputPath
	if !strings.HasSuffix(strings.ToLower(outputPath), "."+spec.Container) {
		outputPath = strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + "." + spec.Container
	}

	fps := req.FrameRate
	if fps <= 0 {
		fps = 30
	}

	args = []string{
		"-y",
		"-loop", "1",
		"-framerate", strconv.Itoa(fps),
		"-i", req.ImagePath,
		"-i", req.AudioPath,
		"-c:v", spec.VideoCodec,
		"-vf", ScalePadFilter(req.Resolution),
	}
	args = append(args, spec.VideoArgs...)
	args = append(args,
		"-c:a", string(req.AudioCodec),
		"-b:a", fmt.Sprintf("%dk", req.AudioBitrateKbps),
		"-ar", "48000", // 48 kHz per YouTube's audio recommendation
		"-shortest",
	)
	if includeProgress {
		args = append(args, "-progress", "pipe:1", "-nostats")
	}
	args = append(args, outputPath)
	return args, outputPath
}
