package model

import "fmt"

// AudioCodec names an ffmpeg audio encoder accepted for YouTube uploads.
type AudioCodec string

const (
	CodecAAC    AudioCodec = "aac"
	CodecMP3    AudioCodec = "libmp3lame"
	CodecOpus   AudioCodec = "libopus"
	CodecVorbis AudioCodec = "libvorbis"
)

// AudioCodecs lists the selectable codecs in menu order. AAC-LC first: it is
// the codec YouTube recommends for uploads.
var AudioCodecs = []AudioCodec{CodecAAC, CodecMP3, CodecOpus, CodecVorbis}

// Short returns the codec's short name, used in output filenames.
func (c AudioCodec) Short() string {
	switch c {
	case CodecAAC:
		return "aac"
	case CodecMP3:
		return "mp3"
	case CodecOpus:
		return "opus"
	case CodecVorbis:
		return "vorbis"
	}
	return string(c)
}

// Label returns the human-readable menu label for the codec.
func (c AudioCodec) Label() string {
	switch c {
	case CodecAAC:
		return "aac - AAC-LC (recommended)"
	case CodecMP3:
		return "libmp3lame - MP3"
	case CodecOpus:
		return "libopus - Opus (WebM)"
	case CodecVorbis:
		return "libvorbis - Vorbis (WebM)"
	}
	return string(c)
}

// ParseAudioCodec accepts either the ffmpeg encoder name or the short name.
func ParseAudioCodec(s string) (AudioCodec, error) {
	for _, c := range AudioCodecs {
		if s == string(c) || s == c.Short() {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown audio codec: %q (valid: aac|mp3|opus|vorbis)", s)
}

// Resolution is a target video frame size in pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Label returns the menu label, e.g. "720p (HD) (1280x720)".
func (r Resolution) Label() string {
	name := ""
	switch r.Height {
	case 240:
		name = "240p"
	case 360:
		name = "360p"
	case 480:
		name = "480p"
	case 720:
		name = "720p (HD)"
	case 1080:
		name = "1080p (FHD)"
	case 1440:
		name = "1440p (QHD)"
	case 2160:
		name = "2160p (4K)"
	default:
		name = fmt.Sprintf("%dp", r.Height)
	}
	return fmt.Sprintf("%s (%s)", name, r)
}

// Resolutions lists the standard YouTube upload resolutions in menu order.
var Resolutions = []Resolution{
	{426, 240},
	{640, 360},
	{854, 480},
	{1280, 720},
	{1920, 1080},
	{2560, 1440},
	{3840, 2160},
}

// DefaultResolutionIndex points at 1080p, the suggested default.
const DefaultResolutionIndex = 4

// ParseResolution parses a "WxH" string into a Resolution.
func ParseResolution(s string) (Resolution, error) {
	var r Resolution
	if _, err := fmt.Sscanf(s, "%dx%d", &r.Width, &r.Height); err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution: %q (expected WxH, e.g. 1280x720)", s)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return Resolution{}, fmt.Errorf("invalid resolution: %q", s)
	}
	return r, nil
}

// EncodeRequest describes exactly one encode invocation. It is built once by
// the orchestrating flow and never mutated afterwards.
type EncodeRequest struct {
	ImagePath        string
	AudioPath        string
	OutputPath       string // may be rewritten to match the container suffix
	Resolution       Resolution
	AudioCodec       AudioCodec
	AudioBitrateKbps int
	FrameRate        int
}

// CLIOptions holds user-configurable runtime options as parsed from flags.
type CLIOptions struct {
	StartDir    string // directory the image picker opens in
	OutDir      string // output directory; empty = alongside the audio file
	FrameRate   int
	FFmpegPath  string // optional explicit binary path
	FFprobePath string
	Verbose     bool
	NoUI        bool
}
