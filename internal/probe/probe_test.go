package probe

import (
	"context"
	"errors"
	"testing"

	"ytstill/internal/util"
)

func TestParseInfo(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want Info
	}{
		{
			name: "stream bitrate preferred over format",
			out:  "codec_name=mp3\nsample_rate=44100\nbit_rate=192000\nduration=213.4\nbit_rate=199000\n",
			want: Info{DurationSec: 213.4, BitrateKbps: 192, CodecName: "mp3", SampleRateHz: 44100},
		},
		{
			name: "format bitrate fills in missing stream bitrate",
			out:  "codec_name=opus\nsample_rate=48000\nbit_rate=N/A\nduration=60.0\nbit_rate=128000\n",
			want: Info{DurationSec: 60.0, BitrateKbps: 128, CodecName: "opus", SampleRateHz: 48000},
		},
		{
			name: "empty output is all unknown",
			out:  "",
			want: Info{},
		},
		{
			name: "garbage lines skipped",
			out:  "not a key value\nduration=abc\nbit_rate=-5\nsample_rate=0\ncodec_name=aac\n",
			want: Info{CodecName: "aac"},
		},
		{
			name: "windows line endings tolerated",
			out:  "codec_name=flac\r\nduration=12.5\r\n",
			want: Info{DurationSec: 12.5, CodecName: "flac"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseInfo(tt.out); got != tt.want {
				t.Errorf("ParseInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// fakeRunner returns canned output and records the spec it was asked to run.
type fakeRunner struct {
	spec   util.CmdSpec
	stdout string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, spec util.CmdSpec) (util.CmdResult, error) {
	f.spec = spec
	return util.CmdResult{Stdout: []byte(f.stdout)}, f.err
}

func TestAudio(t *testing.T) {
	r := &fakeRunner{stdout: "codec_name=mp3\nbit_rate=320000\nduration=10.0\n"}
	info := Audio(context.Background(), r, "/usr/bin/ffprobe", "/music/song.mp3")

	if info.CodecName != "mp3" || info.BitrateKbps != 320 || info.DurationSec != 10.0 {
		t.Errorf("Audio() = %+v", info)
	}
	if r.spec.Path != "/usr/bin/ffprobe" {
		t.Errorf("probed with %q, want the given ffprobe path", r.spec.Path)
	}
	if got := r.spec.Args[len(r.spec.Args)-1]; got != "/music/song.mp3" {
		t.Errorf("last arg = %q, want the media path", got)
	}
	if !r.spec.CaptureStdout {
		t.Error("probe must capture stdout")
	}
}

func TestAudio_FailureDegradesToUnknown(t *testing.T) {
	r := &fakeRunner{err: errors.New("exit 1")}
	if info := Audio(context.Background(), r, "ffprobe", "x"); info != (Info{}) {
		t.Errorf("Audio() on failure = %+v, want zero Info", info)
	}
}

func TestAudio_PartialOutputOnFailureStillParsed(t *testing.T) {
	r := &fakeRunner{stdout: "duration=5.0\n", err: errors.New("exit 1")}
	if info := Audio(context.Background(), r, "ffprobe", "x"); info.DurationSec != 5.0 {
		t.Errorf("Audio() = %+v, want duration parsed from partial output", info)
	}
}
