package media

import (
	"path/filepath"
	"testing"

	"ytstill/internal/model"
)

func TestOutputBasename(t *testing.T) {
	tests := []struct {
		name      string
		audioPath string
		res       model.Resolution
		codec     model.AudioCodec
		want      string
	}{
		{
			name:      "plain stem",
			audioPath: "/music/my_song.mp3",
			res:       model.Resolution{Width: 1280, Height: 720},
			codec:     model.CodecAAC,
			want:      "my_song_yt_1280p720_aac",
		},
		{
			name:      "unsafe characters sanitized",
			audioPath: "/music/My Song: Live!.flac",
			res:       model.Resolution{Width: 1920, Height: 1080},
			codec:     model.CodecOpus,
			want:      "My_Song_Live_yt_1920p1080_opus",
		},
		{
			name:      "ffmpeg encoder name maps to short name",
			audioPath: "/a/b.ogg",
			res:       model.Resolution{Width: 426, Height: 240},
			codec:     model.CodecMP3,
			want:      "b_yt_426p240_mp3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputBasename(tt.audioPath, tt.res, tt.codec); got != tt.want {
				t.Errorf("OutputBasename = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/out", "song_yt_1280p720_aac", "mp4")
	want := filepath.Join("/out", "song_yt_1280p720_aac.mp4")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}
