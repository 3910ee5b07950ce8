// Package pipeline glues the probe → plan → encode sequence together for the
// non-interactive path and for request construction shared with the TUI.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"ytstill/internal/encoder"
	"ytstill/internal/job"
	"ytstill/internal/model"
	"ytstill/internal/probe"
	"ytstill/internal/util"
	"ytstill/internal/util/media"
)

// Service runs one encode end to end without a UI.
type Service struct {
	ffmpegPath  string
	ffprobePath string
	runner      util.CmdRunner
	onStatus    func(job.Status)
}

// Option configures a Service.
type Option func(*Service)

// WithFFmpegPath sets the ffmpeg binary path.
func WithFFmpegPath(p string) Option {
	return func(s *Service) { s.ffmpegPath = p }
}

// WithFFprobePath sets the ffprobe binary path.
func WithFFprobePath(p string) Option {
	return func(s *Service) { s.ffprobePath = p }
}

// WithRunner injects a custom command runner (useful for testing).
func WithRunner(r util.CmdRunner) Option {
	return func(s *Service) { s.runner = r }
}

// WithStatusFunc attaches a progress status consumer.
func WithStatusFunc(fn func(job.Status)) Option {
	return func(s *Service) { s.onStatus = fn }
}

// NewService constructs a Service with defaults for missing components.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, o := range opts {
		o(s)
	}
	if s.runner == nil {
		s.runner = util.NewDefaultRunner()
	}
	return s
}

// BuildRequest assembles the immutable encode request. The output lands in
// opts.OutDir when set, otherwise alongside the audio file, named from the
// audio stem, resolution, and codec.
func BuildRequest(imagePath, audioPath string, res model.Resolution, codec model.AudioCodec, bitrateKbps int, opts model.CLIOptions) model.EncodeRequest {
	dir := opts.OutDir
	if dir == "" {
		dir = filepath.Dir(audioPath)
	}
	base := media.OutputBasename(audioPath, res, codec)
	out := media.OutputPath(dir, base, encoder.Lookup(codec).Container)
	return model.EncodeRequest{
		ImagePath:        imagePath,
		AudioPath:        audioPath,
		OutputPath:       out,
		Resolution:       res,
		AudioCodec:       codec,
		AudioBitrateKbps: bitrateKbps,
		FrameRate:        opts.FrameRate,
	}
}

// Probe returns best-effort audio metadata; unknowns are zero values.
func (s *Service) Probe(ctx context.Context, audioPath string) probe.Info {
	return probe.Audio(ctx, s.runner, s.ffprobePath, audioPath)
}

// Encode supervises one encode. durationHintSec comes from a prior Probe
// call; pass 0 when unknown. The output directory is created up front so a
// bad --out-dir fails here instead of as an opaque ffmpeg exit code.
func (s *Service) Encode(ctx context.Context, req model.EncodeRequest, durationHintSec float64) (job.Outcome, error) {
	if err := util.EnsureDir(filepath.Dir(req.OutputPath)); err != nil {
		return job.Outcome{}, fmt.Errorf("output directory: %w", err)
	}
	sup := job.New(s.ffmpegPath, s.onStatus)
	return sup.Run(ctx, req, durationHintSec)
}
