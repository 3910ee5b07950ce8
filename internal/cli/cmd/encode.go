package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ytstill/internal/job"
	"ytstill/internal/model"
	"ytstill/internal/pipeline"
	"ytstill/internal/util/bitrate"
	"ytstill/internal/util/deps"
	"ytstill/internal/util/format"
)

// newEncodeCmd is the scripted path: all selections come from flags, and
// progress goes to stderr as plain text instead of the TUI.
func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "encode",
		Short:         "Encode one video non-interactively",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runEncode,
	}
	cmd.Flags().String("image", "", "Still image input (required)")
	cmd.Flags().String("audio", "", "Audio track input (required)")
	cmd.Flags().String("resolution", "1920x1080", "Target resolution, WxH")
	cmd.Flags().String("audio-codec", "aac", "Audio codec: aac, mp3, opus, vorbis")
	cmd.Flags().Int("bitrate", 0, "Audio bitrate in kbps; 0 picks the step above the source bitrate")
	cmd.Flags().String("output", "", "Output path override (extension follows the container)")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("audio")
	return cmd
}

func runEncode(cmd *cobra.Command, _ []string) error {
	opts := assembleOptions(cmd)

	imagePath, _ := cmd.Flags().GetString("image")
	audioPath, _ := cmd.Flags().GetString("audio")
	resStr, _ := cmd.Flags().GetString("resolution")
	codecStr, _ := cmd.Flags().GetString("audio-codec")
	kbps, _ := cmd.Flags().GetInt("bitrate")
	output, _ := cmd.Flags().GetString("output")

	res, err := model.ParseResolution(resStr)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	codec, err := model.ParseAudioCodec(codecStr)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	for _, p := range []string{imagePath, audioPath} {
		if _, err := os.Stat(p); err != nil {
			return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("input not found: %s", p)}
		}
	}

	ffmpegPath, err := deps.FindFFmpeg(opts.FFmpegPath)
	if err != nil {
		return &ExitError{Code: ExitMissingDep, Err: err}
	}
	ffprobePath, err := deps.FindFFprobe(opts.FFprobePath)
	if err != nil {
		return &ExitError{Code: ExitMissingDep, Err: err}
	}

	svc := pipeline.NewService(
		pipeline.WithFFmpegPath(ffmpegPath),
		pipeline.WithFFprobePath(ffprobePath),
		pipeline.WithStatusFunc(printStatus),
	)

	info := svc.Probe(cmd.Context(), audioPath)
	kbps = resolveBitrate(kbps, info.BitrateKbps)

	req := pipeline.BuildRequest(imagePath, audioPath, res, codec, kbps, opts)
	if output != "" {
		req.OutputPath = output
	}

	outcome, err := svc.Encode(cmd.Context(), req, info.DurationSec)
	fmt.Fprintln(os.Stderr) // finish the progress line
	if err != nil {
		return &ExitError{Code: ExitTranscodeError, Err: err}
	}

	switch outcome.State {
	case job.Succeeded:
		size := ""
		if fi, serr := os.Stat(outcome.OutputPath); serr == nil {
			size = " (" + format.HumanizeBytes(fi.Size()) + ")"
		}
		fmt.Printf("Saved: %s%s\n", outcome.OutputPath, size)
		return nil
	case job.Cancelled:
		return &ExitError{Code: ExitCancelled, Err: nil}
	default:
		return &ExitError{
			Code: ExitTranscodeError,
			Err:  fmt.Errorf("ffmpeg exited with code %d: %s", outcome.ExitCode, outcome.Diagnostic),
		}
	}
}

// resolveBitrate picks the audio bitrate for the scripted path: unset means
// the ladder step above the probed source, an explicit value is bounded to
// the ladder range.
func resolveBitrate(flagKbps, sourceKbps int) int {
	if flagKbps <= 0 {
		return bitrate.NextHigher(sourceKbps)
	}
	return bitrate.Clamp(flagKbps, bitrate.Steps[0], bitrate.Steps[len(bitrate.Steps)-1])
}

// printStatus rewrites one stderr line per status update. The supervisor
// already rate-limits updates.
func printStatus(s job.Status) {
	if s.Fraction >= 0 {
		eta := "--:--"
		if s.ETA >= 0 {
			eta = format.Clock(s.ETA)
		}
		fmt.Fprintf(os.Stderr, "\rEncoding %3.0f%% | elapsed %s | eta %s | %.2fx   ",
			s.Fraction*100, format.Clock(s.Elapsed), eta, s.SpeedFactor)
		return
	}
	fmt.Fprintf(os.Stderr, "\rEncoding... elapsed %s   ", format.Clock(s.Elapsed))
}
