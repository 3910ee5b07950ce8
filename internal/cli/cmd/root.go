package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ytstill/internal/config"
	"ytstill/internal/job"
	"ytstill/internal/model"
	"ytstill/internal/ui"
)

const (
	ExitOK             = 0
	ExitCLIError       = 1
	ExitMissingDep     = 2
	ExitTranscodeError = 3
	ExitCancelled      = 130
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ytstill",
		Short:         "Turn an image and an audio track into a YouTube-ready video",
		Long:          "ytstill builds an upload-ready video from a still image and an audio file. Run it without arguments for the interactive picker flow, or use 'ytstill encode' to script an encode with flags.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := assembleOptions(cmd)
			if opts.NoUI || !isTerminal() {
				return &ExitError{Code: ExitCLIError, Err: errors.New("interactive mode needs a terminal; use 'ytstill encode' with flags instead")}
			}
			outcome, err := ui.Run(cmd.Context(), opts)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			return outcomeToExit(outcome)
		},
	}

	// Persistent flags available to all subcommands
	root.PersistentFlags().String("start-dir", "", "Directory the file pickers open in (default: current directory)")
	root.PersistentFlags().StringP("out-dir", "o", "", "Output directory (default: alongside the audio file)")
	root.PersistentFlags().Int("framerate", 30, "Video frame rate")
	root.PersistentFlags().String("ffmpeg", "", "Path to the ffmpeg binary")
	root.PersistentFlags().String("ffprobe", "", "Path to the ffprobe binary")
	root.PersistentFlags().BoolP("verbose", "v", false, "Show full subprocess commands/output")
	root.Flags().Bool("no-ui", false, "Refuse the TUI even on a terminal (mostly for scripts)")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	if err := config.Init(root); err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	return root.ExecuteContext(ctx)
}

// outcomeToExit maps a terminal encode outcome onto the process exit
// contract. Cancellation is not an error, but scripts still get the
// conventional 130.
func outcomeToExit(outcome *job.Outcome) error {
	if outcome == nil {
		return nil
	}
	switch outcome.State {
	case job.Failed:
		err := errors.New(outcome.Diagnostic)
		if outcome.Diagnostic == "" {
			err = errors.New("encode failed")
		}
		return &ExitError{Code: ExitTranscodeError, Err: err}
	case job.Cancelled:
		return &ExitError{Code: ExitCancelled, Err: nil}
	}
	return nil
}

func assembleOptions(cmd *cobra.Command) model.CLIOptions {
	startDir := getPersistentString(cmd, "start-dir", "")
	outDir := getPersistentString(cmd, "out-dir", "")
	if outDir != "" {
		outDir = filepath.Clean(outDir)
	}
	return model.CLIOptions{
		StartDir:    startDir,
		OutDir:      outDir,
		FrameRate:   getPersistentInt(cmd, "framerate", 30),
		FFmpegPath:  getPersistentString(cmd, "ffmpeg", ""),
		FFprobePath: getPersistentString(cmd, "ffprobe", ""),
		Verbose:     getPersistentBool(cmd, "verbose", false),
		NoUI:        getLocalBool(cmd, "no-ui"),
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Helpers
func getPersistentString(cmd *cobra.Command, name, def string) string {
	v, err := cmd.InheritedFlags().GetString(name)
	if err != nil || v == "" {
		if v2, err2 := cmd.Flags().GetString(name); err2 == nil && v2 != "" {
			return v2
		}
		return def
	}
	return v
}

func getPersistentInt(cmd *cobra.Command, name string, def int) int {
	if v, err := cmd.Flags().GetInt(name); err == nil && v != 0 {
		return v
	}
	if v, err := cmd.InheritedFlags().GetInt(name); err == nil && v != 0 {
		return v
	}
	return def
}

func getPersistentBool(cmd *cobra.Command, name string, def bool) bool {
	if v, err := cmd.Flags().GetBool(name); err == nil {
		return v
	}
	if v, err := cmd.InheritedFlags().GetBool(name); err == nil {
		return v
	}
	return def
}

func getLocalBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	return err == nil && v
}
