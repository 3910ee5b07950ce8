package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ytstill/internal/util/deps"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose external dependencies (ffmpeg, ffprobe)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ff, err := deps.FindFFmpeg(getPersistentString(cmd, "ffmpeg", ""))
			if err != nil {
				return &ExitError{Code: ExitMissingDep, Err: err}
			}
			fp, err := deps.FindFFprobe(getPersistentString(cmd, "ffprobe", ""))
			if err != nil {
				return &ExitError{Code: ExitMissingDep, Err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "FFmpeg:  %s\n", ff)
			fmt.Fprintf(cmd.OutOrStdout(), "FFprobe: %s\n", fp)
			return nil
		},
	}
}
