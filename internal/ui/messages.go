package ui

import (
	"ytstill/internal/job"
	"ytstill/internal/probe"
)

type depsCheckedMsg struct {
	FFmpegPath  string
	FFprobePath string
	Err         error
}

type probedMsg struct {
	Info probe.Info
}

type statusMsg struct {
	S job.Status
}

type outcomeMsg struct {
	O         job.Outcome
	Err       error
	SizeBytes int64
}
