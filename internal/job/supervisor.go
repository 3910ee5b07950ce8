// Package job supervises a single external encode process: it launches
// ffmpeg, multiplexes its progress stream with cancellation requests without
// ever blocking indefinitely, derives progress/ETA for display, and maps the
// process's fate onto exactly one terminal Outcome.
package job

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os/exec"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"ytstill/internal/encoder"
	"ytstill/internal/model"
)

// State is the supervisor lifecycle. Succeeded, Failed, and Cancelled are
// terminal; a new job requires a new Supervisor.
type State int

const (
	Starting State = iota
	Running
	Succeeded
	Failed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Outcome is the single terminal result of one Run call.
type Outcome struct {
	State      State  // Succeeded, Failed, or Cancelled
	ExitCode   int    // meaningful when Failed
	Diagnostic string // last non-empty output line; ffmpeg writes its real error there
	OutputPath string // path the encoder wrote to (suffix may differ from the request)
}

// Status is the derived display state, recomputed every poll iteration so
// the interface stays visibly alive even when the encoder is silent.
type Status struct {
	State            State
	ProcessedSeconds float64
	SpeedFactor      float64
	Fraction         float64       // 0..1, or <0 when the total duration is unknown
	Elapsed          time.Duration
	ETA              time.Duration // <0 when not yet computable
}

const (
	// pollInterval bounds each loop iteration's wait so keyboard and
	// process events are both picked up promptly.
	pollInterval = 100 * time.Millisecond
	// emitInterval rate-limits display callbacks.
	emitInterval = 100 * time.Millisecond
	// killGrace is how long a terminated process gets to exit on its own
	// before being force-killed. The bound is mandatory: without it a
	// wedged encoder could never be reaped.
	killGrace = 3 * time.Second
)

// Supervisor owns the lifecycle of exactly one external encode invocation.
type Supervisor struct {
	ffmpegPath string
	onStatus   func(Status) // optional display callback

	// buildArgs is swapped out by tests to supervise a stand-in process.
	buildArgs func(model.EncodeRequest, bool) ([]string, string)

	cancelRequested atomic.Bool
	confirmOnce     sync.Once
	confirmed       chan struct{}
	started         atomic.Bool
}

// New returns a supervisor that reports derived status to onStatus (may be
// nil) and runs the given ffmpeg binary.
func New(ffmpegPath string, onStatus func(Status)) *Supervisor {
	return &Supervisor{
		ffmpegPath: ffmpegPath,
		onStatus:   onStatus,
		buildArgs:  encoder.BuildArgs,
		confirmed:  make(chan struct{}),
	}
}

// RequestCancel records that the user asked to cancel. It does not touch the
// process: the caller must show its confirmation step and then call
// ConfirmCancel, so a stray keystroke cannot destroy a long-running job.
func (s *Supervisor) RequestCancel() { s.cancelRequested.Store(true) }

// WithdrawCancel clears a pending cancel request (the user answered "no").
func (s *Supervisor) WithdrawCancel() { s.cancelRequested.Store(false) }

// CancelRequested reports whether a cancel request is pending confirmation.
func (s *Supervisor) CancelRequested() bool { return s.cancelRequested.Load() }

// ConfirmCancel commits a cancellation: the supervised process is sent a
// graceful terminate signal and force-killed after a bounded grace period.
// Safe to call at most once per supervisor; later calls are no-ops.
func (s *Supervisor) ConfirmCancel() {
	s.confirmOnce.Do(func() { close(s.confirmed) })
}

// Run launches the encode described by req and supervises it to completion,
// failure, or cancellation. durationHintSec is the total audio duration in
// seconds, or 0 when unknown (progress is then indeterminate). Run may be
// called once per Supervisor; the returned error covers launch problems
// only — everything after a successful launch is reported via the Outcome.
func (s *Supervisor) Run(ctx context.Context, req model.EncodeRequest, durationHintSec float64) (Outcome, error) {
	if !s.started.CompareAndSwap(false, true) {
		return Outcome{}, errors.New("supervisor already ran; create a new one per job")
	}

	args, outputPath := s.buildArgs(req, true)
	cmd := exec.Command(s.ffmpegPath, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Outcome{}, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Outcome{}, fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return Outcome{}, fmt.Errorf("start ffmpeg: %w", err)
	}

	startTime := time.Now()

	// Both pipes feed one line channel: progress arrives on stdout
	// (-progress pipe:1), diagnostics on stderr.
	lines := make(chan string, 64)
	var wg sync.WaitGroup
	wg.Add(2)
	go scanLines(stdout, lines, &wg)
	go scanLines(stderr, lines, &wg)

	// Wait closes the pipes once the process exits, so it must not run
	// until both scanners have hit EOF or buffered tail output is lost —
	// including the final stderr line that carries ffmpeg's real error.
	waitCh := make(chan error, 1)
	go func() {
		wg.Wait()
		close(lines)
		waitCh <- cmd.Wait()
	}()

	var (
		ps        encoder.ProgressState
		lastLine  string
		lastEmit  time.Time
		exited    bool
		waitErr   error
		lineCh    = lines
		cancelled bool
	)

	for {
		select {
		case line, ok := <-lineCh:
			if !ok {
				lineCh = nil
				break
			}
			if line != "" {
				lastLine = line
			}
			ps.UpdateFromLine(line)
		case waitErr = <-waitCh:
			exited = true
			waitCh = nil
		case <-s.confirmed:
			cancelled = true
		case <-ctx.Done():
			cancelled = true
		case <-time.After(pollInterval):
			// Nothing arrived; fall through to keep the display alive.
		}

		if cancelled {
			s.teardown(cmd, waitCh, lines)
			out := Outcome{State: Cancelled, OutputPath: outputPath}
			s.emit(derive(Cancelled, ps.Sample(), durationHintSec, time.Since(startTime)), true, &lastEmit)
			return out, nil
		}

		s.emit(derive(Running, ps.Sample(), durationHintSec, time.Since(startTime)), false, &lastEmit)

		if exited && lineCh == nil {
			break
		}
	}

	out := Outcome{OutputPath: outputPath}
	if waitErr == nil {
		out.State = Succeeded
	} else {
		out.State = Failed
		out.Diagnostic = lastLine
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
		} else {
			out.ExitCode = -1
			if out.Diagnostic == "" {
				out.Diagnostic = waitErr.Error()
			}
		}
	}
	s.emit(derive(out.State, ps.Sample(), durationHintSec, time.Since(startTime)), true, &lastEmit)
	return out, nil
}

// teardown escalates from a graceful terminate to a forced kill after the
// grace period, then drains the readers so their goroutines finish.
func (s *Supervisor) teardown(cmd *exec.Cmd, waitCh chan error, lines chan string) {
	if cmd.Process != nil {
		_ = cmd.Process.Signal(syscall.SIGTERM)
	}
	if waitCh != nil {
		select {
		case <-waitCh:
		case <-time.After(killGrace):
			if cmd.Process != nil {
				_ = cmd.Process.Kill()
			}
			<-waitCh
		}
	}
	for range lines {
	}
}

// emit delivers a status to the display callback, rate-limited unless forced.
func (s *Supervisor) emit(st Status, force bool, lastEmit *time.Time) {
	if s.onStatus == nil {
		return
	}
	now := time.Now()
	if !force && now.Sub(*lastEmit) < emitInterval {
		return
	}
	*lastEmit = now
	s.onStatus(st)
}

// derive computes the display state from the latest sample. The fraction is
// negative (indeterminate) without a duration hint; the ETA is negative
// (unknown) until there is both a hint and measurable progress — a
// fabricated number is never reported.
func derive(state State, sample encoder.Sample, hintSec float64, elapsed time.Duration) Status {
	st := Status{
		State:            state,
		ProcessedSeconds: sample.ProcessedSeconds,
		SpeedFactor:      sample.SpeedFactor,
		Fraction:         -1,
		Elapsed:          elapsed,
		ETA:              -1,
	}
	if hintSec > 0 {
		f := sample.ProcessedSeconds / hintSec
		st.Fraction = math.Max(0, math.Min(1, f))
		if sample.ProcessedSeconds > 0 {
			remaining := math.Max(hintSec-sample.ProcessedSeconds, 0)
			eta := remaining / math.Max(sample.SpeedFactor, 1e-3)
			st.ETA = time.Duration(eta * float64(time.Second))
		}
	}
	return st
}

func scanLines(r io.Reader, out chan<- string, wg *sync.WaitGroup) {
	defer wg.Done()
	sc := bufio.NewScanner(r)
	const maxCapacity = 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxCapacity)
	for sc.Scan() {
		out <- sc.Text()
	}
}
