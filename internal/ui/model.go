package ui

import (
	"context"
	"os"

	bubblesprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"ytstill/internal/job"
	"ytstill/internal/model"
	"ytstill/internal/pipeline"
	"ytstill/internal/probe"
	"ytstill/internal/util"
	"ytstill/internal/util/bitrate"
	"ytstill/internal/util/deps"
	"ytstill/internal/util/media"
	"ytstill/internal/widget"
)

// screen identifies the current step of the selection flow.
type screen int

const (
	screenPickImage screen = iota
	screenPickAudio
	screenAudioInfo
	screenPickBitrate
	screenPickCodec
	screenPickResolution
	screenConfirm
	screenEncoding
	screenDone
)

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	opts        model.CLIOptions
	ffmpegPath  string
	ffprobePath string
	fatalErr    error

	screen screen

	imagePicker *widget.Picker
	audioPicker *widget.Picker

	bitrateMenu    *widget.Menu
	codecMenu      *widget.Menu
	resolutionMenu *widget.Menu

	imagePath string
	audioPath string
	info      probe.Info

	req model.EncodeRequest
	sup *job.Supervisor

	status           job.Status
	haveStatus       bool
	confirmingCancel bool
	outcome          *job.Outcome
	outputSize       int64

	width, height int
	styles        Styles
	spinner       spinner.Model
	bar           bubblesprogress.Model

	eventCh chan tea.Msg
}

func NewModel(ctx context.Context, opts model.CLIOptions) Model {
	c, cancel := context.WithCancel(ctx)
	sty := defaultStyles()

	sp := spinner.New()
	sp.Style = sty.Spinner
	bar := bubblesprogress.New(bubblesprogress.WithDefaultGradient(), bubblesprogress.WithWidth(40))

	start := opts.StartDir
	if start == "" {
		start, _ = os.Getwd()
	}

	m := Model{
		ctx:     c,
		cancel:  cancel,
		opts:    opts,
		screen:  screenPickImage,
		styles:  sty,
		spinner: sp,
		bar:     bar,
		eventCh: make(chan tea.Msg, 256),
	}
	m.imagePicker = widget.NewPicker(start, media.ImageExtensions, util.ListDir, m.listHeight())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenEventsCmd(), m.checkDepsCmd())
}

func (m Model) listHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := m.listHeight()
		if m.imagePicker != nil {
			m.imagePicker.SetHeight(h)
		}
		if m.audioPicker != nil {
			m.audioPicker.SetHeight(h)
		}
		for _, mn := range []*widget.Menu{m.bitrateMenu, m.codecMenu, m.resolutionMenu} {
			if mn != nil {
				mn.SetHeight(h)
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case depsCheckedMsg:
		if msg.Err != nil {
			m.fatalErr = msg.Err
			m.cancel()
			return m, tea.Quit
		}
		m.ffmpegPath = msg.FFmpegPath
		m.ffprobePath = msg.FFprobePath
		return m, nil

	case probedMsg:
		m.info = msg.Info
		// Preselect the ladder step just above the probed source bitrate.
		pre := bitrate.StepIndex(bitrate.NextHigher(m.info.BitrateKbps), 0)
		menu, err := newBitrateMenu(pre, m.listHeight())
		if err != nil {
			m.fatalErr = err
			m.cancel()
			return m, tea.Quit
		}
		m.bitrateMenu = menu
		m.screen = screenAudioInfo
		return m, nil

	case statusMsg:
		m.status = msg.S
		m.haveStatus = true
		return m, m.listenEventsCmd()

	case outcomeMsg:
		if msg.Err != nil {
			m.fatalErr = msg.Err
			m.cancel()
			return m, tea.Quit
		}
		o := msg.O
		m.outcome = &o
		m.outputSize = msg.SizeBytes
		m.screen = screenDone
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.cancel()
		return m, tea.Quit
	}

	switch m.screen {
	case screenPickImage:
		return m.updatePicker(m.imagePicker, key, func(path string) (Model, tea.Cmd) {
			m.imagePath = path
			m.audioPicker = widget.NewPicker(dirOf(path), media.AudioExtensions, util.ListDir, m.listHeight())
			m.screen = screenPickAudio
			return m, nil
		})

	case screenPickAudio:
		return m.updatePicker(m.audioPicker, key, func(path string) (Model, tea.Cmd) {
			m.audioPath = path
			return m, m.probeCmd(path)
		})

	case screenAudioInfo:
		switch key {
		case "enter":
			m.screen = screenPickBitrate
		case "q", "esc":
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case screenPickBitrate:
		return m.updateMenu(m.bitrateMenu, key, func(idx int) (Model, tea.Cmd) {
			m.req.AudioBitrateKbps = bitrate.Steps[idx]
			menu, err := newCodecMenu(m.listHeight())
			if err != nil {
				m.fatalErr = err
				return m, tea.Quit
			}
			m.codecMenu = menu
			m.screen = screenPickCodec
			return m, nil
		})

	case screenPickCodec:
		return m.updateMenu(m.codecMenu, key, func(idx int) (Model, tea.Cmd) {
			m.req.AudioCodec = model.AudioCodecs[idx]
			menu, err := newResolutionMenu(m.listHeight())
			if err != nil {
				m.fatalErr = err
				return m, tea.Quit
			}
			m.resolutionMenu = menu
			m.screen = screenPickResolution
			return m, nil
		})

	case screenPickResolution:
		return m.updateMenu(m.resolutionMenu, key, func(idx int) (Model, tea.Cmd) {
			m.req = pipeline.BuildRequest(
				m.imagePath, m.audioPath,
				model.Resolutions[idx], m.req.AudioCodec, m.req.AudioBitrateKbps,
				m.opts,
			)
			m.screen = screenConfirm
			return m, nil
		})

	case screenConfirm:
		switch key {
		case "enter":
			m.sup = job.New(m.ffmpegPath, m.statusFunc())
			m.screen = screenEncoding
			return m, m.encodeCmd()
		case "q", "esc":
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case screenEncoding:
		if m.confirmingCancel {
			switch key {
			case "y", "Y":
				m.confirmingCancel = false
				m.sup.ConfirmCancel()
			case "n", "N", "esc":
				m.confirmingCancel = false
				m.sup.WithdrawCancel()
			}
			return m, nil
		}
		switch key {
		case "q", "esc", "c":
			m.sup.RequestCancel()
			m.confirmingCancel = true
		}
		return m, nil

	case screenDone:
		switch key {
		case "enter", "q", "esc":
			m.cancel()
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updatePicker(p *widget.Picker, key string, selected func(path string) (Model, tea.Cmd)) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		p.MoveCursor(-1)
	case "down", "j":
		p.MoveCursor(1)
	case "enter":
		p.Enter()
		if p.State() == widget.Selected {
			return selected(p.Path())
		}
	case "q", "esc":
		p.Cancel()
		m.cancel()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateMenu(menu *widget.Menu, key string, chosen func(idx int) (Model, tea.Cmd)) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		menu.MoveCursor(-1)
	case "down", "j":
		menu.MoveCursor(1)
	case "enter":
		return chosen(menu.Index())
	case "q", "esc":
		m.cancel()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) listenEventsCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case msg := <-m.eventCh:
			return msg
		}
	}
}

func (m Model) checkDepsCmd() tea.Cmd {
	return func() tea.Msg {
		ff, err := deps.FindFFmpeg(m.opts.FFmpegPath)
		if err != nil {
			return depsCheckedMsg{Err: err}
		}
		fp, err := deps.FindFFprobe(m.opts.FFprobePath)
		if err != nil {
			return depsCheckedMsg{Err: err}
		}
		return depsCheckedMsg{FFmpegPath: ff, FFprobePath: fp}
	}
}

func (m Model) probeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		info := probe.Audio(m.ctx, util.NewDefaultRunner(), m.ffprobePath, path)
		return probedMsg{Info: info}
	}
}

// statusFunc bridges supervisor status into the bubbletea event loop.
// Sends never block: a stale status is worthless, dropping it is fine.
func (m Model) statusFunc() func(job.Status) {
	ch := m.eventCh
	return func(s job.Status) {
		select {
		case ch <- statusMsg{S: s}:
		default:
		}
	}
}

func (m Model) encodeCmd() tea.Cmd {
	sup := m.sup
	req := m.req
	hint := m.info.DurationSec
	ctx := m.ctx
	return func() tea.Msg {
		outcome, err := sup.Run(ctx, req, hint)
		var size int64
		if err == nil && outcome.State == job.Succeeded {
			if fi, serr := os.Stat(outcome.OutputPath); serr == nil {
				size = fi.Size()
			}
		}
		return outcomeMsg{O: outcome, Err: err, SizeBytes: size}
	}
}

func newBitrateMenu(preselect, height int) (*widget.Menu, error) {
	opts := make([]string, len(bitrate.Steps))
	for i, b := range bitrate.Steps {
		label := itoaKbps(b)
		if i == preselect {
			label += "  (recommended for your audio)"
		}
		opts[i] = label
	}
	return widget.NewMenu(opts, preselect, height)
}

func newCodecMenu(height int) (*widget.Menu, error) {
	opts := make([]string, len(model.AudioCodecs))
	for i, c := range model.AudioCodecs {
		opts[i] = c.Label()
	}
	return widget.NewMenu(opts, 0, height)
}

func newResolutionMenu(height int) (*widget.Menu, error) {
	opts := make([]string, len(model.Resolutions))
	for i, r := range model.Resolutions {
		opts[i] = r.Label()
	}
	return widget.NewMenu(opts, model.DefaultResolutionIndex, height)
}
