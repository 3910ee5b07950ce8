package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"ytstill/internal/job"
	"ytstill/internal/util/format"
	"ytstill/internal/widget"
)

func (m Model) View() string {
	switch m.screen {
	case screenPickImage:
		return m.viewPicker(m.imagePicker, "Select the IMAGE (used as the still video frame)")
	case screenPickAudio:
		return m.viewPicker(m.audioPicker, "Select the AUDIO track")
	case screenAudioInfo:
		return m.viewAudioInfo()
	case screenPickBitrate:
		return m.viewMenu(m.bitrateMenu, "Choose the audio bitrate")
	case screenPickCodec:
		return m.viewMenu(m.codecMenu, "Choose the audio format/codec")
	case screenPickResolution:
		return m.viewMenu(m.resolutionMenu, "Choose the video resolution")
	case screenConfirm:
		return m.viewConfirm()
	case screenEncoding:
		return m.viewEncoding()
	case screenDone:
		return m.viewDone()
	}
	return ""
}

func (m Model) viewPicker(p *widget.Picker, title string) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("Dir: " + p.Dir()))
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("↑/↓ move, enter open/select, q cancel"))
	b.WriteString("\n\n")
	m.renderRows(&b, p.VisibleSlice())
	return b.String()
}

func (m Model) viewMenu(menu *widget.Menu, title string) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("↑/↓ move, enter select, q cancel"))
	b.WriteString("\n\n")
	m.renderRows(&b, menu.VisibleSlice())
	return b.String()
}

func (m Model) renderRows(b *strings.Builder, rows []widget.Row) {
	for _, row := range rows {
		line := row.Item.Label
		switch {
		case row.Selected:
			line = m.styles.Highlight.Render("> " + line)
		case row.Item.Kind == widget.KindDirectory || row.Item.Kind == widget.KindParentMarker:
			line = m.styles.Directory.Render("  " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func (m Model) viewAudioInfo() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Your audio file"))
	b.WriteString("\n\n")
	if m.info.CodecName != "" {
		b.WriteString(fmt.Sprintf("Codec:       %s\n", strings.ToUpper(m.info.CodecName)))
	}
	if m.info.BitrateKbps > 0 {
		b.WriteString(fmt.Sprintf("Bitrate:     %d kbps\n", m.info.BitrateKbps))
	} else {
		b.WriteString("Bitrate:     unknown\n")
	}
	if m.info.SampleRateHz > 0 {
		b.WriteString(fmt.Sprintf("Sample rate: %.1f kHz\n", float64(m.info.SampleRateHz)/1000))
	}
	if m.info.DurationSec > 0 {
		b.WriteString(fmt.Sprintf("Duration:    %s\n", format.Seconds(m.info.DurationSec)))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("YouTube audio recommendations:") + "\n")
	b.WriteString(m.styles.Dim.Render("- Codec: AAC-LC, sample rate 48 kHz") + "\n")
	b.WriteString(m.styles.Dim.Render("- Bitrate (stereo): 128 kbps or higher") + "\n")
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("enter continue, q cancel"))
	return b.String()
}

func (m Model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Ready to encode"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Image:      %s\n", filepath.Base(m.req.ImagePath)))
	b.WriteString(fmt.Sprintf("Audio:      %s\n", filepath.Base(m.req.AudioPath)))
	b.WriteString(fmt.Sprintf("Sound:      %s @ %d kbps\n", m.req.AudioCodec.Short(), m.req.AudioBitrateKbps))
	b.WriteString(fmt.Sprintf("Resolution: %s\n", m.req.Resolution))
	b.WriteString(fmt.Sprintf("Output:     %s\n", m.req.OutputPath))
	b.WriteString("\n")
	b.WriteString("The image is scaled and padded to the chosen resolution.\n")
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("enter start, q cancel"))
	return b.String()
}

func (m Model) viewEncoding() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Encoding with ffmpeg..."))
	b.WriteString("\n\n")

	st := m.status
	if m.haveStatus && st.Fraction >= 0 {
		b.WriteString(m.bar.ViewAs(st.Fraction))
		b.WriteString(fmt.Sprintf(" %3.0f%%\n", st.Fraction*100))
		b.WriteString(fmt.Sprintf("▶ %s / %s\n", format.Seconds(st.ProcessedSeconds), format.Seconds(m.info.DurationSec)))
	} else {
		b.WriteString(m.spinner.View() + " " + m.styles.Dim.Render("computing duration..."))
		b.WriteString("\n")
	}

	if m.haveStatus {
		b.WriteString(fmt.Sprintf("Elapsed: %s\n", format.Clock(st.Elapsed)))
		if st.ETA >= 0 {
			b.WriteString(fmt.Sprintf("ETA:     %s\n", format.Clock(st.ETA)))
		} else {
			b.WriteString("ETA:     --:--\n")
		}
		if st.SpeedFactor > 0 {
			b.WriteString(m.styles.Dim.Render(fmt.Sprintf("Speed: %.2fx", st.SpeedFactor)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.confirmingCancel {
		b.WriteString(m.styles.Warning.Render("Cancel the encode? y/n"))
	} else {
		b.WriteString(m.styles.Dim.Render("q: cancel (asks for confirmation)"))
	}
	return b.String()
}

func (m Model) viewDone() string {
	var b strings.Builder
	o := m.outcome
	if o == nil {
		return ""
	}
	switch o.State {
	case job.Succeeded:
		b.WriteString(m.styles.Success.Render("Done! Video ready for upload."))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Saved: %s", o.OutputPath))
		if m.outputSize > 0 {
			b.WriteString(fmt.Sprintf(" (%s)", format.HumanizeBytes(m.outputSize)))
		}
		b.WriteString("\n")
		if m.info.DurationSec > 0 {
			b.WriteString(fmt.Sprintf("Duration: %s\n", format.Seconds(m.info.DurationSec)))
		}
	case job.Cancelled:
		b.WriteString(m.styles.Warning.Render("Cancelled by user."))
		b.WriteString("\n")
	case job.Failed:
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("ffmpeg exited with code %d", o.ExitCode)))
		b.WriteString("\n")
		if o.Diagnostic != "" {
			b.WriteString(m.styles.Dim.Render(o.Diagnostic))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("enter exit"))
	return b.String()
}

func dirOf(path string) string {
	return filepath.Dir(path)
}

func itoaKbps(b int) string {
	return fmt.Sprintf("%d kbps", b)
}
