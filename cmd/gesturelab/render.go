package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/touchlab-io/gesturekit/gesture"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	sampleActiveStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	sampleDimStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)

	gotoStyle = lipgloss.NewStyle().Foreground(colorYellow)
)

var stateStyles = map[gesture.State]lipgloss.Style{
	gesture.StateIdle:      lipgloss.NewStyle().Foreground(colorOverlay0),
	gesture.StateStarted:   lipgloss.NewStyle().Foreground(colorWarning),
	gesture.StateCompleted: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
	gesture.StateCanceled:  lipgloss.NewStyle().Foreground(colorError),
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func (m model) leftWidth() int {
	w := m.width / 3
	if w < 24 {
		w = 24
	}
	return w
}

func (m model) bodyHeight() int {
	// header + status bar + footer
	h := m.height - 4
	if h < 4 {
		h = 4
	}
	return h
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	if !m.listReady {
		return statusStyle.Render("starting...")
	}

	header := headerBarStyle.Width(m.width).Render(
		headerAppStyle.Render(appName) + statusStyle.Render("  gesture replay inspector"))

	left := listBoxStyle.Width(m.leftWidth()).Height(m.bodyHeight() - 2).Render(m.recList.View())
	right := listBoxStyle.Width(m.width - m.leftWidth() - 6).Height(m.bodyHeight() - 2).
		Render(m.replayView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := m.status
	if m.gotoMode {
		status = gotoStyle.Render("find: " + m.gotoQuery + "█")
	}
	statusBar := statusBarStyle.Width(m.width).Render(status)
	footer := footerStyle.Width(m.width).Render(m.helpLine())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar, footer)
}

func (m model) helpLine() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ·  ")
}

func (m model) replayView() string {
	if m.replay == nil {
		return statusStyle.Render("enter loads the selected recording")
	}
	r := m.replay

	var b strings.Builder
	b.WriteString(titleStyle.Render(r.rec.Name))
	if r.rec.Gesture != gesture.Unknown {
		b.WriteString(statusStyle.Render("  expects " + r.rec.Gesture.String()))
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("sample %d/%d  ·  clock %s  ·  touch %s\n\n",
		r.step, len(r.rec.Samples), r.delayer.Now(), r.touch))

	b.WriteString(m.sampleLines(r))
	b.WriteString("\n")
	b.WriteString(m.rosterLines(r))
	b.WriteString("\n")
	b.WriteString(m.eventLines(r))
	return b.String()
}

// sampleLines shows a window of the stream around the replay position.
func (m model) sampleLines(r *replay) string {
	const window = 5
	lo := r.step - window
	if lo < 0 {
		lo = 0
	}
	hi := r.step + 2
	if hi > len(r.rec.Samples) {
		hi = len(r.rec.Samples)
	}
	var b strings.Builder
	for i := lo; i < hi; i++ {
		line := "  " + r.rec.Samples[i].String()
		if i == r.step-1 {
			line = cursorStyle.Render("> ") + sampleActiveStyle.Render(r.rec.Samples[i].String())
		} else if i >= r.step {
			line = sampleDimStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// rosterLines shows every matcher off idle; the full roster is too tall.
func (m model) rosterLines(r *replay) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("matchers") + "\n")
	active := 0
	for _, g := range r.manifold.Roster() {
		if g.State() == gesture.StateIdle {
			continue
		}
		active++
		b.WriteString(fmt.Sprintf("  %s %s\n",
			stateStyles[g.State()].Render(fmt.Sprintf("%-9s", g.State())), g.ID()))
	}
	if active == 0 {
		b.WriteString(statusStyle.Render("  all idle") + "\n")
	}
	return b.String()
}

func (m model) eventLines(r *replay) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("events") + "\n")
	if len(r.events) == 0 {
		b.WriteString(statusStyle.Render("  none yet") + "\n")
		return b.String()
	}
	lo := 0
	if len(r.events) > 8 {
		lo = len(r.events) - 8
	}
	for _, e := range r.events[lo:] {
		b.WriteString("  " + e + "\n")
	}
	return b.String()
}
