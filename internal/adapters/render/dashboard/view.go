package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/humanos-cli/internal/application"
	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/duration"
	"github.com/charmbracelet/lipgloss"
)

const (
	progressWidth = 24
	maxListed     = 5
)

// View is everything one dashboard frame shows.
type View struct {
	State      application.State
	Clock      application.ClockSnapshot
	Now        time.Time
	StaleAfter time.Duration
}

func renderView(v View, s styles) string {
	lines := []string{
		s.title.Render("Human OS"),
		s.header.Render(headerLine(v)),
		s.section.Render(renderFocus(v, s)),
		s.section.Render(renderStatus(v, s)),
	}

	if len(v.State.Loops) > 0 {
		lines = append(lines, s.section.Render(renderLoops(v.State.Loops, s)))
	}
	if len(v.State.Threads) > 0 {
		lines = append(lines, s.section.Render(renderThreads(v.State.Threads, s)))
	}
	if len(v.State.Toasts) > 0 {
		lines = append(lines, s.section.Render(renderToasts(v.State.Toasts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(v View) string {
	if v.State.Status == nil {
		if v.State.StatusLoading {
			return "status: loading"
		}
		return "status: n/a"
	}
	if v.Now.IsZero() {
		return "status: " + v.State.Status.Timestamp.Format(time.RFC3339)
	}
	return "status: as of " + v.State.Status.Timestamp.Format("15:04:05")
}

func renderFocus(v View, s styles) string {
	if v.Clock.State == application.ClockIdle || v.Clock.Focus == nil {
		return s.empty.Render("No active focus session.")
	}

	focus := v.Clock.Focus
	title := s.task.Render("Focus: " + sanitize(focus.TaskName))
	if focus.IsLocked {
		title += " " + s.warning.Render("[locked]")
	}

	countdown := s.countdown.Render(duration.Format(v.Clock.Remaining))
	parts := []string{countdown, " ", renderProgressBar(v.Clock.Percent(), progressWidth, s)}
	switch {
	case v.Clock.State == application.ClockComplete:
		parts = append(parts, " ", s.success.Render("complete"))
	case v.Clock.Paused:
		parts = append(parts, " ", s.warning.Render("paused"))
	default:
		parts = append(parts, " ", s.meta.Render(fmt.Sprintf("%3.0f%%", v.Clock.Percent())))
	}

	lines := []string{title, lipgloss.JoinHorizontal(lipgloss.Top, parts...)}
	if focus.SuccessCriteria != "" {
		lines = append(lines, s.detail.Render("done when: "+sanitize(focus.SuccessCriteria)))
	}
	if focus.Fallback != "" {
		lines = append(lines, s.detail.Render("fallback: "+sanitize(focus.Fallback)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStatus(v View, s styles) string {
	status := v.State.Status
	if status == nil {
		line := s.empty.Render("No cognitive status yet.")
		if v.State.StatusErr != nil {
			line += " " + s.warning.Render("error: "+v.State.StatusErr.Error())
		}
		return line
	}

	lines := []string{
		loadLine("emotional load", status.EmotionalLoad, s),
		loadLine("energy", status.EnergyLevel, s),
		s.detail.Render(fmt.Sprintf("open loops: ~%d  pending tasks: %d  ideas: %d  predictions: %d",
			status.OpenLoopsEstimate, status.PendingTasks, status.CapturedIdeas, status.ActivePredictions)),
		s.detail.Render("foreground: " + joinOrNone(status.ForegroundThreads)),
		s.detail.Render("background: " + joinOrNone(status.BackgroundThreads)),
	}

	var flags []string
	if !v.Now.IsZero() && status.IsStale(v.Now, v.StaleAfter) {
		flags = append(flags, s.warning.Render("[stale]"))
	}
	if v.State.StatusErr != nil {
		flags = append(flags, s.warning.Render("[refresh failed]"))
	}
	if len(flags) > 0 {
		lines = append(lines, strings.Join(flags, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func loadLine(label string, level domain.LoadLevel, s styles) string {
	key := s.key.Render(label + ":")
	bar := renderProgressBar(loadPercent(level), 12, s)
	value := lipgloss.NewStyle().Foreground(loadColor(level)).Render(loadLabel(level))
	return lipgloss.JoinHorizontal(lipgloss.Top, key, " ", bar, " ", value)
}

func renderLoops(loops []domain.Loop, s styles) string {
	lines := []string{s.key.Render(fmt.Sprintf("open loops (%d)", len(loops)))}
	for i, loop := range loops {
		if i == maxListed {
			lines = append(lines, s.meta.Render(fmt.Sprintf("  +%d more", len(loops)-maxListed)))
			break
		}
		lines = append(lines, s.detail.Render(fmt.Sprintf("  %-6s %-10s %s", loop.Priority, loop.Queue, sanitize(loop.Description))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderThreads(threads []domain.Thread, s styles) string {
	lines := []string{s.key.Render(fmt.Sprintf("threads (%d)", len(threads)))}
	for i, thread := range threads {
		if i == maxListed {
			lines = append(lines, s.meta.Render(fmt.Sprintf("  +%d more", len(threads)-maxListed)))
			break
		}
		lines = append(lines, s.detail.Render(fmt.Sprintf("  %-10s %s (%s)", thread.Mode, sanitize(thread.Name), thread.TimeScope)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderToasts(toasts []domain.Toast, s styles) string {
	lines := make([]string, 0, len(toasts))
	for _, toast := range toasts {
		style := s.toastInfo
		switch toast.Kind {
		case domain.ToastError, domain.ToastWarning:
			style = s.toastError
		case domain.ToastSuccess:
			style = s.toastOK
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %s", toastIcon(toast.Kind), sanitize(toast.Text))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func toastIcon(kind domain.ToastKind) string {
	switch kind {
	case domain.ToastSuccess:
		return "ok"
	case domain.ToastError:
		return "!!"
	case domain.ToastWarning:
		return "!"
	default:
		return "i"
	}
}

func renderProgressBar(filledPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := clampPercent(filledPercent) / 100.0
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func loadPercent(level domain.LoadLevel) float64 {
	switch level {
	case domain.LoadLow:
		return 33
	case domain.LoadMedium:
		return 66
	case domain.LoadHigh:
		return 100
	default:
		return 0
	}
}

func loadLabel(level domain.LoadLevel) string {
	if level == "" {
		return "unknown"
	}
	return string(level)
}

// loadColor fades from grey to bright as the level rises.
func loadColor(level domain.LoadLevel) lipgloss.Color {
	return interpolateColor(loadPercent(level), 0, 100)
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp, 240 faded to 255 bright.
	baseColor := 240.0
	targetColor := 255.0
	return lipgloss.Color(fmt.Sprintf("%d", int(baseColor+(targetColor-baseColor)*normalized)))
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		cleaned = append(cleaned, sanitize(v))
	}
	return strings.Join(cleaned, ", ")
}

func sanitize(value string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, value)
}
