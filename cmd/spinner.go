package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Requests that settle faster than this never show a timer.
const spinnerElapsedAfter = time.Second

var spinnerElapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

type requestDoneMsg struct {
	err error
}

// requestSpinnerModel animates while one API request is pending and, once the
// request is slow enough to notice, shows how long it has been waiting.
type requestSpinnerModel struct {
	spinner spinner.Model
	label   string
	request tea.Cmd
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	err     error
	done    bool
}

func newRequestSpinnerModel(label string, request tea.Cmd, now func() time.Time) requestSpinnerModel {
	if now == nil {
		now = time.Now
	}
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return requestSpinnerModel{
		spinner: s,
		label:   label,
		request: request,
		now:     now,
		started: now(),
	}
}

func (m requestSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.request)
}

func (m requestSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.elapsed = m.now().Sub(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case requestDoneMsg:
		m.done = true
		m.err = msg.err
		m.elapsed = m.now().Sub(m.started)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m requestSpinnerModel) View() string {
	if m.done {
		return ""
	}
	line := fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	if m.elapsed >= spinnerElapsedAfter {
		line += " " + spinnerElapsedStyle.Render(formatSpinnerElapsed(m.elapsed))
	}
	return line
}

func formatSpinnerElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}

// withSpinner runs request while a spinner turns on output. Without a
// terminal on output the request runs plainly.
func withSpinner(ctx context.Context, output io.Writer, label string, request func(context.Context) error) error {
	if !isTerminalWriter(output) {
		return request(ctx)
	}

	requestCmd := func() tea.Msg {
		return requestDoneMsg{err: request(ctx)}
	}

	p := tea.NewProgram(
		newRequestSpinnerModel(label, requestCmd, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(requestSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}
	if result.err != nil {
		return result.err
	}
	return nil
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
