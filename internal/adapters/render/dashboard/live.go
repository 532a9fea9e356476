package dashboard

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const frameInterval = time.Second

// Actions are the side effects the live dashboard can trigger. Errors are
// reported by the implementation, usually as toasts.
type Actions interface {
	TogglePause() bool
	ClearFocus(ctx context.Context) error
	Refresh(ctx context.Context) error
}

type keyMap struct {
	Pause   key.Binding
	Clear   key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Clear, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/resume")),
		Clear:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear focus")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type (
	storeChangedMsg struct{}
	frameMsg        time.Time
	actionDoneMsg   struct{ err error }
)

// LiveModel redraws whenever the store changes and once per frame so the
// countdown keeps moving between polls.
type LiveModel struct {
	ctx     context.Context
	snap    func() View
	updates <-chan struct{}
	actions Actions
	keys    keyMap
	help    help.Model
	styles  styles
	view    View
	width   int
	lastErr error
}

func NewLiveModel(ctx context.Context, snap func() View, updates <-chan struct{}, actions Actions) LiveModel {
	return LiveModel{
		ctx:     ctx,
		snap:    snap,
		updates: updates,
		actions: actions,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  newStyles(),
		view:    snap(),
	}
}

func (m LiveModel) Init() tea.Cmd {
	return tea.Batch(waitForStore(m.updates), nextFrame())
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		m.view = m.snap()
		return m, waitForStore(m.updates)
	case frameMsg:
		m.view = m.snap()
		return m, nextFrame()
	case actionDoneMsg:
		m.lastErr = msg.err
		m.view = m.snap()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m LiveModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.actions.TogglePause()
		m.view = m.snap()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		return m, m.run(m.actions.ClearFocus)
	case key.Matches(msg, m.keys.Refresh):
		return m, m.run(m.actions.Refresh)
	default:
		return m, nil
	}
}

func (m LiveModel) run(action func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: action(ctx)}
	}
}

func (m LiveModel) View() string {
	body := renderView(m.view, m.styles)
	if m.lastErr != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.styles.warning.Render(sanitize(m.lastErr.Error())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys)) + "\n"
}

func waitForStore(updates <-chan struct{}) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// RunLive blocks until the user quits or ctx ends.
func RunLive(ctx context.Context, model LiveModel, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
