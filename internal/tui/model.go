package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/batalabs/toolview/internal/config"
	"github.com/batalabs/toolview/internal/display"
	"github.com/batalabs/toolview/internal/replay"
)

// advanceMsg asks the model to reveal the next transcript event.
type advanceMsg struct{}

// Model is the transcript viewer: it reveals replay events one by one and
// re-renders every visible tool call on each refresh.
type Model struct {
	registry *display.Registry
	renderer *Renderer
	events   []replay.Event
	shown    int
	spinner  spinner.Model
	width    int
	height   int
	logger   *config.Logger
}

// NewModel builds the viewer around a populated registry and a transcript.
func NewModel(registry *display.Registry, events []replay.Event, logger *config.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = StatusRunningStyle
	return Model{
		registry: registry,
		renderer: NewRenderer(),
		events:   events,
		spinner:  sp,
		logger:   logger,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.advance())
}

// advance schedules the reveal of the next event after its delay.
func (m Model) advance() tea.Cmd {
	if m.shown >= len(m.events) {
		return nil
	}
	delay := time.Duration(m.events[m.shown].DelayMS) * time.Millisecond
	return tea.Tick(delay, func(time.Time) tea.Msg { return advanceMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.SetWidth(msg.Width)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.renderer.SetSpinner(m.spinner.View())
		return m, cmd

	case advanceMsg:
		if m.shown < len(m.events) {
			m.shown++
			if m.logger != nil {
				m.logger.Printf("revealed event %d/%d (%s)", m.shown, len(m.events), m.events[m.shown-1].Call.Name)
			}
		}
		return m, m.advance()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("toolview") + "\n\n")
	for i := 0; i < m.shown; i++ {
		event := m.events[i]
		b.WriteString(ToolCallView(m.registry, &event.Call, event.Result, m.renderer))
		b.WriteString("\n\n")
	}
	if m.shown < len(m.events) {
		b.WriteString(StatusRunningStyle.Render(m.spinner.View()) + "\n")
	} else {
		b.WriteString(FooterStyle.Render("done — press q to quit") + "\n")
	}
	return b.String()
}
