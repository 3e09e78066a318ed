package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/EmanuelTinoco/backstage/internal/scaffolder"
)

const (
	headerHeight = 2
	footerHeight = 1
)

// Model is the follow-mode log view for a single task. It consumes the
// stream it was given and releases it on quit.
type Model struct {
	taskID string
	stream *scaffolder.LogStream

	viewport viewport.Model
	lines    []string
	ready    bool

	done        bool
	err         error
	finalStatus scaffolder.TaskStatus
}

// NewModel creates a log view over an already-open stream.
func NewModel(taskID string, stream *scaffolder.LogStream) Model {
	return Model{
		taskID: taskID,
		stream: stream,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.stream)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			_ = m.stream.Close()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(strings.Join(m.lines, "\n"))
		return m, nil

	case LogEventMsg:
		event := scaffolder.LogEvent(msg)
		m.lines = append(m.lines, formatEvent(event))
		if event.Type == scaffolder.EventTypeCompletion {
			m.finalStatus = event.Body.Status
		}
		if m.ready {
			m.viewport.SetContent(strings.Join(m.lines, "\n"))
			m.viewport.GotoBottom()
		}
		return m, waitForEvent(m.stream)

	case StreamClosedMsg:
		m.done = true
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Connecting to log stream..."
	}

	header := titleStyle.Render("Task "+m.taskID) + " " + m.statusLine() + "\n\n"
	footer := "\n" + helpStyle.Render("↑/↓ scroll • q quit")
	return header + m.viewport.View() + footer
}

func (m Model) statusLine() string {
	switch {
	case m.err != nil:
		return errorStyle.Render("stream error: " + m.err.Error())
	case m.done && m.finalStatus != "":
		return doneStyle.Render(string(m.finalStatus))
	case m.done:
		return doneStyle.Render("stream ended")
	default:
		return statusStyle.Render("streaming…")
	}
}

func formatEvent(event scaffolder.LogEvent) string {
	ts := timestampStyle.Render(event.CreatedAt.Local().Format("15:04:05"))

	if event.Type == scaffolder.EventTypeCompletion {
		status := string(event.Body.Status)
		if status == "" {
			status = "finished"
		}
		line := fmt.Sprintf("task %s", status)
		if event.Body.Message != "" {
			line = event.Body.Message
		}
		return fmt.Sprintf("%s %s", ts, doneStyle.Render(line))
	}

	if event.Body.StepID != "" {
		return fmt.Sprintf("%s %s %s", ts, stepStyle.Render("["+event.Body.StepID+"]"), event.Body.Message)
	}
	return fmt.Sprintf("%s %s", ts, event.Body.Message)
}

// Run renders the follow view until the user quits. The stream is closed
// when the program exits; a terminal stream error is returned to the caller.
func Run(taskID string, stream *scaffolder.LogStream) error {
	defer stream.Close()

	p := tea.NewProgram(NewModel(taskID, stream), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running log view: %w", err)
	}

	if m, ok := finalModel.(Model); ok && m.err != nil {
		return fmt.Errorf("log stream for task %s: %w", taskID, m.err)
	}
	return nil
}
