package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/EmanuelTinoco/backstage/internal/scaffolder"
)

// LogEventMsg carries one event received from the task's log stream.
type LogEventMsg scaffolder.LogEvent

// StreamClosedMsg signals that the stream ended; Err is nil when the stream
// finished with a completion event.
type StreamClosedMsg struct {
	Err error
}

// waitForEvent blocks on the stream until the next event or the end of the
// stream. The model re-issues it after every delivery.
func waitForEvent(stream *scaffolder.LogStream) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-stream.Events()
		if !ok {
			return StreamClosedMsg{Err: stream.Err()}
		}
		return LogEventMsg(event)
	}
}
