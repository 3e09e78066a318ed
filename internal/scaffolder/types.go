package scaffolder

import "time"

// TaskStatus represents the backend-owned state of a scaffolder task.
type TaskStatus string

const (
	StatusOpen       TaskStatus = "open"
	StatusProcessing TaskStatus = "processing"
	StatusCompleted  TaskStatus = "completed"
	StatusFailed     TaskStatus = "failed"
	StatusCancelled  TaskStatus = "cancelled"
)

// Terminal reports whether the status is final; the backend will not mutate
// the task further.
func (s TaskStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// TaskSpec is the creation context a task was submitted with.
type TaskSpec struct {
	TemplateName string                 `json:"templateName"`
	Values       map[string]interface{} `json:"values"`
}

// Task is the backend's representation of a scaffolder task. The client
// never mutates a task; it is created by Scaffold and advanced by the
// backend.
type Task struct {
	ID              string     `json:"id"`
	Spec            TaskSpec   `json:"spec"`
	Status          TaskStatus `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastHeardFromAt *time.Time `json:"lastHeardFromAt,omitempty"`
}

// LogEventType distinguishes ordinary log lines from the terminal
// completion event on a task's event stream.
type LogEventType string

const (
	EventTypeLog        LogEventType = "log"
	EventTypeCompletion LogEventType = "completion"
)

// LogBody is the payload of a single stream event.
type LogBody struct {
	Message string     `json:"message"`
	StepID  string     `json:"stepId,omitempty"`
	Status  TaskStatus `json:"status,omitempty"`
}

// LogEvent is one immutable record from a task's event stream. IDs increase
// monotonically per task and serve as resume points.
type LogEvent struct {
	ID        int          `json:"id"`
	TaskID    string       `json:"taskId"`
	Type      LogEventType `json:"type"`
	Body      LogBody      `json:"body"`
	CreatedAt time.Time    `json:"createdAt"`
}
