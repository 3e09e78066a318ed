package scaffolder

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// StreamLogsOptions scopes a log stream to a task.
type StreamLogsOptions struct {
	TaskID string
	// After is an exclusive resume point: the stream starts with the first
	// event whose id is greater than After. Nil streams from the beginning.
	After *int
}

// LogStream is a cold, single-subscriber stream of a task's log events.
//
// Events are delivered in arrival order on Events(). The channel is closed
// exactly once: after a completion event has been delivered, after a
// transport or decode error, or after Close. Err reports the terminal
// error, if any, once the channel is closed.
type LogStream struct {
	events  chan LogEvent
	body    io.ReadCloser
	closing chan struct{}

	mu     sync.Mutex
	err    error
	closed bool

	closeOnce  sync.Once
	finishOnce sync.Once
}

// StreamLogs opens the task's event stream. Each call opens a fresh
// connection; there is no buffering or replay across subscribers. Canceling
// ctx or calling Close releases the connection promptly.
func (c *Client) StreamLogs(ctx context.Context, opts StreamLogsOptions) (*LogStream, error) {
	if opts.TaskID == "" {
		return nil, fmt.Errorf("task id cannot be empty")
	}

	streamURL := c.taskURL(opts.TaskID) + "/eventstream"
	if opts.After != nil {
		streamURL += "?after=" + strconv.Itoa(*opts.After)
	}

	req, err := c.newRequest(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opening event stream for task %s: %w", opts.TaskID, err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, newResponseError(resp)
	}

	s := &LogStream{
		events:  make(chan LogEvent),
		body:    resp.Body,
		closing: make(chan struct{}),
	}
	go s.consume(ctx)
	return s, nil
}

// Events returns the ordered event channel. It is closed when the stream
// ends; check Err afterwards.
func (s *LogStream) Events() <-chan LogEvent {
	return s.events
}

// Err returns the terminal stream error, or nil for a clean end (completion
// event received, or subscriber closed the stream). Only meaningful once
// Events() is closed.
func (s *LogStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close releases the underlying connection. Safe to call more than once and
// concurrently with event delivery.
func (s *LogStream) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.closeOnce.Do(func() { close(s.closing) })
	return s.body.Close()
}

// consume reads SSE frames off the connection and delivers decoded events
// until completion, error, or cancellation.
func (s *LogStream) consume(ctx context.Context) {
	scanner := bufio.NewScanner(s.body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var eventName string
	var data []string

	for scanner.Scan() {
		line := scanner.Text()

		// Blank line terminates a frame.
		if line == "" {
			if len(data) > 0 {
				done, err := s.dispatch(ctx, eventName, strings.Join(data, "\n"))
				if done || err != nil {
					s.finish(err)
					return
				}
			}
			eventName = ""
			data = data[:0]
			continue
		}

		// Comment lines keep the connection alive.
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		switch field {
		case "event":
			eventName = value
		case "data":
			data = append(data, value)
		}
	}

	// The read loop only exits here when the server hung up, the subscriber
	// closed the stream, or ctx was canceled.
	switch {
	case ctx.Err() != nil:
		s.finish(ctx.Err())
	case s.isClosed():
		s.finish(nil)
	case scanner.Err() != nil:
		s.finish(fmt.Errorf("reading event stream: %w", scanner.Err()))
	default:
		s.finish(fmt.Errorf("event stream ended before completion"))
	}
}

// dispatch decodes and delivers one frame. done is true once the terminal
// completion event has been delivered.
func (s *LogStream) dispatch(ctx context.Context, name, payload string) (done bool, err error) {
	var eventType LogEventType
	switch name {
	case string(EventTypeLog):
		eventType = EventTypeLog
	case string(EventTypeCompletion):
		eventType = EventTypeCompletion
	default:
		// Unknown event names are skipped, not fatal.
		return false, nil
	}

	var event LogEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return false, fmt.Errorf("decoding %s event: %w", name, err)
	}
	event.Type = eventType

	select {
	case s.events <- event:
	case <-ctx.Done():
		return false, ctx.Err()
	case <-s.closing:
		return true, nil
	}
	return eventType == EventTypeCompletion, nil
}

func (s *LogStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// finish records the terminal error, closes the connection, and closes the
// event channel exactly once.
func (s *LogStream) finish(err error) {
	s.finishOnce.Do(func() {
		s.mu.Lock()
		if !s.closed {
			s.err = err
		}
		s.mu.Unlock()
		s.body.Close()
		close(s.events)
	})
}
