package scaffolder

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody caps how much of an error response body is retained.
const maxErrorBody = 4 << 10

// ResponseError is returned when the backend replies with an unexpected
// HTTP status. It carries the status line and the trimmed response body.
type ResponseError struct {
	StatusCode int
	Status     string
	Body       string
}

// Error implements error.
func (e *ResponseError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned %s", e.Status)
	}
	return fmt.Sprintf("backend returned %s: %s", e.Status, e.Body)
}

// newResponseError drains up to maxErrorBody bytes of the response body into
// a ResponseError. The caller remains responsible for closing the body.
func newResponseError(resp *http.Response) *ResponseError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &ResponseError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(body)),
	}
}
