// Package scaffolder is a client for the backend scaffolder plugin's task
// API: it submits template tasks, looks up task state, and follows a task's
// log over the server-sent event stream. The client performs no retries,
// backoff, or caching; every failure is surfaced to the caller.
package scaffolder
