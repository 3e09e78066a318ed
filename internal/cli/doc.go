// Package cli wires the cobra command tree: scaffold submission, task
// lookup, log streaming, template validation, user configuration, and
// version/update reporting.
package cli
