// Package tui renders the interactive follow view for task log streams.
package tui
