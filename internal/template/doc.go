// Package template reads software-template manifests and validates scaffold
// parameter values against the JSON Schema a template declares, so bad
// submissions fail locally before they reach the backend.
package template
