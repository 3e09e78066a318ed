// Package home carries the portal home plugin's helper functions: ISO date
// validation, relative-time phrasing, and the time-of-day greeting shown on
// the CLI banner.
package home
