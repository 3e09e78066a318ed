// Package config manages user-level settings stored at ~/.bkstg/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the backend base URL, the identity token, and per-plugin URL overrides.
package config
