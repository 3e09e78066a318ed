// Package identity supplies the optional bearer credential attached to
// backend requests. Token issuance itself happens elsewhere; this package
// only reads an already-issued token from the environment or config.
package identity
