// Package cache holds short-lived working state: survey sessions and
// narrative jobs. Entries expire; nothing here is durable.
package cache

import "errors"

// ErrNotFound is returned when a key is missing or has expired
var ErrNotFound = errors.New("cache: not found")

const (
	sessionPrefix   = "session:"
	narrativePrefix = "narrative:"
)
