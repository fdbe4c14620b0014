package utils

import (
	"time"
)

// TimeNow returns the current wall clock in UTC. Every persisted timestamp goes through it.
func TimeNow() time.Time {
	return time.Now().UTC()
}

// ToPointer returns a pointer to v.
func ToPointer[T any](v T) *T {
	return &v
}

// PrettyDate renders t for human-facing messages.
func PrettyDate(t time.Time) string {
	return t.UTC().Format("02 Jan 2006 15:04 MST")
}
