package repository

import (
	"errors"
	"os"
	"sync"

	"agent-ops-dashboard/pkg/logger"
)

// cappedLog is an append-only JSON array that keeps only the newest max entries.
type cappedLog[T any] struct {
	mu   sync.Mutex
	path string
	max  int
	log  *logger.Logger
}

func newCappedLog[T any](path string, max int, log *logger.Logger) *cappedLog[T] {
	return &cappedLog[T]{path: path, max: max, log: log}
}

func (c *cappedLog[T]) append(entry T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := append(c.load(), entry)
	if c.max > 0 && len(entries) > c.max {
		entries = entries[len(entries)-c.max:]
	}
	return writeJSONAtomic(c.path, entries)
}

func (c *cappedLog[T]) loadAll() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *cappedLog[T]) load() []T {
	var entries []T
	if err := readJSON(c.path, &entries); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.log.Warn("Unreadable log file, treating as empty", logger.ErrorField(err), logger.StringField("path", c.path))
		}
		return []T{}
	}
	if entries == nil {
		return []T{}
	}
	return entries
}
