package repository

import (
	"context"
	"errors"
	"os"

	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"
)

// OrderBookRepository persists the whole order book as one JSON document.
type OrderBookRepository interface {
	Load(ctx context.Context) entity.OrderBook
	Save(ctx context.Context, book entity.OrderBook) error
}

type orderBookRepository struct {
	path string
	log  *logger.Logger
}

// NewOrderBookRepository creates a file-backed order book repository.
func NewOrderBookRepository(path string, log *logger.Logger) OrderBookRepository {
	return &orderBookRepository{path: path, log: log}
}

// Load returns the stored book, or an empty one when the file is missing or malformed.
func (r *orderBookRepository) Load(ctx context.Context) entity.OrderBook {
	var book entity.OrderBook
	if err := readJSON(r.path, &book); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.log.Warn("Unreadable order book, starting empty", logger.ErrorField(err), logger.StringField("path", r.path))
		}
		return entity.OrderBook{Pending: []entity.Order{}, Completed: []entity.Order{}}
	}
	if book.Pending == nil {
		book.Pending = []entity.Order{}
	}
	if book.Completed == nil {
		book.Completed = []entity.Order{}
	}
	return book
}

// Save rewrites the whole book atomically.
func (r *orderBookRepository) Save(ctx context.Context, book entity.OrderBook) error {
	return writeJSONAtomic(r.path, book)
}
