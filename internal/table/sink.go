// Package table persists result records as an append-only table.
package table

import (
	"context"
	"fmt"

	"github.com/verte-zerg/wordlog/internal/config"
	"github.com/verte-zerg/wordlog/internal/model"
	"github.com/verte-zerg/wordlog/internal/store"
)

// Sink appends result rows and reads them back in insertion order.
type Sink interface {
	Append(ctx context.Context, rec model.ResultRecord) error
	Rows(ctx context.Context) ([]model.ResultRecord, error)
	Close() error
}

// Open returns the sink for the configured backend.
func Open(cfg config.Storage) (Sink, error) {
	switch cfg.Backend {
	case config.BackendCSV, "":
		return NewCSV(cfg.Path), nil
	case config.BackendSQLite:
		st, err := store.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
