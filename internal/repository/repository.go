package repository

import (
	"context"
	"iter"

	"github.com/lehmann314159/latinvocab/internal/models"
)

// Store is a read-only connection to the vocabulary tables
type Store interface {
	// Execute runs a selection. The returned sequence is lazy and one-shot:
	// the query runs when iteration starts, and iterating a second time
	// yields models.ErrRowsConsumed.
	Execute(ctx context.Context, sel Selection) iter.Seq2[models.RawRow, error]

	// Close releases the connection
	Close() error
}
