package repository

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"net/url"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/lehmann314159/latinvocab/internal/models"
)

// driverName is go-sqlite3 with foldFunc installed on each new connection.
const driverName = "sqlite3_vocabulary"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(foldFunc, foldLower, true)
		},
	})
}

// foldLower lowercases TEXT with full Unicode case mapping. NULL folds to
// the empty string.
func foldLower(v any) string {
	switch v := v.(type) {
	case string:
		return strings.ToLower(v)
	case []byte:
		return strings.ToLower(string(v))
	default:
		return ""
	}
}

// SQLiteStore implements Store over the packaged SQLite file
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the database at path read-only and checks that it can be
// reached. The file must already exist.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty database path", models.ErrConnection)
	}

	db, err := sql.Open(driverName, readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", models.ErrConnection, path, err)
	}
	// One connection for the process lifetime; callers serialize access.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: open %s: %v", models.ErrConnection, path, err)
	}

	return NewSQLiteStore(db), nil
}

// NewSQLiteStore wraps an already opened database. Word searches need
// foldFunc, which connections opened through OpenSQLite provide.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func readOnlyDSN(path string) string {
	u := url.URL{Scheme: "file", Opaque: path}
	q := url.Values{}
	q.Set("mode", "ro")
	u.RawQuery = q.Encode()
	return u.String()
}

// Execute runs sel and yields its rows in order
func (s *SQLiteStore) Execute(ctx context.Context, sel Selection) iter.Seq2[models.RawRow, error] {
	consumed := false
	return func(yield func(models.RawRow, error) bool) {
		if consumed {
			yield(nil, models.ErrRowsConsumed)
			return
		}
		consumed = true

		rows, err := s.db.QueryContext(ctx, sel.SQL, sel.Args...)
		if err != nil {
			yield(nil, &models.QueryError{Category: sel.Category, SQL: sel.SQL, Err: err})
			return
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			yield(nil, &models.QueryError{Category: sel.Category, SQL: sel.SQL, Err: err})
			return
		}

		for rows.Next() {
			row, err := scanRow(rows, len(cols))
			if err != nil {
				yield(nil, &models.QueryError{Category: sel.Category, SQL: sel.SQL, Err: err})
				return
			}
			if !yield(row, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(nil, &models.QueryError{Category: sel.Category, SQL: sel.SQL, Err: fmt.Errorf("error iterating rows: %w", err)})
		}
	}
}

// scanRow copies the current row into a fresh RawRow
func scanRow(rows *sql.Rows, n int) (models.RawRow, error) {
	values := make([]any, n)
	ptrs := make([]any, n)
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}

	row := make(models.RawRow, n)
	for i, v := range values {
		switch v := v.(type) {
		case []byte:
			row[i] = string(v)
		default:
			row[i] = v
		}
	}
	return row, nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
