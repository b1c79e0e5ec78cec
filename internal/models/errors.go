package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every layer.
var (
	ErrInvalidChapter    = errors.New("invalid chapter")
	ErrInvalidSearchMode = errors.New("invalid search mode")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrConnection        = errors.New("store connection failed")
	ErrQuery             = errors.New("store query failed")
	ErrRowsConsumed      = errors.New("rows already consumed")
)

// QueryError reports a selection the store could not run. Since the data
// and schema ship with the application it points at a defect in the query
// builder or the category registry rather than at user input.
type QueryError struct {
	Category Category
	SQL      string
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Category, e.Err)
}

// Unwrap exposes both ErrQuery and the driver error.
func (e *QueryError) Unwrap() []error {
	return []error{ErrQuery, e.Err}
}
