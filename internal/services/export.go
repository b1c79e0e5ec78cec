package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lehmann314159/latinvocab/internal/models"
)

// CSVHeader is the header row written by WriteCSV.
var CSVHeader = []string{"category", "words", "definition"}

// WriteCSV writes a lookup result as CSV, one entry per record, grouped in
// result order.
func WriteCSV(w io.Writer, result *models.LookupResult) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, g := range result.Groups() {
		for _, e := range g.Entries {
			if err := writer.Write([]string{g.Category.Label(), e.Words, e.Definition}); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
