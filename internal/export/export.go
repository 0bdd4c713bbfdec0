// Package export serializes assembled reports to files. Two encodings
// are supported: a structured JSON document preserving the full report
// nesting, and a flat metric table for spreadsheet import.
package export

import (
	"errors"
	"fmt"
	"time"
)

// Format identifiers accepted by the export endpoints.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ErrExport marks any failure to write an export file, so callers can
// tell an I/O failure apart from a computation failure.
var ErrExport = errors.New("report export failed")

// ErrUnknownFormat is returned for formats other than json/csv.
var ErrUnknownFormat = errors.New("unknown export format")

// DefaultFilename builds the destination name used when the caller
// does not supply one.
func DefaultFilename(userID, format string, now time.Time) string {
	return fmt.Sprintf("wellness_report_%s_%s.%s", userID, now.Format("2006-01-02"), format)
}

func wrapErr(op, path string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, path, ErrExport, err)
}
