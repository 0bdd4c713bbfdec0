package export

import (
	"encoding/json"
	"os"

	"github.com/chetx27/wellness-tracker/internal/insights"
)

// WriteJSON writes the structured encoding of a report to path. On
// any failure the partial file is removed and an ErrExport-wrapped
// error is returned.
func WriteJSON(report *insights.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapErr("create", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		f.Close()
		os.Remove(path)
		return wrapErr("encode", path, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return wrapErr("close", path, err)
	}
	return nil
}

// ReadJSON decodes a structured report file back into a Report.
func ReadJSON(path string) (*insights.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapErr("open", path, err)
	}
	defer f.Close()

	var report insights.Report
	if err := json.NewDecoder(f).Decode(&report); err != nil {
		return nil, wrapErr("decode", path, err)
	}
	return &report, nil
}
