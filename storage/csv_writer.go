package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"song-stats/models"
)

// CSVWriter writes uniformly-shaped rows to a single CSV file.
// Every Write replaces the file contents.
type CSVWriter struct {
	path string
}

// NewCSVWriter returns a writer targeting path. Nothing is touched on disk
// until Write is called with at least one row.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Path returns the destination file.
func (c *CSVWriter) Path() string { return c.path }

// Write creates (or truncates) the file and writes a header taken from the
// first row followed by every row. An empty slice is a no-op.
func (c *CSVWriter) Write(rows []models.Tabular) (err error) {
	if len(rows) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", c.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("csv: close %q: %w", c.path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(rows[0].Columns()); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(r.Values()); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flush %q: %w", c.path, err)
	}
	return nil
}

// TopSongRows adapts a top songs listing for Write.
func TopSongRows(songs []models.TopSong) []models.Tabular {
	rows := make([]models.Tabular, len(songs))
	for i, s := range songs {
		rows[i] = s
	}
	return rows
}
