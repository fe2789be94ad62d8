package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"song-stats/models"
)

// ErrNoHeader is returned when the input CSV has no header row.
var ErrNoHeader = errors.New("csv: missing header row")

const utf8BOM = "\ufeff"

// ReadCSV loads every row of the CSV file at path, keyed by header name,
// in file order. Row widths are not checked against the header and stray
// quotes inside unquoted fields are kept as literal characters.
func ReadCSV(path string) ([]models.RawSong, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	return readRaw(f)
}

func readRaw(r io.Reader) ([]models.RawSong, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []models.RawSong
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row: %w", err)
		}

		row := make(models.RawSong, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
