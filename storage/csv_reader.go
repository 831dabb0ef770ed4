package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bikeshare/models"
)

// ctxCheckEvery is how many rows are read between context checks.
const ctxCheckEvery = 10000

// CSVReader loads city datasets from CSV files in a data directory.
type CSVReader struct {
	dataDir string
	files   map[string]string
}

// NewCSVReader creates a reader for the given city → file name mapping.
// File names are resolved relative to dataDir.
func NewCSVReader(dataDir string, files map[string]string) *CSVReader {
	normalised := make(map[string]string, len(files))
	for city, file := range files {
		normalised[strings.ToLower(strings.TrimSpace(city))] = file
	}
	return &CSVReader{dataDir: dataDir, files: normalised}
}

// Path returns the file backing a city.
func (c *CSVReader) Path(city string) (string, error) {
	file, ok := c.files[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return "", fmt.Errorf("%w: %w: %q", ErrDataUnavailable, ErrUnknownCity, city)
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(c.dataDir, file), nil
}

// Load reads the whole CSV file of a city.
func (c *CSVReader) Load(ctx context.Context, city string) (*models.RawDataset, error) {
	path, err := c.Path(city)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: csv: open %q: %w", ErrDataUnavailable, path, err)
	}
	defer f.Close()

	ds, err := ReadCSV(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("csv: %s: %w", path, err)
	}
	ds.City = strings.ToLower(strings.TrimSpace(city))
	return ds, nil
}

// ReadCSV parses a trip dataset from r. Columns are matched by their
// trimmed header name; unnamed and unknown columns are kept in the raw
// rows but otherwise ignored.
func ReadCSV(ctx context.Context, r io.Reader) (*models.RawDataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrDataUnavailable)
		}
		return nil, fmt.Errorf("%w: read header: %w", ErrDataUnavailable, err)
	}

	columns := make([]string, len(header))
	present := make(map[string]bool, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		present[columns[i]] = true
	}

	if !present[models.ColStartTime] {
		return nil, fmt.Errorf("%w: %w: %q", ErrDataUnavailable, ErrMissingColumn, models.ColStartTime)
	}
	if !present[models.ColEndTime] && !present[models.ColDuration] {
		return nil, fmt.Errorf("%w: %w: need %q or %q", ErrDataUnavailable, ErrMissingColumn,
			models.ColEndTime, models.ColDuration)
	}

	ds := &models.RawDataset{
		Columns:         columns,
		HasDemographics: present[models.ColGender] && present[models.ColBirthYear],
	}

	for n := 1; ; n++ {
		if n%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
			}
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.ParseError already carries the line number
			return nil, fmt.Errorf("%w: %w: %w", ErrDataUnavailable, ErrMalformedRecord, err)
		}
		line, _ := reader.FieldPos(0)

		fields := make(map[string]string, len(columns))
		for i, val := range row {
			if i >= len(columns) || columns[i] == "" {
				continue
			}
			fields[columns[i]] = strings.TrimSpace(val)
		}
		ds.Rows = append(ds.Rows, models.RawTrip{Line: line, Fields: fields})
	}

	return ds, nil
}
