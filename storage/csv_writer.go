package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"weather-analysis/models"
)

// CSVWriter writes per-window station trends to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	// Write header
	if err := w.Write([]string{
		"window_start", "window_end", "station", "latitude", "longitude", "avg_change_c",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteWindow appends one row per station for the window [startYear, endYear).
// Rows are written in station-name order so output is stable across runs.
func (c *CSVWriter) WriteWindow(startYear, endYear int, points map[string]models.MapPoint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(points))
	for name := range points {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := points[name]
		row := []string{
			strconv.Itoa(startYear),
			strconv.Itoa(endYear - 1),
			name,
			strconv.FormatFloat(p.Lat, 'f', 2, 64),
			strconv.FormatFloat(p.Lon, 'f', 2, 64),
			strconv.FormatFloat(p.Change, 'f', 4, 64),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
