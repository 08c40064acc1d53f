package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"weather-analysis/models"
)

func TestCSVWriterWritesSortedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "trends.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}

	points := map[string]models.MapPoint{
		"Whitehorse": {Lat: 60.73, Lon: -135.1, Change: -0.25},
		"Halifax":    {Lat: 44.88, Lon: -63.5, Change: 0.5},
	}
	if err := w.WriteWindow(1950, 1960, points); err != nil {
		t.Fatalf("WriteWindow: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(rows))
	}
	if rows[0][0] != "window_start" {
		t.Errorf("header: got %v", rows[0])
	}
	if rows[1][2] != "Halifax" || rows[2][2] != "Whitehorse" {
		t.Errorf("rows not in station order: %v / %v", rows[1], rows[2])
	}

	want := []string{"1950", "1959", "Halifax", "44.88", "-63.50", "0.5000"}
	for i, cell := range want {
		if rows[1][i] != cell {
			t.Errorf("row[1][%d] = %q, want %q", i, rows[1][i], cell)
		}
	}
}
