package storage

import (
	"os"
	"testing"

	"weather-analysis/models"
)

func TestPlotRendererSavesPNG(t *testing.T) {
	dir := t.TempDir()
	r, err := NewPlotRenderer(dir)
	if err != nil {
		t.Fatalf("NewPlotRenderer: %v", err)
	}

	points := map[string]models.MapPoint{
		"Vancouver":  {Lat: 49.18, Lon: -123.17, Change: 0.5},
		"Whitehorse": {Lat: 60.73, Lon: -135.10, Change: -0.2},
		"Halifax":    {Lat: 44.88, Lon: -63.50, Change: 0.0},
	}
	title := "Average Annual Temperature Change Between 1950 and 1959"
	if err := r.Render(title, points); err != nil {
		t.Fatalf("Render: %v", err)
	}

	info, err := os.Stat(r.OutputPath(title))
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestFileName(t *testing.T) {
	got := fileName("Average Annual Temperature Change Between 1950 and 1959")
	want := "average_annual_temperature_change_between_1950_and_1959.png"
	if got != want {
		t.Errorf("fileName = %q, want %q", got, want)
	}
}
