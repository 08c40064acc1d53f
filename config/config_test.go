package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAnalysisFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.yaml")
	plan := "stations:\n  - Vancouver\n  - Halifax\nstart_year: 1960\nmap_count: 3\n"
	if err := os.WriteFile(path, []byte(plan), 0644); err != nil {
		t.Fatalf("write analysis file: %v", err)
	}

	cfg := &Config{
		AnalysisPath: path,
		StartYear:    1950,
		YearsPerMap:  10,
		MapCount:     2,
		StationNames: defaultStations(),
	}
	if err := cfg.applyAnalysisFile(); err != nil {
		t.Fatalf("applyAnalysisFile: %v", err)
	}

	if len(cfg.StationNames) != 2 || cfg.StationNames[0] != "Vancouver" {
		t.Errorf("StationNames: got %v", cfg.StationNames)
	}
	if cfg.StartYear != 1960 {
		t.Errorf("StartYear: got %d, want 1960", cfg.StartYear)
	}
	if cfg.YearsPerMap != 10 {
		t.Errorf("YearsPerMap should keep its default, got %d", cfg.YearsPerMap)
	}
	if cfg.MapCount != 3 {
		t.Errorf("MapCount: got %d, want 3", cfg.MapCount)
	}
}

func TestAnalysisFileMissingIsNotAnError(t *testing.T) {
	cfg := &Config{
		AnalysisPath: filepath.Join(t.TempDir(), "absent.yaml"),
		StationNames: defaultStations(),
	}
	if err := cfg.applyAnalysisFile(); err != nil {
		t.Fatalf("missing analysis file should be ignored, got %v", err)
	}
	if len(cfg.StationNames) != 11 {
		t.Errorf("defaults disturbed: %v", cfg.StationNames)
	}
}
