package services

import (
	"testing"

	"weather-analysis/models"
)

func testRegistry() map[string]*models.Station {
	return map[string]*models.Station{
		"1108447": {ID: "1108447", Name: "Vancouver", Lat: 49.18, Lon: -123.17},
		"2101300": {ID: "2101300", Name: "Whitehorse", Lat: 60.73, Lon: -135.10},
		"8403506": {ID: "8403506", Name: "Halifax", Lat: 44.88, Lon: -63.50},
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	r := NewResolver(newTestLogger())
	registry := testRegistry()

	for _, name := range []string{"vancouver", "VANCOUVER", "Vancouver"} {
		resolved := r.Resolve([]string{name}, registry)
		if resolved[name] != "1108447" {
			t.Errorf("Resolve(%q) = %q, want 1108447", name, resolved[name])
		}
	}
}

func TestResolveUnmatchedNameAbsent(t *testing.T) {
	r := NewResolver(newTestLogger())

	resolved := r.Resolve([]string{"Vancouver", "Atlantis"}, testRegistry())
	if len(resolved) != 1 {
		t.Fatalf("expected 1 resolved name, got %d", len(resolved))
	}
	if _, ok := resolved["Atlantis"]; ok {
		t.Error("unmatched name should be absent from the result")
	}
}

func TestResolveDuplicateNameDeterministic(t *testing.T) {
	registry := map[string]*models.Station{
		"0002": {ID: "0002", Name: "Springfield"},
		"0001": {ID: "0001", Name: "Springfield"},
		"0003": {ID: "0003", Name: "Elsewhere"},
	}
	r := NewResolver(newTestLogger())

	// Sorted-id scan, last match wins: always 0002 regardless of map order.
	for i := 0; i < 20; i++ {
		resolved := r.Resolve([]string{"Springfield"}, registry)
		if resolved["Springfield"] != "0002" {
			t.Fatalf("run %d: Resolve = %q, want 0002", i, resolved["Springfield"])
		}
	}
}

func TestCoordinates(t *testing.T) {
	r := NewResolver(newTestLogger())
	registry := testRegistry()
	resolved := r.Resolve([]string{"Vancouver"}, registry)

	lat, lon, err := r.Coordinates("Vancouver", resolved, registry)
	if err != nil {
		t.Fatalf("Coordinates: %v", err)
	}
	if lat != 49.18 || lon != -123.17 {
		t.Errorf("Coordinates = (%v, %v), want (49.18, -123.17)", lat, lon)
	}

	if _, _, err := r.Coordinates("Atlantis", resolved, registry); err == nil {
		t.Error("expected error for unresolved name")
	}
}

func TestNearest(t *testing.T) {
	r := NewResolver(newTestLogger())
	registry := testRegistry()

	// Just off the Vancouver coordinates.
	station, km := r.Nearest(49.0, -123.0, registry)
	if station == nil || station.ID != "1108447" {
		t.Fatalf("Nearest = %+v, want station 1108447", station)
	}
	if km <= 0 || km > 100 {
		t.Errorf("distance %v km out of expected range", km)
	}

	if station, _ := r.Nearest(0, 0, nil); station != nil {
		t.Error("Nearest over empty registry should return nil")
	}
}
