package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/umahmood/haversine"

	"weather-analysis/models"
	"weather-analysis/utils"
)

// Resolver bridges human-readable station names to registry identifiers.
type Resolver struct {
	logger *utils.Logger
}

// NewResolver creates a Resolver with the given logger.
func NewResolver(logger *utils.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve maps each given name to the identifier of a registry entry whose
// name matches case-insensitively. Identifiers are scanned in sorted order
// and the last match wins, so duplicate display names resolve the same way
// on every run. Ambiguous and unmatched names are logged, not errors; an
// unmatched name is simply absent from the result.
func (r *Resolver) Resolve(names []string, registry map[string]*models.Station) map[string]string {
	ids := sortedIDs(registry)

	resolved := make(map[string]string, len(names))
	for _, name := range names {
		want := strings.ToLower(name)
		var matches []string
		for _, id := range ids {
			if strings.ToLower(registry[id].Name) == want {
				matches = append(matches, id)
			}
		}
		if len(matches) == 0 {
			r.logger.Warn("[resolver] No station named %q in registry", name)
			continue
		}
		if len(matches) > 1 {
			r.logger.Warn("[resolver] %d registry entries named %q — using id %s",
				len(matches), name, matches[len(matches)-1])
		}
		resolved[name] = matches[len(matches)-1]
	}
	return resolved
}

// Coordinates returns the (latitude, longitude) of a previously resolved
// station name.
func (r *Resolver) Coordinates(name string, resolved map[string]string, registry map[string]*models.Station) (float64, float64, error) {
	id, ok := resolved[name]
	if !ok {
		return 0, 0, fmt.Errorf("resolver: %w: %q", ErrUnknownStation, name)
	}
	station, ok := registry[id]
	if !ok {
		return 0, 0, fmt.Errorf("resolver: id %s resolved for %q is not in the registry", id, name)
	}
	return station.Lat, station.Lon, nil
}

// Nearest returns the registry station closest to the given coordinates by
// great-circle distance, and that distance in kilometres. Returns nil for an
// empty registry.
func (r *Resolver) Nearest(lat, lon float64, registry map[string]*models.Station) (*models.Station, float64) {
	from := haversine.Coord{Lat: lat, Lon: lon}

	var nearest *models.Station
	var nearestKm float64
	for _, id := range sortedIDs(registry) {
		station := registry[id]
		_, km := haversine.Distance(from, haversine.Coord{Lat: station.Lat, Lon: station.Lon})
		if nearest == nil || km < nearestKm {
			nearest = station
			nearestKm = km
		}
	}
	return nearest, nearestKm
}

func sortedIDs(registry map[string]*models.Station) []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
