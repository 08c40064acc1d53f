package storage

import "weather-analysis/models"

// MapRenderer is the interface any map-drawing backend must satisfy.
type MapRenderer interface {
	Render(title string, points map[string]models.MapPoint) error
}

// TrendWriter is the interface for persisting computed per-window trends.
type TrendWriter interface {
	WriteWindow(startYear, endYear int, points map[string]models.MapPoint) error
	Close() error
}
