package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/umahmood/haversine"

	"weather-analysis/models"
	"weather-analysis/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(points map[string]models.MapPoint) *models.TrendReport {
	report := &models.TrendReport{}

	if len(points) == 0 {
		return report
	}

	names := make([]string, 0, len(points))
	for name := range points {
		names = append(names, name)
	}
	sort.Strings(names)

	report.Stations = len(points)

	var total float64
	for i, name := range names {
		p := points[name]
		total += p.Change
		if p.Change > 0 {
			report.Warming++
		} else if p.Change < 0 {
			report.Cooling++
		}
		if i == 0 || p.Change < report.MinChange {
			report.MinChange = p.Change
			report.FastestCooling = name
		}
		if i == 0 || p.Change > report.MaxChange {
			report.MaxChange = p.Change
			report.FastestWarming = name
		}
	}
	report.MeanChange = total / float64(len(points))

	// Widest great-circle distance between any two plotted stations
	var span float64
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, b := points[names[i]], points[names[j]]
			_, km := haversine.Distance(
				haversine.Coord{Lat: a.Lat, Lon: a.Lon},
				haversine.Coord{Lat: b.Lat, Lon: b.Lon},
			)
			if km > span {
				span = km
			}
		}
	}
	report.NetworkSpanKm = round2(span)

	return report
}

func (s *InsightService) Print(r *models.TrendReport, startYear, endYear int) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🌡  TEMPERATURE TREND INSIGHTS (%d–%d)\033[0m\n", startYear, endYear)
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Stations analyzed : \033[1m%d\033[0m\n", r.Stations)
	fmt.Printf("  Warming stations  : \033[1;31m%d\033[0m\n", r.Warming)
	fmt.Printf("  Cooling stations  : \033[1;34m%d\033[0m\n", r.Cooling)
	fmt.Println()

	// Change Stats
	fmt.Printf("\033[1;33m  Average Annual Change (°C/year)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.Stations > 0 {
		fmt.Printf("  Network mean   : \033[1m%+.3f\033[0m\n", r.MeanChange)
		fmt.Printf("  Fastest warming: \033[1;31m%+.3f\033[0m  %s\n", r.MaxChange, truncate(r.FastestWarming, 30))
		fmt.Printf("  Fastest cooling: \033[1;34m%+.3f\033[0m  %s\n", r.MinChange, truncate(r.FastestCooling, 30))
	} else {
		fmt.Printf("  No trend data available\n")
	}
	fmt.Println()

	// Network
	fmt.Printf("\033[1;33m  Station Network\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.Stations > 1 {
		fmt.Printf("  Widest station separation : \033[1m%.0f km\033[0m\n", r.NetworkSpanKm)
	} else {
		fmt.Printf("  Not enough stations for a span\n")
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
