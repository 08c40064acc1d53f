package main

import (
	"fmt"
	"os"

	"weather-analysis/config"
	"weather-analysis/models"
	"weather-analysis/services"
	"weather-analysis/storage"
	"weather-analysis/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Temperature Trend Mapper starting ===")
	logger.Info("Config — data: %s | stations: %d | start: %d | window: %d years | maps: %d",
		cfg.DataDir, len(cfg.StationNames), cfg.StartYear, cfg.YearsPerMap, cfg.MapCount)

	registry, err := services.NewRegistryLoader(logger).Load(cfg.StationsPath())
	if err != nil {
		logger.Error("Failed to load station registry: %v", err)
		os.Exit(1)
	}

	series, err := services.NewSeriesLoader(logger).Load(cfg.DataDir)
	if err != nil {
		logger.Error("Failed to load temperature series: %v", err)
		os.Exit(1)
	}
	if len(series) == 0 {
		logger.Error("No monthly-mean files found under %s. Exiting.", cfg.DataDir)
		os.Exit(1)
	}

	resolver := services.NewResolver(logger)
	resolved := resolver.Resolve(cfg.StationNames, registry)
	if len(resolved) == 0 {
		logger.Error("None of the configured station names resolved. Exiting.")
		os.Exit(1)
	}
	logger.Info("Resolved %d of %d station names", len(resolved), len(cfg.StationNames))

	csvWriter, err := storage.NewCSVWriter(cfg.TrendCSVPath())
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	defer csvWriter.Close()

	renderer, err := storage.NewPlotRenderer(cfg.OutputDir)
	if err != nil {
		logger.Error("Failed to create map renderer: %v", err)
		os.Exit(1)
	}

	analyzer := services.NewAnalyzer(logger, registry, series, resolved)

	var lastPoints map[string]models.MapPoint
	lastEnd := cfg.StartYear
	for i := 0; i < cfg.MapCount; i++ {
		start := cfg.StartYear + i*cfg.YearsPerMap
		end := start + cfg.YearsPerMap

		points := analyzer.MapPoints(cfg.StationNames, start, end)
		if len(points) == 0 {
			logger.Warn("No station had complete data for %d-%d — skipping map", start, end-1)
			continue
		}

		title := fmt.Sprintf("Average Annual Temperature Change Between %d and %d", start, end-1)
		if err := renderer.Render(title, points); err != nil {
			logger.Error("Map render failed: %v", err)
		} else {
			logger.Info("Rendered %d stations to %s", len(points), renderer.OutputPath(title))
		}

		if err := csvWriter.WriteWindow(start, end, points); err != nil {
			logger.Error("CSV write failed: %v", err)
		}

		lastPoints = points
		lastEnd = end
	}

	if len(lastPoints) > 0 {
		var latSum, lonSum float64
		for _, p := range lastPoints {
			latSum += p.Lat
			lonSum += p.Lon
		}
		n := float64(len(lastPoints))
		if station, km := resolver.Nearest(latSum/n, lonSum/n, registry); station != nil {
			logger.Info("Station nearest the network centroid: %s (%s), %.0f km away",
				station.Name, station.ID, km)
		}
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(lastPoints)
	insightSvc.Print(report, cfg.StartYear, lastEnd-1)

	fmt.Printf("  Done. Maps → %s | Trend table → %s\n\n",
		cfg.OutputDir, cfg.TrendCSVPath())
}
