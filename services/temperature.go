package services

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"weather-analysis/models"
	"weather-analysis/utils"
)

const (
	// seriesFilePrefix selects the per-station monthly-mean files inside
	// the data directory.
	seriesFilePrefix = "mm"
	// seriesHeaderLines is the number of preamble lines (station id line
	// included) before the first data line of a monthly-mean file.
	seriesHeaderLines = 4
	// missingSentinel marks a month with no recorded mean. Values at or
	// below it are discarded.
	missingSentinel = -100.0

	monthsPerYear = 12
)

// SeriesLoader parses per-station monthly-mean temperature files.
type SeriesLoader struct {
	logger *utils.Logger
}

// NewSeriesLoader creates a SeriesLoader with the given logger.
func NewSeriesLoader(logger *utils.Logger) *SeriesLoader {
	return &SeriesLoader{logger: logger}
}

// Load scans dir (non-recursive) for monthly-mean files and returns the
// temperature series of every station found, keyed by station identifier.
// When two files carry the same identifier, years present in the later file
// replace the earlier file's data for those years only.
func (l *SeriesLoader) Load(dir string) (models.SeriesByStation, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("series: read dir %q: %w", dir, err)
	}

	all := make(models.SeriesByStation)
	files := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), seriesFilePrefix) {
			continue
		}
		id, years, err := l.loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if existing, ok := all[id]; ok {
			l.logger.Warn("[series] Station %s appears in multiple files — %s overwrites colliding years",
				id, entry.Name())
			for year, temps := range years {
				existing[year] = temps
			}
		} else {
			all[id] = years
		}
		files++
	}

	l.logger.Info("[series] Loaded %d stations from %d files in %s", len(all), files, dir)
	return all, nil
}

// loadFile parses one monthly-mean file. The station identifier is the first
// comma field of the first line; each data line holds a year followed by 12
// (value, flag) pairs, of which only values above the sentinel are retained.
func (l *SeriesLoader) loadFile(path string) (string, models.YearSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("series: open %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", nil, fmt.Errorf("series: %s: empty file", path)
	}
	id := strings.TrimSpace(strings.Split(scanner.Text(), ",")[0])
	if id == "" {
		return "", nil, fmt.Errorf("series: %s: missing station identifier", path)
	}

	years := make(models.YearSeries)
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		if lineNo <= seriesHeaderLines {
			continue
		}
		line := stripRegexp.ReplaceAllString(scanner.Text(), "")
		if line == "" {
			continue
		}
		year, temps, err := parseSeriesLine(line)
		if err != nil {
			return "", nil, fmt.Errorf("series: %s line %d: %w", path, lineNo, err)
		}
		years[year] = temps
	}
	if err := scanner.Err(); err != nil {
		return "", nil, fmt.Errorf("series: read %q: %w", path, err)
	}

	return id, years, nil
}

func parseSeriesLine(line string) (int, []float64, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 1+2*monthsPerYear {
		return 0, nil, fmt.Errorf("want year plus %d value/flag fields, got %d fields",
			2*monthsPerYear, len(fields))
	}

	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, nil, fmt.Errorf("year %q: %w", fields[0], err)
	}

	temps := make([]float64, 0, monthsPerYear)
	for i := 1; i < 2*monthsPerYear; i += 2 {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return 0, nil, fmt.Errorf("month value %q: %w", fields[i], err)
		}
		if value > missingSentinel {
			temps = append(temps, value)
		}
	}
	return year, temps, nil
}
