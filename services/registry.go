package services

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"weather-analysis/models"
	"weather-analysis/utils"
)

// metadataHeaderLines is the number of preamble lines before the first data
// line in the station metadata file.
const metadataHeaderLines = 4

// stationFields is the number of comma-separated fields on a metadata line.
const stationFields = 11

// stripRegexp removes the stray characters the archive export leaves in its
// lines — everything outside letters, digits, '.', ',' and '-'.
var stripRegexp = regexp.MustCompile(`[^a-zA-Z0-9.,-]+`)

// RegistryLoader parses station metadata files into Station records.
type RegistryLoader struct {
	logger *utils.Logger
}

// NewRegistryLoader creates a RegistryLoader with the given logger.
func NewRegistryLoader(logger *utils.Logger) *RegistryLoader {
	return &RegistryLoader{logger: logger}
}

// Load reads the metadata file at path and returns the registry keyed by
// station identifier. When two lines carry the same identifier the later
// one wins. Any malformed line aborts the load.
func (l *RegistryLoader) Load(path string) (map[string]*models.Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("registry: open %q: %w", path, err)
	}
	defer f.Close()

	registry := make(map[string]*models.Station)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= metadataHeaderLines {
			continue
		}
		line := stripRegexp.ReplaceAllString(scanner.Text(), "")
		if line == "" {
			continue
		}
		station, err := parseStationLine(line)
		if err != nil {
			return nil, fmt.Errorf("registry: %s line %d: %w", path, lineNo, err)
		}
		registry[station.ID] = station
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("registry: read %q: %w", path, err)
	}

	l.logger.Info("[registry] Loaded %d stations from %s", len(registry), path)
	return registry, nil
}

func parseStationLine(line string) (*models.Station, error) {
	fields := strings.Split(line, ",")
	if len(fields) < stationFields {
		return nil, fmt.Errorf("want %d fields, got %d", stationFields, len(fields))
	}

	beginYear, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("begin year %q: %w", fields[3], err)
	}
	beginMonth, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("begin month %q: %w", fields[4], err)
	}
	endYear, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("end year %q: %w", fields[5], err)
	}
	endMonth, err := strconv.Atoi(fields[6])
	if err != nil {
		return nil, fmt.Errorf("end month %q: %w", fields[6], err)
	}
	lat, err := strconv.ParseFloat(fields[7], 64)
	if err != nil {
		return nil, fmt.Errorf("latitude %q: %w", fields[7], err)
	}
	lon, err := strconv.ParseFloat(fields[8], 64)
	if err != nil {
		return nil, fmt.Errorf("longitude %q: %w", fields[8], err)
	}
	elev, err := strconv.Atoi(fields[9])
	if err != nil {
		return nil, fmt.Errorf("elevation %q: %w", fields[9], err)
	}

	return &models.Station{
		ID:         fields[2],
		Province:   fields[0],
		Name:       fields[1],
		BeginYear:  beginYear,
		BeginMonth: beginMonth,
		EndYear:    endYear,
		EndMonth:   endMonth,
		Lat:        lat,
		Lon:        lon,
		Elev:       elev,
		Joined:     fields[10],
	}, nil
}
