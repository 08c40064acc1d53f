package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration loaded from environment
// variables and the optional YAML analysis file.
type Config struct {
	DataDir      string
	StationsFile string
	OutputDir    string
	AnalysisPath string

	StartYear   int
	YearsPerMap int
	MapCount    int

	StationNames []string
}

// Analysis is the YAML analysis plan: which station names to chart and,
// optionally, which year windows to chart them over.
type Analysis struct {
	Stations    []string `yaml:"stations"`
	StartYear   int      `yaml:"start_year"`
	YearsPerMap int      `yaml:"years_per_map"`
	MapCount    int      `yaml:"map_count"`
}

// Load reads the .env file and returns a populated Config struct. Values in
// the analysis file, when present, override the environment defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	cfg := &Config{
		DataDir:      getEnv("DATA_DIR", "./data"),
		StationsFile: getEnv("STATIONS_FILE", "Temperature_Stations.csv"),
		OutputDir:    getEnv("OUTPUT_DIR", "./output"),
		AnalysisPath: getEnv("ANALYSIS_CONFIG_PATH", "./analysis.yaml"),

		StartYear:   getEnvInt("START_YEAR", 1950),
		YearsPerMap: getEnvInt("YEARS_PER_MAP", 10),
		MapCount:    getEnvInt("MAP_COUNT", 2),

		StationNames: defaultStations(),
	}

	if err := cfg.applyAnalysisFile(); err != nil {
		log.Println("[config] Ignoring unreadable analysis file:", err)
	}

	return cfg
}

// StationsPath returns the full path of the station metadata file.
func (c *Config) StationsPath() string {
	return filepath.Join(c.DataDir, c.StationsFile)
}

// TrendCSVPath returns the full path of the per-window trend table.
func (c *Config) TrendCSVPath() string {
	return filepath.Join(c.OutputDir, "temperature_trends.csv")
}

func (c *Config) applyAnalysisFile() error {
	data, err := os.ReadFile(c.AnalysisPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var a Analysis
	if err := yaml.Unmarshal(data, &a); err != nil {
		return err
	}

	if len(a.Stations) > 0 {
		c.StationNames = a.Stations
	}
	if a.StartYear > 0 {
		c.StartYear = a.StartYear
	}
	if a.YearsPerMap > 0 {
		c.YearsPerMap = a.YearsPerMap
	}
	if a.MapCount > 0 {
		c.MapCount = a.MapCount
	}
	return nil
}

// defaultStations is the built-in list of stations charted when no analysis
// file provides one.
func defaultStations() []string {
	return []string{
		"Vancouver", "Whitehorse", "Yellowknife", "Iqaluit", "Calgary",
		"Regina", "Winnipeg", "London", "Quebec", "Halifax", "Gander",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
