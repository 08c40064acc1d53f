package models

// Station is one weather-observation site from the national archive
// metadata file. Records are built once at load time and treated as
// read-only afterwards.
type Station struct {
	ID         string
	Province   string
	Name       string
	BeginYear  int
	BeginMonth int
	EndYear    int
	EndMonth   int
	Lat        float64
	Lon        float64
	Elev       int
	Joined     string
}

// YearSeries maps a calendar year to the monthly mean temperatures retained
// for that year. Months with missing readings are dropped rather than
// null-padded, so a slice holds 0–12 values and positions do not correspond
// to calendar months.
type YearSeries map[int][]float64

// SeriesByStation maps a station identifier to its yearly temperature series.
type SeriesByStation map[string]YearSeries

// MapPoint is one plotted station: its coordinates and the computed average
// annual temperature change for the window being drawn.
type MapPoint struct {
	Lat    float64
	Lon    float64
	Change float64
}

// TrendReport holds the computed analytics over one window's station trends.
type TrendReport struct {
	Stations       int
	Warming        int
	Cooling        int
	MeanChange     float64
	MinChange      float64
	MaxChange      float64
	FastestWarming string
	FastestCooling string
	NetworkSpanKm  float64
}
