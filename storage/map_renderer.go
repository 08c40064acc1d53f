package storage

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"weather-analysis/models"
)

// Marker colors: warming stations red, cooling blue, flat black.
var (
	warmingColor = color.RGBA{R: 0xc8, A: 0xff}
	coolingColor = color.RGBA{B: 0xc8, A: 0xff}
	flatColor    = color.RGBA{A: 0xff}
)

// PlotRenderer draws annotated geographic scatter plots and saves them as
// PNG files under its output directory.
type PlotRenderer struct {
	outputDir string
}

// NewPlotRenderer creates the output directory if needed and returns a
// ready-to-use PlotRenderer.
func NewPlotRenderer(outputDir string) (*PlotRenderer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("map: create output dir: %w", err)
	}
	return &PlotRenderer{outputDir: outputDir}, nil
}

// Render draws each station at (longitude, latitude), colored by the sign of
// its value and labeled with its name and value, then saves the figure as a
// PNG named after the title.
func (r *PlotRenderer) Render(title string, points map[string]models.MapPoint) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"

	names := make([]string, 0, len(points))
	for name := range points {
		names = append(names, name)
	}
	sort.Strings(names)

	var warming, cooling, flat plotter.XYs
	var labels plotter.XYLabels
	for _, name := range names {
		pt := points[name]
		xy := plotter.XY{X: pt.Lon, Y: pt.Lat}
		switch {
		case pt.Change > 0:
			warming = append(warming, xy)
		case pt.Change < 0:
			cooling = append(cooling, xy)
		default:
			flat = append(flat, xy)
		}
		labels.XYs = append(labels.XYs, xy)
		labels.Labels = append(labels.Labels, fmt.Sprintf("%s %.2f°C", name, pt.Change))
	}

	groups := []struct {
		xys plotter.XYs
		col color.Color
	}{
		{warming, warmingColor},
		{cooling, coolingColor},
		{flat, flatColor},
	}
	for _, g := range groups {
		if len(g.xys) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(g.xys)
		if err != nil {
			return fmt.Errorf("map: scatter: %w", err)
		}
		scatter.GlyphStyle.Color = g.col
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
	}

	annotations, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("map: labels: %w", err)
	}
	p.Add(annotations)

	path := filepath.Join(r.outputDir, fileName(title))
	if err := p.Save(9*vg.Inch, 9*vg.Inch, path); err != nil {
		return fmt.Errorf("map: save %q: %w", path, err)
	}
	return nil
}

// OutputPath returns where a plot with the given title is saved.
func (r *PlotRenderer) OutputPath(title string) string {
	return filepath.Join(r.outputDir, fileName(title))
}

// fileName derives a safe PNG file name from a plot title.
func fileName(title string) string {
	mapped := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return c
		case c >= 'A' && c <= 'Z':
			return c + ('a' - 'A')
		default:
			return '_'
		}
	}, title)
	for strings.Contains(mapped, "__") {
		mapped = strings.ReplaceAll(mapped, "__", "_")
	}
	return strings.Trim(mapped, "_") + ".png"
}
