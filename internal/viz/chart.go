package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/vitor-souza-ime/foucault/internal/compare"
)

// ansiColors maps registry display colors to terminal series colors.
var ansiColors = map[string]asciigraph.AnsiColor{
	"#3498db": asciigraph.Blue,
	"#e67e22": asciigraph.Yellow,
	"#e74c3c": asciigraph.Red,
}

func seriesColor(hex string) asciigraph.AnsiColor {
	if c, ok := ansiColors[hex]; ok {
		return c
	}
	return asciigraph.Default
}

// EnvelopeChart plots every material's oscillation envelope against
// depth.
func EnvelopeChart(t *compare.Table, width, height int) string {
	if len(t.Rows) == 0 {
		return ""
	}

	series := make([][]float64, len(t.Rows))
	colors := make([]asciigraph.AnsiColor, len(t.Rows))
	legends := make([]string, len(t.Rows))
	for i := range t.Rows {
		series[i] = t.Rows[i].Profile.Envelope
		colors[i] = seriesColor(t.Rows[i].Material.Color)
		legends[i] = t.Rows[i].Material.Name
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("|B| envelope over %.0f mm of depth", t.Domain.Length*1e3)),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}

// PowerChart plots a row's dissipation density profile over depth, in
// kW/m^3.
func PowerChart(r *compare.Row, width, height int) string {
	kw := make([]float64, len(r.Power))
	for i, p := range r.Power {
		kw[i] = p / 1e3
	}

	return asciigraph.Plot(kw,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("p(x) kW/m3 over %.0f mm of depth", r.Profile.X[len(r.Profile.X)-1]*1e3)),
		asciigraph.SeriesColors(seriesColor(r.Material.Color)),
	)
}

// WaveformChart plots the captured oscillation at a row's reference
// depth against the surface drive.
func WaveformChart(r *compare.Row, width, height int) string {
	xi := r.Profile.NearestIndex(r.ReferenceDepth)

	surface := make([]float64, len(r.Profile.Times))
	inner := make([]float64, len(r.Profile.Times))
	for ti := range r.Profile.Times {
		surface[ti] = r.Profile.B[ti][0]
		inner[ti] = r.Profile.B[ti][xi]
	}

	return asciigraph.PlotMany([][]float64{surface, inner},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("B(t): surface vs x = %.2f mm", r.ReferenceDepth*1e3)),
		asciigraph.SeriesColors(asciigraph.Default, seriesColor(r.Material.Color)),
		asciigraph.SeriesLegends("surface", r.Material.Name),
	)
}
