// Package figure renders comparison results as PNG figures: field
// attenuation against depth, waveforms at the reference depth, and the
// dissipation profile.
package figure

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vitor-souza-ime/foucault/internal/compare"
	"github.com/vitor-souza-ime/foucault/internal/field"
)

var (
	grayDash  = []vg.Length{vg.Points(4), vg.Points(3)}
	lightGray = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
)

// hexColor parses a #rrggbb string; unknown strings come back gray.
func hexColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return lightGray
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Attenuation plots every material's oscillation envelope against
// depth, with the analytic decay dashed on top, a marker line at each
// skin depth, and the 1/e reference level.
func Attenuation(table *compare.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Field attenuation at %.0f Hz", table.Excitation.Frequency)
	p.X.Label.Text = "depth (mm)"
	p.Y.Label.Text = "|B| envelope (T)"
	p.Add(plotter.NewGrid())

	maxEnv := 0.0
	for _, row := range table.Rows {
		for _, e := range row.Profile.Envelope {
			if e > maxEnv {
				maxEnv = e
			}
		}
	}

	for i := range table.Rows {
		row := &table.Rows[i]
		c := hexColor(row.Material.Color)

		env := make(plotter.XYs, len(row.Profile.X))
		for j, x := range row.Profile.X {
			env[j].X = x * 1e3
			env[j].Y = row.Profile.Envelope[j]
		}
		line, err := plotter.NewLine(env)
		if err != nil {
			return nil, err
		}
		line.Color = c
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(row.Material.Name, line)

		theory := make(plotter.XYs, len(row.Profile.X))
		for j, x := range row.Profile.X {
			theory[j].X = x * 1e3
			theory[j].Y = table.Excitation.Amplitude * math.Exp(-x/row.SkinDepth)
		}
		dashed, err := plotter.NewLine(theory)
		if err != nil {
			return nil, err
		}
		dashed.Color = c
		dashed.Width = vg.Points(0.8)
		dashed.Dashes = grayDash
		p.Add(dashed)

		if row.SkinDepth <= table.Domain.Length {
			marker, err := plotter.NewLine(plotter.XYs{
				{X: row.SkinDepth * 1e3, Y: 0},
				{X: row.SkinDepth * 1e3, Y: maxEnv},
			})
			if err != nil {
				return nil, err
			}
			marker.Color = c
			marker.Width = vg.Points(0.5)
			marker.Dashes = grayDash
			p.Add(marker)
		}
	}

	ref, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: table.Excitation.Amplitude / math.E},
		{X: table.Domain.Length * 1e3, Y: table.Excitation.Amplitude / math.E},
	})
	if err != nil {
		return nil, err
	}
	ref.Color = lightGray
	ref.Dashes = grayDash
	p.Add(ref)
	p.Legend.Add("B0/e", ref)

	p.Legend.Top = true
	return p, nil
}

// twoPeriods tiles the captured steady-state period twice, so lag
// relationships stay readable across a cycle boundary.
func twoPeriods(prof *field.Profile, xi int) plotter.XYs {
	t0 := prof.Times[0]
	pts := make(plotter.XYs, 0, 2*len(prof.Times))
	for rep := 0; rep < 2; rep++ {
		shift := float64(rep) * prof.Period
		for ti, tv := range prof.Times {
			pts = append(pts, plotter.XY{
				X: (tv - t0 + shift) * 1e3,
				Y: prof.B[ti][xi],
			})
		}
	}
	return pts
}

// Waveforms plots the field oscillation at each material's reference
// depth over two periods of the drive, with the surface excitation
// dashed for scale.
func Waveforms(table *compare.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Waveforms at the reference depth"
	p.X.Label.Text = "time (ms)"
	p.Y.Label.Text = "B (T)"
	p.Add(plotter.NewGrid())

	if len(table.Rows) > 0 {
		line, err := plotter.NewLine(twoPeriods(table.Rows[0].Profile, 0))
		if err != nil {
			return nil, err
		}
		line.Color = lightGray
		line.Dashes = grayDash
		p.Add(line)
		p.Legend.Add("surface", line)
	}

	for i := range table.Rows {
		row := &table.Rows[i]
		xi := row.Profile.NearestIndex(row.ReferenceDepth)

		line, err := plotter.NewLine(twoPeriods(row.Profile, xi))
		if err != nil {
			return nil, err
		}
		line.Color = hexColor(row.Material.Color)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(row.Material.Name, line)
	}

	p.Legend.Top = true
	return p, nil
}

// Power plots the peak dissipation density profile of each material.
func Power(table *compare.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Eddy-current dissipation"
	p.X.Label.Text = "depth (mm)"
	p.Y.Label.Text = "p (kW/m^3)"
	p.Add(plotter.NewGrid())

	for i := range table.Rows {
		row := &table.Rows[i]

		pd := make(plotter.XYs, len(row.Profile.X))
		for j, x := range row.Profile.X {
			pd[j].X = x * 1e3
			pd[j].Y = row.Power[j] / 1e3
		}
		line, err := plotter.NewLine(pd)
		if err != nil {
			return nil, err
		}
		line.Color = hexColor(row.Material.Color)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(row.Material.Name, line)
	}

	p.Legend.Top = true
	return p, nil
}

// Save writes a figure as a 7x5 inch PNG.
func Save(p *plot.Plot, path string) error {
	return p.Save(7*vg.Inch, 5*vg.Inch, path)
}

// SaveAll renders the standard figure set into dir.
func SaveAll(table *compare.Table, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	builders := []struct {
		name  string
		build func(*compare.Table) (*plot.Plot, error)
	}{
		{"attenuation.png", Attenuation},
		{"waveforms.png", Waveforms},
		{"power.png", Power},
	}
	for _, b := range builders {
		p, err := b.build(table)
		if err != nil {
			return err
		}
		if err := Save(p, filepath.Join(dir, b.name)); err != nil {
			return err
		}
	}
	return nil
}
