package viz

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/vitor-souza-ime/foucault/internal/compare"
)

const (
	labelWidth = 22
	cellWidth  = 14
)

type tableRow struct {
	label string
	value func(*compare.Row) string
}

var tableRows = []tableRow{
	{"sigma (MS/m)", func(r *compare.Row) string { return fmt.Sprintf("%.1f", r.Material.Sigma/1e6) }},
	{"mu_r", func(r *compare.Row) string { return fmt.Sprintf("%g", r.Material.MuR) }},
	{"skin depth (mm)", func(r *compare.Row) string { return fmt.Sprintf("%.3f", r.SkinDepth*1e3) }},
	{"fitted depth (mm)", func(r *compare.Row) string { return fmt.Sprintf("%.3f", r.FittedSkinDepth*1e3) }},
	{"phase lag (rad)", func(r *compare.Row) string { return fmt.Sprintf("%.3f", r.PhaseLag) }},
	{"phase lag (deg)", func(r *compare.Row) string { return fmt.Sprintf("%.1f", r.PhaseLag*180/math.Pi) }},
	{"phase delay (ms)", func(r *compare.Row) string { return fmt.Sprintf("%.3f", r.PhaseDelay*1e3) }},
	{"peak |J| (A/m2)", func(r *compare.Row) string { return fmt.Sprintf("%.4g", r.PeakCurrent) }},
	{"mean |J| (A/m2)", func(r *compare.Row) string { return fmt.Sprintf("%.4g", r.MeanCurrent) }},
	{"peak/mean", func(r *compare.Row) string { return fmt.Sprintf("%.2f", r.PeakMeanRatio) }},
	{"peak p (W/m3)", func(r *compare.Row) string { return fmt.Sprintf("%.4g", r.PeakPowerDensity) }},
	{"mean p (W/m3)", func(r *compare.Row) string { return fmt.Sprintf("%.4g", r.MeanPowerDensity) }},
	{"mean P (W/m2)", func(r *compare.Row) string { return fmt.Sprintf("%.4g", r.TotalPower) }},
	{"peak P (W/m2)", func(r *compare.Row) string { return fmt.Sprintf("%.4g", r.TotalPeakPower) }},
}

// RenderTable lays a comparison out with one column per material and
// one line per quantity.
func RenderTable(t *compare.Table) string {
	var b strings.Builder

	title := fmt.Sprintf("eddy currents · %g Hz · B0 = %g T · %s solver",
		t.Excitation.Frequency, t.Excitation.Amplitude, t.Solver)
	b.WriteString(titleStyle.Render(title) + "\n\n")

	if len(t.Rows) == 0 {
		b.WriteString(subtleStyle.Render("(no materials)") + "\n")
		return b.String()
	}

	b.WriteString(strings.Repeat(" ", labelWidth))
	for i := range t.Rows {
		name := t.Rows[i].Material.Name
		pad := cellWidth - len(name)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad) + materialStyle(t.Rows[i].Material.Color).Render(name))
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(strings.Repeat("─", labelWidth+cellWidth*len(t.Rows))) + "\n")

	for _, row := range tableRows {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("%-*s", labelWidth, row.label)))
		for i := range t.Rows {
			b.WriteString(valueStyle.Render(fmt.Sprintf("%*s", cellWidth, row.value(&t.Rows[i]))))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + subtleStyle.Render(
		fmt.Sprintf("phase probe at x = %.2f mm", t.Rows[0].ReferenceDepth*1e3)) + "\n")
	return b.String()
}

// RenderTablePlain lays the same quantities out without any styling,
// for piping into files or dumb terminals.
func RenderTablePlain(t *compare.Table) string {
	if len(t.Rows) == 0 {
		return "no materials\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
	fmt.Fprint(w, "QUANTITY")
	for i := range t.Rows {
		fmt.Fprintf(w, "\t%s", t.Rows[i].Material.Name)
	}
	fmt.Fprintln(w)
	for _, row := range tableRows {
		fmt.Fprint(w, row.label)
		for i := range t.Rows {
			fmt.Fprintf(w, "\t%s", row.value(&t.Rows[i]))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	return b.String()
}
