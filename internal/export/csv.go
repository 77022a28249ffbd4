package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vitor-souza-ime/foucault/internal/compare"
)

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteTableCSV writes the summary table, one record per material.
func WriteTableCSV(w io.Writer, table *compare.Table) error {
	cw := csv.NewWriter(w)

	header := []string{
		"material", "sigma_s_m", "mu_r",
		"skin_depth_mm", "fitted_depth_mm",
		"phase_lag_rad", "phase_delay_ms",
		"peak_current_a_m2", "mean_current_a_m2", "peak_mean_ratio",
		"peak_power_w_m3", "mean_power_w_m3", "total_power_w_m2",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range table.Rows {
		record := []string{
			row.Material.Name,
			fmtF(row.Material.Sigma),
			fmtF(row.Material.MuR),
			fmtF(row.SkinDepth * 1e3),
			fmtF(row.FittedSkinDepth * 1e3),
			fmtF(row.PhaseLag),
			fmtF(row.PhaseDelay * 1e3),
			fmtF(row.PeakCurrent),
			fmtF(row.MeanCurrent),
			fmtF(row.PeakMeanRatio),
			fmtF(row.PeakPowerDensity),
			fmtF(row.MeanPowerDensity),
			fmtF(row.TotalPower),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteProfileCSV writes the per-depth columns of one material.
func WriteProfileCSV(w io.Writer, row *compare.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"x_m", "envelope_t", "current_a_m2", "power_w_m3"}); err != nil {
		return err
	}
	for i := range row.Profile.X {
		record := []string{
			fmtF(row.Profile.X[i]),
			fmtF(row.Profile.Envelope[i]),
			fmtF(row.Current[i]),
			fmtF(row.Power[i]),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
