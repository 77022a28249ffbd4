package export

import (
	"encoding/json"
	"os"

	"github.com/vitor-souza-ime/foucault/internal/compare"
)

// ExportData is the JSON shape of a comparison run.
type ExportData struct {
	Solver    string    `json:"solver"`
	Frequency float64   `json:"frequency_hz"`
	Amplitude float64   `json:"amplitude_t"`
	Length    float64   `json:"length_m"`
	Points    int       `json:"points"`
	Materials []RowData `json:"materials"`
}

// RowData is one material's summary, optionally with its profiles.
type RowData struct {
	Name            string  `json:"name"`
	Sigma           float64 `json:"sigma_s_m"`
	MuR             float64 `json:"mu_r"`
	SkinDepth       float64 `json:"skin_depth_m"`
	FittedSkinDepth float64 `json:"fitted_skin_depth_m"`
	ReferenceDepth  float64 `json:"reference_depth_m"`
	PhaseLag        float64 `json:"phase_lag_rad"`
	PhaseDelay      float64 `json:"phase_delay_s"`
	PeakCurrent     float64 `json:"peak_current_a_m2"`
	MeanCurrent     float64 `json:"mean_current_a_m2"`
	PeakMeanRatio   float64 `json:"peak_mean_ratio"`
	PeakPower       float64 `json:"peak_power_w_m3"`
	MeanPower       float64 `json:"mean_power_w_m3"`
	TotalPower      float64 `json:"total_power_w_m2"`

	X        []float64 `json:"x_m,omitempty"`
	Envelope []float64 `json:"envelope_t,omitempty"`
	Current  []float64 `json:"current_a_m2,omitempty"`
	Power    []float64 `json:"power_w_m3,omitempty"`
}

// NewExportData flattens a table for serialization. Profiles are bulky
// and only included on request.
func NewExportData(table *compare.Table, profiles bool) ExportData {
	data := ExportData{
		Solver:    table.Solver,
		Frequency: table.Excitation.Frequency,
		Amplitude: table.Excitation.Amplitude,
		Length:    table.Domain.Length,
		Points:    table.Domain.Points,
		Materials: make([]RowData, len(table.Rows)),
	}
	for i, row := range table.Rows {
		rd := RowData{
			Name:            row.Material.Name,
			Sigma:           row.Material.Sigma,
			MuR:             row.Material.MuR,
			SkinDepth:       row.SkinDepth,
			FittedSkinDepth: row.FittedSkinDepth,
			ReferenceDepth:  row.ReferenceDepth,
			PhaseLag:        row.PhaseLag,
			PhaseDelay:      row.PhaseDelay,
			PeakCurrent:     row.PeakCurrent,
			MeanCurrent:     row.MeanCurrent,
			PeakMeanRatio:   row.PeakMeanRatio,
			PeakPower:       row.PeakPowerDensity,
			MeanPower:       row.MeanPowerDensity,
			TotalPower:      row.TotalPower,
		}
		if profiles {
			rd.X = row.Profile.X
			rd.Envelope = row.Profile.Envelope
			rd.Current = row.Current
			rd.Power = row.Power
		}
		data.Materials[i] = rd
	}
	return data
}

// ExportJSON writes the comparison to path as indented JSON.
func ExportJSON(path string, table *compare.Table, profiles bool) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(table, profiles))
}

// ExportJSONStdout writes the comparison to standard output.
func ExportJSONStdout(table *compare.Table, profiles bool) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(table, profiles))
}
