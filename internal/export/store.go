package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vitor-souza-ime/foucault/internal/compare"
)

// Store lays comparison runs out on disk, one directory per run:
// metadata.json, summary.csv and a profile CSV per material.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata summarizes one stored run.
type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Solver     string             `json:"solver"`
	Frequency  float64            `json:"frequency"`
	Amplitude  float64            `json:"amplitude"`
	Length     float64            `json:"length"`
	Points     int                `json:"points"`
	Materials  []string           `json:"materials"`
	TotalPower map[string]float64 `json:"total_power"`
}

// Save writes a completed comparison as a new run directory and
// returns its ID.
func (s *Store) Save(table *compare.Table) (string, error) {
	runID := fmt.Sprintf("%s_%d", table.Solver, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Solver:     table.Solver,
		Frequency:  table.Excitation.Frequency,
		Amplitude:  table.Excitation.Amplitude,
		Length:     table.Domain.Length,
		Points:     table.Domain.Points,
		Materials:  make([]string, len(table.Rows)),
		TotalPower: make(map[string]float64, len(table.Rows)),
	}
	for i, row := range table.Rows {
		meta.Materials[i] = row.Material.Name
		meta.TotalPower[row.Material.Name] = row.TotalPower
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	summary, err := os.Create(filepath.Join(runDir, "summary.csv"))
	if err != nil {
		return "", err
	}
	defer summary.Close()
	if err := WriteTableCSV(summary, table); err != nil {
		return "", err
	}

	for i := range table.Rows {
		row := &table.Rows[i]
		f, err := os.Create(filepath.Join(runDir, row.Material.Name+".csv"))
		if err != nil {
			return "", err
		}
		if err := WriteProfileCSV(f, row); err != nil {
			f.Close()
			return "", err
		}
		f.Close()
	}

	return runID, nil
}

// List returns metadata for every stored run, skipping entries it
// cannot parse.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// ProfileColumns is the parsed form of a stored profile CSV.
type ProfileColumns struct {
	X        []float64
	Envelope []float64
	Current  []float64
	Power    []float64
}

// LoadProfile reads one material's profile back from a stored run.
func (s *Store) LoadProfile(runID, materialName string) (*ProfileColumns, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, materialName+".csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &ProfileColumns{}, nil
	}

	cols := &ProfileColumns{
		X:        make([]float64, 0, len(records)-1),
		Envelope: make([]float64, 0, len(records)-1),
		Current:  make([]float64, 0, len(records)-1),
		Power:    make([]float64, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		env, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		cur, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		pow, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}
		cols.X = append(cols.X, x)
		cols.Envelope = append(cols.Envelope, env)
		cols.Current = append(cols.Current, cur)
		cols.Power = append(cols.Power, pow)
	}
	return cols, nil
}
