package config

import "sort"

var Presets = map[string]*Config{
	"standard": {
		Frequency: 60, Amplitude: 0.1, Length: 0.15, Points: 100,
		Solver: "analytic", ReferenceDepth: 0.25,
	},
	"iron-fine": {
		Frequency: 60, Amplitude: 1.0, Length: 0.005, Points: 500,
		Solver: "analytic", ReferenceDepth: 0.25,
		Materials: []string{"iron"},
	},
	"ftcs-demo": {
		Frequency: 60, Amplitude: 0.1, Length: 0.05, Points: 250,
		Solver: "ftcs", ReferenceDepth: 0.25,
		Materials: []string{"copper"},
	},
	"mains-50hz": {
		Frequency: 50, Amplitude: 0.1, Length: 0.15, Points: 100,
		Solver: "analytic", ReferenceDepth: 0.25,
	},
}

// GetPreset returns a copy of the named preset, so callers can layer
// overrides on it without touching the registry. Unknown names return
// nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
