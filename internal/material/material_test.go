package material

import (
	"errors"
	"math"
	"testing"

	"github.com/vitor-souza-ime/foucault/internal/field"
)

func TestRegistryOrder(t *testing.T) {
	mats := Registry()
	want := []string{"aluminum", "copper", "iron"}

	if len(mats) != len(want) {
		t.Fatalf("Registry() returned %d materials, want %d", len(mats), len(want))
	}
	for i, name := range want {
		if mats[i].Name != name {
			t.Errorf("Registry()[%d].Name = %q, want %q", i, mats[i].Name, name)
		}
	}
}

func TestRegistryValues(t *testing.T) {
	tests := []struct {
		name  string
		sigma float64
		muR   float64
	}{
		{"aluminum", 3.5e7, 1},
		{"copper", 5.8e7, 1},
		{"iron", 1.0e7, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ByName(tt.name)
			if err != nil {
				t.Fatalf("ByName(%q) error: %v", tt.name, err)
			}
			if p.Sigma != tt.sigma {
				t.Errorf("Sigma = %g, want %g", p.Sigma, tt.sigma)
			}
			if p.MuR != tt.muR {
				t.Errorf("MuR = %g, want %g", p.MuR, tt.muR)
			}
			if p.Color == "" {
				t.Error("Color is empty")
			}
		})
	}
}

func TestMu(t *testing.T) {
	iron, _ := ByName("iron")
	want := 1000 * Mu0
	if got := iron.Mu(); math.Abs(got-want)/want > 1e-15 {
		t.Errorf("iron Mu() = %g, want %g", got, want)
	}

	copper, _ := ByName("copper")
	if got := copper.Mu(); math.Abs(got-Mu0)/Mu0 > 1e-15 {
		t.Errorf("copper Mu() = %g, want Mu0 = %g", got, Mu0)
	}
}

func TestByNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"Iron", "IRON", "  iron "} {
		p, err := ByName(name)
		if err != nil {
			t.Errorf("ByName(%q) error: %v", name, err)
			continue
		}
		if p.Name != "iron" {
			t.Errorf("ByName(%q).Name = %q, want iron", name, p.Name)
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("unobtanium")
	if err == nil {
		t.Fatal("ByName(unobtanium) = nil error, want error")
	}
}

func TestRegistryIsolation(t *testing.T) {
	mats := Registry()
	mats[0].Sigma = -1

	fresh := Registry()
	if fresh[0].Sigma != 3.5e7 {
		t.Errorf("mutating a Registry() copy leaked into the registry: Sigma = %g", fresh[0].Sigma)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		props   Properties
		wantErr bool
	}{
		{"valid", Properties{Name: "x", Sigma: 1e7, MuR: 1}, false},
		{"zero sigma", Properties{Name: "x", Sigma: 0, MuR: 1}, true},
		{"negative sigma", Properties{Name: "x", Sigma: -1e7, MuR: 1}, true},
		{"zero muR", Properties{Name: "x", Sigma: 1e7, MuR: 0}, true},
		{"negative muR", Properties{Name: "x", Sigma: 1e7, MuR: -2}, true},
		{"sub-unity muR", Properties{Name: "x", Sigma: 1e7, MuR: 0.5}, true},
		{"NaN sigma", Properties{Name: "x", Sigma: math.NaN(), MuR: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.props.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var ipe *field.InvalidParameterError
				if !errors.As(err, &ipe) {
					t.Errorf("error type = %T, want *field.InvalidParameterError", err)
				}
			}
		})
	}
}
