package testutil

import (
	"testing"

	"github.com/iwvelando/dpa-navigator/internal/catalog"
	"github.com/iwvelando/dpa-navigator/internal/packages"
)

func TestFindPackage(t *testing.T) {
	pkgs := []packages.Package{
		{Programs: []packages.Member{{ID: "metro-dpa"}}, TotalAssistance: 15000},
		{Programs: []packages.Member{{ID: "metro-dpa"}, {ID: "chac-loan"}}, TotalAssistance: 34125},
		{Programs: []packages.Member{{ID: "chac-loan"}}, TotalAssistance: 19125},
	}

	tests := []struct {
		name          string
		ids           []string
		expectFound   bool
		expectedTotal float64
	}{
		{
			name:          "Find singleton",
			ids:           []string{"chac-loan"},
			expectFound:   true,
			expectedTotal: 19125,
		},
		{
			name:          "Find pair in package order",
			ids:           []string{"metro-dpa", "chac-loan"},
			expectFound:   true,
			expectedTotal: 34125,
		},
		{
			name:          "Find pair in reverse order",
			ids:           []string{"chac-loan", "metro-dpa"},
			expectFound:   true,
			expectedTotal: 34125,
		},
		{
			name:        "Subset does not match",
			ids:         []string{"chfa-grant"},
			expectFound: false,
		},
		{
			name:        "No ids",
			ids:         nil,
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindPackage(pkgs, tt.ids...)
			if !tt.expectFound {
				if result != nil {
					t.Errorf("FindPackage(%v) expected nil, got %+v", tt.ids, result)
				}
				return
			}
			if result == nil {
				t.Fatalf("FindPackage(%v) expected a package, got nil", tt.ids)
			}
			if result.TotalAssistance != tt.expectedTotal {
				t.Errorf("FindPackage(%v) total = %v, expected %v", tt.ids, result.TotalAssistance, tt.expectedTotal)
			}
		})
	}
}

func TestFindPackageReturnsPointerIntoSlice(t *testing.T) {
	pkgs := []packages.Package{{Programs: []packages.Member{{ID: "a"}}}}
	FindPackage(pkgs, "a").TotalAssistance = 42
	if pkgs[0].TotalAssistance != 42 {
		t.Error("expected FindPackage to return a pointer into the slice")
	}
}

func TestFindProgram(t *testing.T) {
	programs := catalog.Default().Programs()

	if p := FindProgram(programs, catalog.BoulderH2O); p == nil || p.MaxIncome != 95000 {
		t.Errorf("expected boulder-h2o with a 95000 limit, got %+v", p)
	}
	if p := FindProgram(programs, "missing"); p != nil {
		t.Errorf("expected nil for an unknown id, got %+v", p)
	}
	if p := FindProgram(nil, catalog.BoulderH2O); p != nil {
		t.Error("expected nil for an empty slice")
	}
}

func TestNewProfile(t *testing.T) {
	p := NewProfile("Denver", 85000, 10000)
	if !p.Complete() {
		t.Errorf("expected a complete profile, got %+v", p)
	}
	if !p.FirstTimeBuyer || p.HouseholdSize != 1 {
		t.Errorf("expected session defaults, got %+v", p)
	}
}
