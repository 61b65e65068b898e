// Package testutil provides common utility functions for testing.
package testutil

import (
	"sort"

	"github.com/iwvelando/dpa-navigator/internal/catalog"
	"github.com/iwvelando/dpa-navigator/internal/packages"
	"github.com/iwvelando/dpa-navigator/internal/profile"
)

// FindPackage finds the package made of exactly ids, in any order.
// Returns a pointer to the package if found, nil otherwise.
func FindPackage(pkgs []packages.Package, ids ...string) *packages.Package {
	want := sortedCopy(ids)
	for i := range pkgs {
		got := sortedCopy(pkgs[i].IDs())
		if equal(got, want) {
			return &pkgs[i]
		}
	}
	return nil
}

// FindProgram finds a program by id in the programs slice.
// Returns a pointer to the program if found, nil otherwise.
func FindProgram(programs []catalog.Program, id string) *catalog.Program {
	for i := range programs {
		if programs[i].ID == id {
			return &programs[i]
		}
	}
	return nil
}

// NewProfile returns a complete profile for county with the given income
// and savings and a 660-699 credit bracket.
func NewProfile(county string, income, savings int) profile.Profile {
	p := profile.New()
	p.County = county
	p.Income = income
	p.Savings = savings
	p.Credit = profile.Credit660To699
	return p
}

func sortedCopy(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
