// Package eligibility filters the program catalog against a buyer profile.
//
// Every rule is a hard boolean gate: a program is eligible only when the
// buyer passes all of them. An incomplete profile yields no programs.
package eligibility

import (
	"github.com/iwvelando/dpa-navigator/internal/catalog"
	"github.com/iwvelando/dpa-navigator/internal/profile"
)

// Gate names a single eligibility rule.
type Gate string

const (
	GateIncome         Gate = "income"
	GateCounty         Gate = "county"
	GateFirstTimeBuyer Gate = "first-time-buyer"
	GateVeteran        Gate = "veteran"
	GateOccupation     Gate = "occupation"
	// GateIncomplete is reported for every program when the profile lacks
	// county, income or credit bracket.
	GateIncomplete Gate = "incomplete-profile"
)

// Rejection explains why one program was excluded.
type Rejection struct {
	ProgramID string `json:"programId"`
	Gates     []Gate `json:"gates"`
}

// Eligible returns the catalog programs p qualifies for, in catalog order.
func Eligible(cat *catalog.Catalog, p profile.Profile) []catalog.Program {
	eligible := []catalog.Program{}
	if cat == nil || !p.Complete() {
		return eligible
	}

	for _, program := range cat.Programs() {
		if len(failedGates(program, p)) == 0 {
			eligible = append(eligible, program)
		}
	}
	return eligible
}

// Reasons returns a Rejection for every program p does not qualify for, in
// catalog order. Programs that pass all gates are omitted.
func Reasons(cat *catalog.Catalog, p profile.Profile) []Rejection {
	rejections := []Rejection{}
	if cat == nil {
		return rejections
	}

	complete := p.Complete()
	for _, program := range cat.Programs() {
		if !complete {
			rejections = append(rejections, Rejection{ProgramID: program.ID, Gates: []Gate{GateIncomplete}})
			continue
		}
		if gates := failedGates(program, p); len(gates) > 0 {
			rejections = append(rejections, Rejection{ProgramID: program.ID, Gates: gates})
		}
	}
	return rejections
}

// Qualifies reports whether p passes every gate of program.
func Qualifies(program catalog.Program, p profile.Profile) bool {
	return p.Complete() && len(failedGates(program, p)) == 0
}

func failedGates(program catalog.Program, p profile.Profile) []Gate {
	var gates []Gate

	if p.Income > program.MaxIncome {
		gates = append(gates, GateIncome)
	}
	if !program.ServesCounty(p.County) {
		gates = append(gates, GateCounty)
	}
	if program.RequiresFirstTimeBuyer() && !p.FirstTimeBuyer {
		gates = append(gates, GateFirstTimeBuyer)
	}

	switch {
	case program.Occupations.Empty():
	case program.RequiresVeteran():
		if !p.Veteran {
			gates = append(gates, GateVeteran)
		}
	case p.Occupation == "" || !program.Occupations.Contains(p.Occupation):
		gates = append(gates, GateOccupation)
	}

	return gates
}

// Split partitions programs into cash-assistance programs and
// affordable-housing programs, preserving order within each.
func Split(programs []catalog.Program) (dpa, affordable []catalog.Program) {
	dpa = []catalog.Program{}
	affordable = []catalog.Program{}
	for _, program := range programs {
		if program.IsAffordableHousing {
			affordable = append(affordable, program)
		} else {
			dpa = append(dpa, program)
		}
	}
	return dpa, affordable
}

// MaxSingleAssistance is the largest amount any single cash-assistance
// program pays at price.
func MaxSingleAssistance(programs []catalog.Program, price float64) float64 {
	var best float64
	for _, program := range programs {
		if program.IsAffordableHousing {
			continue
		}
		if amount := program.CalcAmount(price); amount > best {
			best = amount
		}
	}
	return best
}
