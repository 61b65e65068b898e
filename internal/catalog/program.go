// Package catalog defines the assistance program data model, the symmetric
// stacking-conflict relation between programs and the default Colorado
// program catalog.
package catalog

import (
	"fmt"
	"math"
	"strconv"

	"github.com/iwvelando/dpa-navigator/pkg/constants"
	"github.com/iwvelando/dpa-navigator/pkg/format"
	"github.com/iwvelando/dpa-navigator/pkg/mathutil"
)

// Category classifies a program by who offers it.
type Category string

const (
	CategoryState             Category = "state"
	CategoryLocal             Category = "local"
	CategoryNonprofit         Category = "nonprofit"
	CategoryFederal           Category = "federal"
	CategoryOccupation        Category = "occupation"
	CategoryAffordableHousing Category = "affordable-housing"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryState, CategoryLocal, CategoryNonprofit, CategoryFederal,
		CategoryOccupation, CategoryAffordableHousing:
		return true
	}
	return false
}

// RuleKind selects how an AssistanceRule maps a home price to an amount.
type RuleKind string

const (
	// RuleFlat pays a fixed amount regardless of price.
	RuleFlat RuleKind = "flat"
	// RulePercent pays a fraction of the price, optionally capped.
	RulePercent RuleKind = "percent"
	// RuleZero pays nothing; the program's value is in its loan terms.
	RuleZero RuleKind = "zero"
)

// AssistanceRule is the declarative form of a program's assistance amount.
type AssistanceRule struct {
	Kind    RuleKind `yaml:"kind" json:"kind"`
	Amount  float64  `yaml:"amount,omitempty" json:"amount,omitempty"`
	Percent float64  `yaml:"percent,omitempty" json:"percent,omitempty"`
	Cap     float64  `yaml:"cap,omitempty" json:"cap,omitempty"`
}

// Flat returns a rule paying a fixed amount.
func Flat(amount float64) AssistanceRule {
	return AssistanceRule{Kind: RuleFlat, Amount: amount}
}

// Percent returns a rule paying fraction*price, capped at ceiling when ceiling > 0.
func Percent(fraction, ceiling float64) AssistanceRule {
	return AssistanceRule{Kind: RulePercent, Percent: fraction, Cap: ceiling}
}

// Zero returns a rule that never pays cash assistance.
func Zero() AssistanceRule {
	return AssistanceRule{Kind: RuleZero}
}

// Calc returns the assistance amount for an estimated home price. It is
// total over any input: negative or non-finite prices count as zero and the
// result is never negative.
func (r AssistanceRule) Calc(price float64) float64 {
	price = mathutil.NonNegative(price)

	switch r.Kind {
	case RuleFlat:
		return mathutil.NonNegative(r.Amount)
	case RulePercent:
		amount := price * mathutil.NonNegative(r.Percent)
		if r.Cap > 0 {
			amount = mathutil.Min(amount, r.Cap)
		}
		return mathutil.NonNegative(amount)
	default:
		return 0
	}
}

// Label describes the rule for display, e.g. "Up to $15,000 (4% of price)".
func (r AssistanceRule) Label() string {
	switch r.Kind {
	case RuleFlat:
		return format.WholeCurrency(r.Amount)
	case RulePercent:
		percent := strconv.FormatFloat(math.Round(r.Percent*constants.PercentageMultiplier*100)/100, 'f', -1, 64) + "% of price"
		if r.Cap > 0 {
			return "Up to " + format.WholeCurrency(r.Cap) + " (" + percent + ")"
		}
		return percent
	default:
		return "No cash assistance"
	}
}

// Validate checks that the rule is well formed.
func (r AssistanceRule) Validate() error {
	switch r.Kind {
	case RuleFlat:
		if r.Amount < 0 || math.IsNaN(r.Amount) {
			return fmt.Errorf("%w: flat amount %v must be non-negative", ErrInvalidRule, r.Amount)
		}
	case RulePercent:
		if r.Percent < 0 || r.Percent > 1 || math.IsNaN(r.Percent) {
			return fmt.Errorf("%w: percent %v must be a fraction between 0 and 1", ErrInvalidRule, r.Percent)
		}
		if r.Cap < 0 || math.IsNaN(r.Cap) {
			return fmt.Errorf("%w: cap %v must be non-negative", ErrInvalidRule, r.Cap)
		}
	case RuleZero:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidRule, r.Kind)
	}
	return nil
}

// Program is one assistance offering.
type Program struct {
	ID                  string         `yaml:"id" json:"id"`
	Name                string         `yaml:"name" json:"name"`
	Description         string         `yaml:"description,omitempty" json:"description,omitempty"`
	AmountLabel         string         `yaml:"amountLabel,omitempty" json:"amountLabel,omitempty"`
	Counties            []string       `yaml:"counties" json:"counties"`
	MaxIncome           int            `yaml:"maxIncome" json:"maxIncome"`
	Requirements        []string       `yaml:"requirements,omitempty" json:"requirements,omitempty"`
	Occupations         OccupationSet  `yaml:"occupation,omitempty" json:"occupations,omitempty"`
	Assistance          AssistanceRule `yaml:"assistance" json:"assistance"`
	IsGrant             bool           `yaml:"isGrant,omitempty" json:"isGrant"`
	RateAdjustment      float64        `yaml:"rateAdjustment,omitempty" json:"rateAdjustment"`
	YearsToForgiveness  *int           `yaml:"yearsToForgiveness,omitempty" json:"yearsToForgiveness"`
	IsDeferred          bool           `yaml:"isDeferred,omitempty" json:"isDeferred"`
	ProcessingWeeks     int            `yaml:"processingWeeks,omitempty" json:"processingWeeks,omitempty"`
	Category            Category       `yaml:"category" json:"category"`
	IsAffordableHousing bool           `yaml:"isAffordableHousing,omitempty" json:"isAffordableHousing"`
	ProgramType         string         `yaml:"programType,omitempty" json:"programType,omitempty"`
	Pros                string         `yaml:"pros,omitempty" json:"pros,omitempty"`
	Cons                string         `yaml:"cons,omitempty" json:"cons,omitempty"`
	ConflictsWith       []string       `yaml:"conflictsWith,omitempty" json:"conflictsWith,omitempty"`
}

// CalcAmount returns the assistance the program provides at the given home price.
func (p Program) CalcAmount(price float64) float64 {
	return p.Assistance.Calc(price)
}

// ServesCounty reports whether the program is offered in county.
func (p Program) ServesCounty(county string) bool {
	for _, c := range p.Counties {
		if c == constants.AllCounties || c == county {
			return true
		}
	}
	return false
}

// RequiresFirstTimeBuyer reports whether the machine-checked first-time
// buyer marker appears among the requirements.
func (p Program) RequiresFirstTimeBuyer() bool {
	for _, req := range p.Requirements {
		if req == constants.FirstTimeBuyerRequirement {
			return true
		}
	}
	return false
}

// RequiresVeteran reports whether the occupation constraint is satisfied
// by veteran status instead of an occupation tag.
func (p Program) RequiresVeteran() bool {
	return p.Occupations.Contains(constants.VeteranOccupation)
}

// Forgivable reports whether the assistance is forgiven after a holding period.
func (p Program) Forgivable() bool {
	return p.YearsToForgiveness != nil
}

func (p Program) clone() Program {
	out := p
	out.Counties = append([]string(nil), p.Counties...)
	out.Requirements = append([]string(nil), p.Requirements...)
	out.ConflictsWith = append([]string(nil), p.ConflictsWith...)
	out.Occupations = p.Occupations.clone()
	if p.YearsToForgiveness != nil {
		years := *p.YearsToForgiveness
		out.YearsToForgiveness = &years
	}
	return out
}

func (p Program) validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: program %q has no id", ErrInvalidProgram, p.Name)
	}
	if p.MaxIncome < 0 {
		return fmt.Errorf("%w: program %s has negative income limit %d", ErrInvalidProgram, p.ID, p.MaxIncome)
	}
	if len(p.Counties) == 0 {
		return fmt.Errorf("%w: program %s serves no counties", ErrInvalidProgram, p.ID)
	}
	if p.Category != "" && !p.Category.Valid() {
		return fmt.Errorf("%w: program %s has unknown category %q", ErrInvalidProgram, p.ID, p.Category)
	}
	if p.YearsToForgiveness != nil && *p.YearsToForgiveness < 0 {
		return fmt.Errorf("%w: program %s has negative years to forgiveness", ErrInvalidProgram, p.ID)
	}
	if err := p.Assistance.Validate(); err != nil {
		return fmt.Errorf("program %s: %w", p.ID, err)
	}
	return nil
}
