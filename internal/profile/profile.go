// Package profile defines the buyer profile value and the pure reducer the
// presentation layer uses to update it field by field.
package profile

import (
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/dpa-navigator/internal/catalog"
)

// CreditBracket is the self-reported credit score range.
type CreditBracket string

const (
	CreditUnknown  CreditBracket = ""
	CreditBelow620 CreditBracket = "below-620"
	Credit620To659 CreditBracket = "620-659"
	Credit660To699 CreditBracket = "660-699"
	Credit700To739 CreditBracket = "700-739"
	Credit740Plus  CreditBracket = "740+"
)

// CreditBrackets returns every bracket from lowest to highest.
func CreditBrackets() []CreditBracket {
	return []CreditBracket{CreditBelow620, Credit620To659, Credit660To699, Credit700To739, Credit740Plus}
}

// Valid reports whether c is one of the five known brackets.
func (c CreditBracket) Valid() bool {
	for _, b := range CreditBrackets() {
		if c == b {
			return true
		}
	}
	return false
}

// ParseCreditBracket normalizes s into a bracket.
func ParseCreditBracket(s string) (CreditBracket, bool) {
	c := CreditBracket(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return CreditUnknown, false
	}
	return c, true
}

// Path is the buyer's chosen route: cash assistance or a restricted
// affordable-housing property.
type Path string

const (
	PathUndecided  Path = ""
	PathDPA        Path = "dpa"
	PathAffordable Path = "affordable"
)

// Profile is the buyer being evaluated. It is a value: every change goes
// through Apply and produces a new Profile.
type Profile struct {
	County           string        `json:"county" yaml:"county" mapstructure:"county"`
	Income           int           `json:"income" yaml:"income" mapstructure:"income"`
	HouseholdSize    int           `json:"householdSize" yaml:"householdSize" mapstructure:"householdSize"`
	FirstTimeBuyer   bool          `json:"firstTimeBuyer" yaml:"firstTimeBuyer" mapstructure:"firstTimeBuyer"`
	Savings          int           `json:"savings" yaml:"savings" mapstructure:"savings"`
	Credit           CreditBracket `json:"creditScore" yaml:"creditScore" mapstructure:"creditScore"`
	Occupation       string        `json:"occupation,omitempty" yaml:"occupation,omitempty" mapstructure:"occupation"`
	Veteran          bool          `json:"veteranStatus" yaml:"veteranStatus" mapstructure:"veteranStatus"`
	SelectedPrograms []string      `json:"selectedPrograms,omitempty" yaml:"selectedPrograms,omitempty" mapstructure:"selectedPrograms"`
	Path             Path          `json:"selectedPath,omitempty" yaml:"selectedPath,omitempty" mapstructure:"selectedPath"`
	PurchasePrice    int           `json:"purchasePrice,omitempty" yaml:"purchasePrice,omitempty" mapstructure:"purchasePrice"`
}

// New returns the session defaults.
func New() Profile {
	return Profile{
		HouseholdSize:  1,
		FirstTimeBuyer: true,
	}
}

// Complete reports whether the profile has the fields eligibility needs:
// county, income and credit bracket.
func (p Profile) Complete() bool {
	return strings.TrimSpace(p.County) != "" && p.Income > 0 && p.Credit != CreditUnknown
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	out := p
	if p.SelectedPrograms != nil {
		out.SelectedPrograms = append([]string(nil), p.SelectedPrograms...)
	}
	return out
}

// Normalize clamps numeric fields to their non-negative domain and puts a
// recognised county name in its catalog spelling.
func (p Profile) Normalize() Profile {
	out := p.Clone()
	out.County = strings.TrimSpace(out.County)
	if county, ok := catalog.CanonicalCounty(out.County); ok {
		out.County = county
	}
	out.Occupation = strings.TrimSpace(out.Occupation)
	if out.Income < 0 {
		out.Income = 0
	}
	if out.Savings < 0 {
		out.Savings = 0
	}
	if out.PurchasePrice < 0 {
		out.PurchasePrice = 0
	}
	if out.HouseholdSize < 1 {
		out.HouseholdSize = 1
	}
	return out
}

// SelectPackage records a chosen program set: the program ids are selected,
// the cash-assistance path is taken and the purchase price becomes the
// package's baseline price.
func SelectPackage(p Profile, programIDs []string, estimatedPrice float64) Profile {
	return Apply(p, Update{
		SelectedPrograms: &programIDs,
		Path:             pathPtr(PathDPA),
		PurchasePrice:    intPtr(amountFromFloat(estimatedPrice)),
	})
}

// ParseAmount coerces a user-entered currency string to a non-negative
// whole amount. Currency symbols, separators and surrounding space are
// ignored; anything unparsable is zero.
func ParseAmount(s string) int {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "_", "")
	if cleaned == "" {
		return 0
	}
	if n, err := strconv.Atoi(cleaned); err == nil {
		return amountFromFloat(float64(n))
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return amountFromFloat(f)
}

func amountFromFloat(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
