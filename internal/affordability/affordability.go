// Package affordability estimates the buyer's purchasing baseline: the
// maximum home price, its all-in monthly payment and the conventional
// minimum down payment.
//
// All values are float64 and unrounded. Rounding to whole currency units
// happens only in Result.Rounded at the reporting boundary.
package affordability

import (
	"fmt"
	"math"

	"github.com/iwvelando/dpa-navigator/pkg/constants"
	"github.com/iwvelando/dpa-navigator/pkg/loans"
	"github.com/iwvelando/dpa-navigator/pkg/mathutil"
)

// Policy holds the lending assumptions behind the estimate.
type Policy struct {
	IncomeMultiplier float64 `json:"incomeMultiplier" mapstructure:"incomeMultiplier"`
	PriceCap         float64 `json:"priceCap" mapstructure:"priceCap"`
	AnnualRate       float64 `json:"annualRate" mapstructure:"annualRate"`
	TermMonths       int     `json:"termMonths" mapstructure:"termMonths"`
	MinDownFraction  float64 `json:"minDownFraction" mapstructure:"minDownFraction"`
	AnnualTaxRate    float64 `json:"annualTaxRate" mapstructure:"annualTaxRate"`
	MonthlyInsurance float64 `json:"monthlyInsurance" mapstructure:"monthlyInsurance"`
}

// DefaultPolicy returns the reference Colorado assumptions.
func DefaultPolicy() Policy {
	return Policy{
		IncomeMultiplier: constants.DefaultIncomeMultiplier,
		PriceCap:         constants.DefaultPriceCap,
		AnnualRate:       constants.DefaultAnnualRate,
		TermMonths:       constants.DefaultTermMonths,
		MinDownFraction:  constants.DefaultMinDownFraction,
		AnnualTaxRate:    constants.DefaultAnnualTaxRate,
		MonthlyInsurance: constants.DefaultMonthlyInsurance,
	}
}

// Validate reports the first assumption that cannot produce an estimate.
func (p Policy) Validate() error {
	checks := []struct {
		name  string
		value float64
		ok    bool
	}{
		{"incomeMultiplier", p.IncomeMultiplier, p.IncomeMultiplier > 0},
		{"priceCap", p.PriceCap, p.PriceCap > 0},
		{"annualRate", p.AnnualRate, p.AnnualRate >= 0 && p.AnnualRate < 1},
		{"termMonths", float64(p.TermMonths), p.TermMonths > 0},
		{"minDownFraction", p.MinDownFraction, p.MinDownFraction >= 0 && p.MinDownFraction < 1},
		{"annualTaxRate", p.AnnualTaxRate, p.AnnualTaxRate >= 0 && p.AnnualTaxRate < 1},
		{"monthlyInsurance", p.MonthlyInsurance, p.MonthlyInsurance >= 0},
	}
	for _, c := range checks {
		if !c.ok || math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("invalid %s: %v", c.name, c.value)
		}
	}
	return nil
}

// Result is the affordability baseline.
type Result struct {
	MaxPrice                 float64 `json:"maxPrice"`
	LoanAmount               float64 `json:"loanAmount"`
	MonthlyPrincipalInterest float64 `json:"monthlyPrincipalInterest"`
	MonthlyTax               float64 `json:"monthlyTax"`
	MonthlyInsurance         float64 `json:"monthlyInsurance"`
	MonthlyPayment           float64 `json:"monthlyPayment"`
	RequiredDown             float64 `json:"requiredDown"`
	Savings                  float64 `json:"savings"`
	// SavingsGap is how much of the required down payment savings do not cover.
	SavingsGap float64 `json:"savingsGap"`
}

// Report is a Result rounded to whole currency units.
type Report struct {
	MaxPrice       int `json:"maxPrice"`
	MonthlyPayment int `json:"monthlyPayment"`
	RequiredDown   int `json:"requiredDown"`
	Savings        int `json:"savings"`
	SavingsGap     int `json:"savingsGap"`
}

// Compute derives the baseline for an annual income and cash savings.
// Negative inputs are treated as zero.
func Compute(policy Policy, income, savings int) Result {
	incomeValue := mathutil.NonNegative(float64(income))
	savingsValue := mathutil.NonNegative(float64(savings))

	maxPrice := mathutil.Min(incomeValue*policy.IncomeMultiplier, policy.PriceCap)
	maxPrice = mathutil.NonNegative(maxPrice)
	loanAmount := maxPrice * (1 - policy.MinDownFraction)

	result := Result{
		MaxPrice:                 maxPrice,
		LoanAmount:               loanAmount,
		MonthlyPrincipalInterest: PrincipalAndInterest(policy, loanAmount),
		MonthlyTax:               MonthlyTax(policy, maxPrice),
		MonthlyInsurance:         policy.MonthlyInsurance,
		RequiredDown:             maxPrice * policy.MinDownFraction,
		Savings:                  savingsValue,
	}
	result.MonthlyPayment = result.MonthlyPrincipalInterest + result.MonthlyTax + result.MonthlyInsurance
	result.SavingsGap = mathutil.NonNegative(result.RequiredDown - savingsValue)
	return result
}

// PrincipalAndInterest is the amortized monthly payment on loanAmount.
// A non-positive loan has no payment.
func PrincipalAndInterest(policy Policy, loanAmount float64) float64 {
	if loanAmount <= 0 || math.IsNaN(loanAmount) {
		return 0
	}
	return loans.CalculateMonthlyPayment(loanAmount, 0, policy.AnnualRate, policy.TermMonths)
}

var amortization = loans.NewAmortizationScheduleGenerator(nil)

// LoanCost amortizes loanAmount over the policy term at the policy rate plus
// rateAdjustment. Programs that raise the first-mortgage rate pass their
// combined adjustment.
func LoanCost(policy Policy, loanAmount, rateAdjustment float64) (loans.Summary, error) {
	return amortization.Summarize(loanAmount, policy.AnnualRate+rateAdjustment, policy.TermMonths)
}

// MonthlyTax is the monthly property tax estimate on price.
func MonthlyTax(policy Policy, price float64) float64 {
	return mathutil.NonNegative(price) * policy.AnnualTaxRate / constants.MonthsPerYear
}

// MonthlyPayment is the all-in monthly cost of owning a home at price with
// loanAmount financed: principal and interest, property tax and insurance.
func MonthlyPayment(policy Policy, price, loanAmount float64) float64 {
	return PrincipalAndInterest(policy, loanAmount) + MonthlyTax(policy, price) + policy.MonthlyInsurance
}

// Rounded returns the result in whole currency units.
func (r Result) Rounded() Report {
	return Report{
		MaxPrice:       mathutil.RoundWhole(r.MaxPrice),
		MonthlyPayment: mathutil.RoundWhole(r.MonthlyPayment),
		RequiredDown:   mathutil.RoundWhole(r.RequiredDown),
		Savings:        mathutil.RoundWhole(r.Savings),
		SavingsGap:     mathutil.RoundWhole(r.SavingsGap),
	}
}
