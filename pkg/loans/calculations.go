// Package loans provides common loan processing utilities.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/dpa-navigator/pkg/constants"
	"github.com/iwvelando/dpa-navigator/pkg/mathutil"
	"go.uber.org/zap"
)

// Payment holds the values for a given payment.
type Payment struct {
	Period             int
	Payment            float64
	Principal          float64
	Interest           float64
	RemainingPrincipal float64
}

// Summary aggregates an amortization schedule.
type Summary struct {
	LoanAmount     float64
	MonthlyPayment float64
	TotalPaid      float64
	TotalInterest  float64
	Periods        int
}

// CalculateMonthlyPayment calculates the monthly principal and interest
// payment for a loan using the standard amortization formula. The annual rate
// is a fraction (0.0675 for 6.75%). A non-positive financed amount or term
// yields a zero payment.
func CalculateMonthlyPayment(principal, downPayment, annualRate float64, termMonths int) float64 {
	loanAmount := principal - downPayment
	if loanAmount <= 0 || termMonths <= 0 || math.IsNaN(loanAmount) {
		return 0
	}

	if annualRate == 0 {
		// For zero interest, simply divide the principal by term
		return loanAmount / float64(termMonths)
	}

	periodicRate := annualRate / constants.MonthsPerYear
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	return loanAmount * periodicRate * power / (power - 1.00)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualRate float64) float64 {
	return remainingPrincipal * annualRate / constants.MonthsPerYear
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// GenerateSchedule creates a complete amortization schedule for a fixed-rate loan.
func (g *AmortizationScheduleGenerator) GenerateSchedule(loanAmount, annualRate float64, termMonths int) ([]Payment, error) {
	if termMonths < 0 {
		return nil, fmt.Errorf("invalid term of %d months", termMonths)
	}
	if math.IsNaN(annualRate) || math.IsInf(annualRate, 0) || annualRate < 0 {
		return nil, fmt.Errorf("invalid annual rate %v", annualRate)
	}
	if loanAmount <= 0 || termMonths == 0 {
		g.logger.Debug("nothing financed, returning empty schedule",
			zap.String("op", "loans.GenerateSchedule"),
			zap.Float64("loanAmount", loanAmount),
		)
		return nil, nil
	}

	monthlyPayment := CalculateMonthlyPayment(loanAmount, 0, annualRate, termMonths)
	schedule := make([]Payment, 0, termMonths)
	remaining := loanAmount

	for period := 1; period <= termMonths; period++ {
		var current Payment
		current.Period = period
		current.Interest = CalculateInterestPayment(remaining, annualRate)
		current.Principal = monthlyPayment - current.Interest
		current.Payment = monthlyPayment

		if period == termMonths || mathutil.Round(remaining-current.Principal) <= 0 {
			// We will get machine error otherwise so just settle the balance.
			current.Principal = remaining
			current.Payment = remaining + current.Interest
			current.RemainingPrincipal = 0.00
			schedule = append(schedule, current)
			break
		}

		remaining -= current.Principal
		current.RemainingPrincipal = remaining
		schedule = append(schedule, current)
	}

	g.logger.Debug(fmt.Sprintf("generated %d payment amortization schedule for %.2f", len(schedule), loanAmount),
		zap.String("op", "loans.GenerateSchedule"),
	)
	return schedule, nil
}

// Summarize derives the lifetime totals of a loan from its amortization schedule.
func (g *AmortizationScheduleGenerator) Summarize(loanAmount, annualRate float64, termMonths int) (Summary, error) {
	schedule, err := g.GenerateSchedule(loanAmount, annualRate, termMonths)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		LoanAmount: mathutil.NonNegative(loanAmount),
		Periods:    len(schedule),
	}
	if len(schedule) == 0 {
		return summary, nil
	}

	summary.MonthlyPayment = schedule[0].Payment
	for _, payment := range schedule {
		summary.TotalPaid += payment.Payment
		summary.TotalInterest += payment.Interest
	}
	return summary, nil
}
