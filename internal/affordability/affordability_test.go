package affordability

import (
	"math"
	"testing"
)

func TestComputeReferenceBuyer(t *testing.T) {
	got := Compute(DefaultPolicy(), 85000, 10000)

	if got.MaxPrice != 382500 {
		t.Errorf("MaxPrice = %v, expected 382500", got.MaxPrice)
	}
	if got.RequiredDown != 13387.5 {
		t.Errorf("RequiredDown = %v, expected 13387.5", got.RequiredDown)
	}
	if math.Abs(got.LoanAmount-369112.5) > 1e-6 {
		t.Errorf("LoanAmount = %v, expected 369112.5", got.LoanAmount)
	}
	if math.Abs(got.MonthlyPrincipalInterest-2394.06) > 0.01 {
		t.Errorf("MonthlyPrincipalInterest = %v, expected ~2394.06", got.MonthlyPrincipalInterest)
	}
	if math.Abs(got.MonthlyPayment-2767.18) > 0.01 {
		t.Errorf("MonthlyPayment = %v, expected ~2767.18", got.MonthlyPayment)
	}
	if math.Abs(got.SavingsGap-3387.5) > 1e-9 {
		t.Errorf("SavingsGap = %v, expected 3387.5", got.SavingsGap)
	}

	report := got.Rounded()
	expected := Report{MaxPrice: 382500, MonthlyPayment: 2767, RequiredDown: 13388, Savings: 10000, SavingsGap: 3388}
	if report != expected {
		t.Errorf("Rounded() = %+v, expected %+v", report, expected)
	}
}

func TestComputeCapsPrice(t *testing.T) {
	got := Compute(DefaultPolicy(), 250000, 0)
	if got.MaxPrice != 600000 {
		t.Errorf("MaxPrice = %v, expected the 600000 cap", got.MaxPrice)
	}
	if got.RequiredDown != 21000 {
		t.Errorf("RequiredDown = %v, expected 21000", got.RequiredDown)
	}
}

func TestComputeDegenerateInputs(t *testing.T) {
	tests := []struct {
		name    string
		income  int
		savings int
	}{
		{"zero income", 0, 0},
		{"negative income", -50000, 0},
		{"negative savings", 0, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(DefaultPolicy(), tt.income, tt.savings)
			if got.MaxPrice != 0 || got.MonthlyPrincipalInterest != 0 || got.RequiredDown != 0 || got.Savings != 0 {
				t.Errorf("expected zero baseline, got %+v", got)
			}
			if got.MonthlyPayment != DefaultPolicy().MonthlyInsurance {
				t.Errorf("MonthlyPayment = %v, expected insurance only", got.MonthlyPayment)
			}
		})
	}
}

func TestComputeUsesPolicy(t *testing.T) {
	policy := DefaultPolicy()
	policy.IncomeMultiplier = 3
	policy.PriceCap = 1000000
	policy.AnnualRate = 0
	policy.AnnualTaxRate = 0
	policy.MonthlyInsurance = 0
	policy.MinDownFraction = 0.2

	got := Compute(policy, 100000, 0)
	if got.MaxPrice != 300000 {
		t.Errorf("MaxPrice = %v, expected 300000", got.MaxPrice)
	}
	// 240000 financed over 360 months at zero interest
	if math.Abs(got.MonthlyPayment-666.6667) > 0.001 {
		t.Errorf("MonthlyPayment = %v, expected ~666.67", got.MonthlyPayment)
	}
}

func TestMonthlyPayment(t *testing.T) {
	policy := DefaultPolicy()
	withLoan := MonthlyPayment(policy, 382500, 353375)
	if math.Abs(withLoan-2665.11) > 0.01 {
		t.Errorf("MonthlyPayment() = %v, expected ~2665.11", withLoan)
	}

	noLoan := MonthlyPayment(policy, 382500, -100)
	expected := 382500*0.007/12 + 150
	if math.Abs(noLoan-expected) > 1e-9 {
		t.Errorf("MonthlyPayment() with no loan = %v, expected %v", noLoan, expected)
	}
}

func TestPolicyValidate(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("default policy invalid: %v", err)
	}

	tests := map[string]func(*Policy){
		"multiplier": func(p *Policy) { p.IncomeMultiplier = 0 },
		"cap":        func(p *Policy) { p.PriceCap = -1 },
		"rate":       func(p *Policy) { p.AnnualRate = 6.75 },
		"term":       func(p *Policy) { p.TermMonths = 0 },
		"down":       func(p *Policy) { p.MinDownFraction = 1 },
		"tax":        func(p *Policy) { p.AnnualTaxRate = math.NaN() },
		"insurance":  func(p *Policy) { p.MonthlyInsurance = -5 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			policy := DefaultPolicy()
			mutate(&policy)
			if err := policy.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoanCost(t *testing.T) {
	policy := DefaultPolicy()

	base, err := LoanCost(policy, 300000, 0)
	if err != nil {
		t.Fatalf("LoanCost() error = %v", err)
	}
	if math.Abs(base.MonthlyPayment-PrincipalAndInterest(policy, 300000)) > 0.01 {
		t.Errorf("MonthlyPayment = %.2f, expected %.2f", base.MonthlyPayment, PrincipalAndInterest(policy, 300000))
	}
	if base.Periods != policy.TermMonths {
		t.Errorf("Periods = %d, expected %d", base.Periods, policy.TermMonths)
	}

	adjusted, err := LoanCost(policy, 300000, 0.004)
	if err != nil {
		t.Fatalf("LoanCost() error = %v", err)
	}
	if adjusted.TotalInterest <= base.TotalInterest {
		t.Errorf("a rate adjustment should raise interest: %.2f <= %.2f", adjusted.TotalInterest, base.TotalInterest)
	}

	if _, err := LoanCost(policy, 300000, -1); err == nil {
		t.Error("expected an error for a negative effective rate")
	}
}
