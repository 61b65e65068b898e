// Package packages evaluates candidate program combinations against the
// affordability baseline and ranks them by total assistance.
package packages

import (
	"runtime"
	"sort"
	"sync"

	"github.com/iwvelando/dpa-navigator/internal/affordability"
	"github.com/iwvelando/dpa-navigator/internal/catalog"
	"github.com/iwvelando/dpa-navigator/pkg/constants"
	"github.com/iwvelando/dpa-navigator/pkg/mathutil"
)

// parallelThreshold is the candidate count above which Build evaluates
// packages on GOMAXPROCS workers.
const parallelThreshold = 32

// Member is one program's contribution to a package.
type Member struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Amount             float64 `json:"amount"`
	IsGrant            bool    `json:"isGrant"`
	IsDeferred         bool    `json:"isDeferred"`
	YearsToForgiveness *int    `json:"yearsToForgiveness"`
	RateAdjustment     float64 `json:"rateAdjustment"`
	ProcessingWeeks    int     `json:"processingWeeks"`
}

// Package is an evaluated set of stacked programs.
type Package struct {
	Programs         []Member `json:"programs"`
	TotalAssistance  float64  `json:"totalAssistance"`
	MonthlyPayment   float64  `json:"monthlyPayment"`
	YourDownPayment  float64  `json:"yourDownPayment"`
	EstimatedPrice   float64  `json:"estimatedPrice"`
	EffectiveRate    float64  `json:"effectiveRate"` // first-mortgage rate after member adjustments
	LifetimeInterest float64  `json:"lifetimeInterest"`
	ProcessingWeeks  int      `json:"processingWeeks"` // slowest member
}

// IDs returns the member program ids in package order.
func (p Package) IDs() []string {
	ids := make([]string, 0, len(p.Programs))
	for _, m := range p.Programs {
		ids = append(ids, m.ID)
	}
	return ids
}

// GrantTotal is the portion of the assistance that never has to be repaid.
func (p Package) GrantTotal() float64 {
	var total float64
	for _, m := range p.Programs {
		if m.IsGrant {
			total += m.Amount
		}
	}
	return total
}

// ReportMember is a Member rounded for reporting.
type ReportMember struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Amount             int    `json:"amount"`
	IsGrant            bool   `json:"isGrant"`
	IsDeferred         bool   `json:"isDeferred"`
	YearsToForgiveness *int   `json:"yearsToForgiveness"`
	ProcessingWeeks    int    `json:"processingWeeks"`
}

// Report is a Package rounded to whole currency units.
type Report struct {
	Programs         []ReportMember `json:"programs"`
	TotalAssistance  int            `json:"totalAssistance"`
	MonthlyPayment   int            `json:"monthlyPayment"`
	YourDownPayment  int            `json:"yourDownPayment"`
	EstimatedPrice   int            `json:"estimatedPrice"`
	EffectiveRate    float64        `json:"effectiveRate"`
	LifetimeInterest int            `json:"lifetimeInterest"`
	ProcessingWeeks  int            `json:"processingWeeks"`
}

// Rounded returns the package in whole currency units.
func (p Package) Rounded() Report {
	members := make([]ReportMember, 0, len(p.Programs))
	for _, m := range p.Programs {
		members = append(members, ReportMember{
			ID:                 m.ID,
			Name:               m.Name,
			Amount:             mathutil.RoundWhole(m.Amount),
			IsGrant:            m.IsGrant,
			IsDeferred:         m.IsDeferred,
			YearsToForgiveness: m.YearsToForgiveness,
			ProcessingWeeks:    m.ProcessingWeeks,
		})
	}
	return Report{
		Programs:         members,
		TotalAssistance:  mathutil.RoundWhole(p.TotalAssistance),
		MonthlyPayment:   mathutil.RoundWhole(p.MonthlyPayment),
		YourDownPayment:  mathutil.RoundWhole(p.YourDownPayment),
		EstimatedPrice:   mathutil.RoundWhole(p.EstimatedPrice),
		EffectiveRate:    p.EffectiveRate,
		LifetimeInterest: mathutil.RoundWhole(p.LifetimeInterest),
		ProcessingWeeks:  p.ProcessingWeeks,
	}
}

// Evaluate prices the program set ids at the baseline's maximum price.
// Ids missing from cat are skipped. Savings and assistance both reduce the
// financed principal; the out-of-pocket down payment never goes negative.
func Evaluate(ids []string, cat *catalog.Catalog, baseline affordability.Result, savings int, policy affordability.Policy) Package {
	price := baseline.MaxPrice
	pkg := Package{
		Programs:       []Member{},
		EstimatedPrice: price,
		EffectiveRate:  policy.AnnualRate,
	}

	for _, id := range ids {
		if cat == nil {
			break
		}
		program, ok := cat.Lookup(id)
		if !ok {
			continue
		}
		amount := program.CalcAmount(price)
		pkg.Programs = append(pkg.Programs, Member{
			ID:                 program.ID,
			Name:               program.Name,
			Amount:             amount,
			IsGrant:            program.IsGrant,
			IsDeferred:         program.IsDeferred,
			YearsToForgiveness: program.YearsToForgiveness,
			RateAdjustment:     program.RateAdjustment,
			ProcessingWeeks:    program.ProcessingWeeks,
		})
		pkg.TotalAssistance += amount
		pkg.EffectiveRate += program.RateAdjustment
		if program.ProcessingWeeks > pkg.ProcessingWeeks {
			pkg.ProcessingWeeks = program.ProcessingWeeks
		}
	}

	cash := mathutil.NonNegative(float64(savings))
	loanAmount := mathutil.NonNegative(price - cash - pkg.TotalAssistance)
	pkg.MonthlyPayment = affordability.MonthlyPayment(policy, price, loanAmount)
	pkg.YourDownPayment = mathutil.NonNegative(price*policy.MinDownFraction - pkg.TotalAssistance - cash)
	if cost, err := affordability.LoanCost(policy, loanAmount, pkg.EffectiveRate-policy.AnnualRate); err == nil {
		pkg.LifetimeInterest = cost.TotalInterest
	}
	return pkg
}

// Build evaluates every combination and returns the top k by total
// assistance. Combinations with no program in cat are dropped. A
// non-positive k uses the default.
func Build(combos [][]string, cat *catalog.Catalog, baseline affordability.Result, savings int, policy affordability.Policy, k int) []Package {
	evaluated := make([]Package, len(combos))

	workers := runtime.GOMAXPROCS(0)
	if len(combos) <= parallelThreshold || workers < 2 {
		for i, ids := range combos {
			evaluated[i] = Evaluate(ids, cat, baseline, savings, policy)
		}
		return Rank(nonEmpty(evaluated), k)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				evaluated[i] = Evaluate(combos[i], cat, baseline, savings, policy)
			}
		}()
	}
	for i := range combos {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return Rank(nonEmpty(evaluated), k)
}

func nonEmpty(pkgs []Package) []Package {
	kept := pkgs[:0]
	for _, pkg := range pkgs {
		if len(pkg.Programs) > 0 {
			kept = append(kept, pkg)
		}
	}
	return kept
}

// Rank orders packages by descending total assistance, keeping the input
// order among equal totals, and truncates to k. The input is not modified.
func Rank(pkgs []Package, k int) []Package {
	if k <= 0 {
		k = constants.DefaultTopPackages
	}

	ranked := make([]Package, len(pkgs))
	copy(ranked, pkgs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalAssistance > ranked[j].TotalAssistance
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
