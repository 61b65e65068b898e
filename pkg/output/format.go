// Package output provides utilities for formatting and displaying recommendations.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/dpa-navigator/internal/navigator"
	"github.com/iwvelando/dpa-navigator/pkg/constants"
	"github.com/iwvelando/dpa-navigator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, rec navigator.Recommendation) {
	p := message.NewPrinter(language.English)
	baseline := rec.Baseline.Rounded()

	fmt.Fprintf(w, "--- Credit readiness ---\n")
	if rec.Credit.ApprovalRate > 0 {
		fmt.Fprintf(w, "%s: %s (approx. %d%% approval)\n", rec.Credit.Status, rec.Credit.Message, rec.Credit.ApprovalRate)
	} else {
		fmt.Fprintf(w, "%s: %s\n", rec.Credit.Status, rec.Credit.Message)
	}

	fmt.Fprintf(w, "\n--- Affordability ---\n")
	_, _ = p.Fprintf(w, "Maximum home price | $%d\n", baseline.MaxPrice)
	_, _ = p.Fprintf(w, "Monthly payment    | $%d\n", baseline.MonthlyPayment)
	_, _ = p.Fprintf(w, "Required down      | $%d\n", baseline.RequiredDown)
	_, _ = p.Fprintf(w, "Savings gap        | $%d\n", baseline.SavingsGap)

	if !rec.Complete {
		fmt.Fprintf(w, "\nEnter your county, income and credit score to see matching programs.\n")
		return
	}

	fmt.Fprintf(w, "\n--- Eligible programs (%d) ---\n", len(rec.Eligible))
	if len(rec.Eligible) == 0 {
		fmt.Fprintf(w, "No assistance programs match this profile.\n")
	}
	for _, program := range rec.Eligible {
		amount := mathutil.RoundWhole(program.CalcAmount(rec.Baseline.MaxPrice))
		_, _ = p.Fprintf(w, "%s | $%d | %s\n", program.Name, amount, program.Description)
	}

	if len(rec.AffordableHousing) > 0 {
		fmt.Fprintf(w, "\n--- Affordable housing options (%d) ---\n", len(rec.AffordableHousing))
		for _, program := range rec.AffordableHousing {
			fmt.Fprintf(w, "%s | %s\n", program.Name, program.AmountLabel)
		}
	}

	fmt.Fprintf(w, "\n--- Recommended packages ---\n")
	if len(rec.Packages) == 0 {
		fmt.Fprintf(w, "No program combinations are available.\n")
	}
	for i, pkg := range rec.Packages {
		report := pkg.Rounded()
		names := make([]string, 0, len(report.Programs))
		for _, m := range report.Programs {
			names = append(names, m.Name)
		}
		_, _ = p.Fprintf(w, "%d. %s\n", i+1, strings.Join(names, " + "))
		_, _ = p.Fprintf(w, "   Assistance $%d | Monthly $%d | You pay down $%d | ~%d weeks\n",
			report.TotalAssistance, report.MonthlyPayment, report.YourDownPayment, report.ProcessingWeeks)
		_, _ = p.Fprintf(w, "   Rate %.2f%% | Interest over the loan term $%d\n",
			report.EffectiveRate*constants.PercentageMultiplier, report.LifetimeInterest)
	}
	if rec.Truncated {
		fmt.Fprintf(w, "(more combinations exist than were evaluated)\n")
	}

	if rec.LenderMatch != nil {
		fmt.Fprintf(w, "\n--- Lenders for your selection ---\n")
		if len(rec.LenderMatch.Lenders) == 0 {
			fmt.Fprintf(w, "No single lender offers every selected program; you may need multiple lenders.\n")
		}
		for _, lender := range rec.LenderMatch.Lenders {
			fmt.Fprintf(w, "%s | %.1f | %d days | %s\n", lender.Name, lender.Rating, lender.AvgProcessingDays, lender.Phone)
		}
	}

	if len(rec.Realtors) > 0 {
		fmt.Fprintf(w, "\n--- Realtors ---\n")
		for _, realtor := range rec.Realtors {
			fmt.Fprintf(w, "%s | %s | %.1f | %s\n", realtor.Name, realtor.Company, realtor.Rating, realtor.Phone)
		}
	}
}

// CsvFormat writes one row per ranked package in comma-separated value format.
func CsvFormat(w io.Writer, rec navigator.Recommendation) error {
	writer := csv.NewWriter(w)
	header := []string{"rank", "programs", "total assistance", "monthly payment", "your down payment", "estimated price", "processing weeks", "effective rate", "lifetime interest"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, pkg := range rec.Packages {
		report := pkg.Rounded()
		row := []string{
			strconv.Itoa(i + 1),
			strings.Join(pkg.IDs(), "+"),
			strconv.Itoa(report.TotalAssistance),
			strconv.Itoa(report.MonthlyPayment),
			strconv.Itoa(report.YourDownPayment),
			strconv.Itoa(report.EstimatedPrice),
			strconv.Itoa(report.ProcessingWeeks),
			strconv.FormatFloat(report.EffectiveRate, 'f', 4, 64),
			strconv.Itoa(report.LifetimeInterest),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// CsvString returns the CSV report as a string.
func CsvString(rec navigator.Recommendation) string {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, rec); err != nil {
		return ""
	}
	return buf.String()
}

// JSONFormat writes the recommendation as indented JSON.
func JSONFormat(w io.Writer, rec navigator.Recommendation) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rec)
}
