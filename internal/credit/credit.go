// Package credit maps a self-reported credit bracket to a readiness
// assessment for assistance programs.
package credit

import "github.com/iwvelando/dpa-navigator/internal/profile"

// Status is the readiness classification.
type Status string

const (
	StatusUnknown     Status = "unknown"
	StatusNotReady    Status = "not-ready"
	StatusChallenging Status = "challenging"
	StatusGood        Status = "good"
	StatusVeryGood    Status = "very-good"
	StatusExcellent   Status = "excellent"
)

// Severity is the display hint for a status.
type Severity string

const (
	SeverityNone   Severity = ""
	SeverityRed    Severity = "red"
	SeverityAmber  Severity = "amber"
	SeverityYellow Severity = "yellow"
	SeverityGreen  Severity = "green"
)

// Assessment is the readiness result for one bracket. ApprovalRate is an
// approximate percentage and is zero when the bracket is unknown.
type Assessment struct {
	Status       Status   `json:"status"`
	Message      string   `json:"message"`
	ApprovalRate int      `json:"approvalRate,omitempty"`
	Severity     Severity `json:"severity,omitempty"`
}

// MissingMessage is returned for an empty or unrecognized bracket.
const MissingMessage = "Please enter your credit score"

var table = map[profile.CreditBracket]Assessment{
	profile.CreditBelow620: {
		Status:       StatusNotReady,
		Message:      "Most DPA programs require 620+ credit score",
		ApprovalRate: 15,
		Severity:     SeverityRed,
	},
	profile.Credit620To659: {
		Status:       StatusChallenging,
		Message:      "You meet minimum requirements but may face higher rates",
		ApprovalRate: 45,
		Severity:     SeverityAmber,
	},
	profile.Credit660To699: {
		Status:       StatusGood,
		Message:      "Good credit - eligible for most programs",
		ApprovalRate: 70,
		Severity:     SeverityYellow,
	},
	profile.Credit700To739: {
		Status:       StatusVeryGood,
		Message:      "Very good credit - best rates available",
		ApprovalRate: 85,
		Severity:     SeverityGreen,
	},
	profile.Credit740Plus: {
		Status:       StatusExcellent,
		Message:      "Excellent credit - premium rates and easy approval",
		ApprovalRate: 95,
		Severity:     SeverityGreen,
	},
}

// Assess returns the readiness assessment for bracket.
func Assess(bracket profile.CreditBracket) Assessment {
	if a, ok := table[bracket]; ok {
		return a
	}
	return Assessment{Status: StatusUnknown, Message: MissingMessage}
}

// Ready reports whether the bracket meets the common 620 program minimum.
func (a Assessment) Ready() bool {
	switch a.Status {
	case StatusChallenging, StatusGood, StatusVeryGood, StatusExcellent:
		return true
	}
	return false
}
