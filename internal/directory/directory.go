// Package directory holds the static lender and realtor directories.
package directory

import "github.com/iwvelando/dpa-navigator/pkg/constants"

// Lender is a mortgage originator and the assistance programs it can originate.
type Lender struct {
	ID                string   `yaml:"id" json:"id"`
	Name              string   `yaml:"name" json:"name"`
	Type              string   `yaml:"type" json:"type"`
	Programs          []string `yaml:"programs" json:"programs"`
	Specialties       []string `yaml:"specialties,omitempty" json:"specialties,omitempty"`
	Rating            float64  `yaml:"rating" json:"rating"`
	DPALoansYTD       int      `yaml:"dpaLoansYTD" json:"dpaLoansYTD"`
	AvgProcessingDays int      `yaml:"avgDays" json:"avgDays"`
	Phone             string   `yaml:"phone,omitempty" json:"phone,omitempty"`
	Website           string   `yaml:"website,omitempty" json:"website,omitempty"`
	Counties          []string `yaml:"counties" json:"counties"`
	Notes             string   `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Supports reports whether the lender originates program id.
func (l Lender) Supports(id string) bool {
	for _, p := range l.Programs {
		if p == id {
			return true
		}
	}
	return false
}

// SupportsAll reports whether the lender originates every program in ids.
func (l Lender) SupportsAll(ids []string) bool {
	for _, id := range ids {
		if !l.Supports(id) {
			return false
		}
	}
	return true
}

// Serves reports whether the lender works in county.
func (l Lender) Serves(county string) bool {
	return servesCounty(l.Counties, county)
}

// Realtor is a buyer's agent.
type Realtor struct {
	ID              string   `yaml:"id" json:"id"`
	Name            string   `yaml:"name" json:"name"`
	Company         string   `yaml:"company" json:"company"`
	Phone           string   `yaml:"phone,omitempty" json:"phone,omitempty"`
	Email           string   `yaml:"email,omitempty" json:"email,omitempty"`
	Specialties     []string `yaml:"specialties,omitempty" json:"specialties,omitempty"`
	Counties        []string `yaml:"counties" json:"counties"`
	Rating          float64  `yaml:"rating" json:"rating"`
	DPATransactions int      `yaml:"dpaTransactions" json:"dpaTransactions"`
	Languages       []string `yaml:"languages,omitempty" json:"languages,omitempty"`
}

// Serves reports whether the realtor works in county.
func (r Realtor) Serves(county string) bool {
	return servesCounty(r.Counties, county)
}

func servesCounty(counties []string, county string) bool {
	for _, c := range counties {
		if c == constants.AllCounties || c == county {
			return true
		}
	}
	return false
}
