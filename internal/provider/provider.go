// Package provider matches lenders and realtors to a buyer's selections.
package provider

import (
	"sort"
	"strings"

	"github.com/iwvelando/dpa-navigator/internal/directory"
	"github.com/iwvelando/dpa-navigator/pkg/constants"
)

// MatchKind summarizes how many lenders can originate a whole package.
type MatchKind string

const (
	MatchNone     MatchKind = "none"
	MatchSingle   MatchKind = "single"
	MatchMultiple MatchKind = "multiple"
)

// LenderMatch is the buyer-facing lender recommendation for a package.
type LenderMatch struct {
	Kind    MatchKind          `json:"type"`
	Lenders []directory.Lender `json:"lenders"`
}

// MatchLenders returns the lenders that originate every program in ids,
// best rated first and faster processing breaking ties. With no ids every
// lender is returned in the same order.
func MatchLenders(lenders []directory.Lender, ids []string) []directory.Lender {
	matched := []directory.Lender{}
	for _, lender := range lenders {
		if lender.SupportsAll(ids) {
			matched = append(matched, lender)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Rating != matched[j].Rating {
			return matched[i].Rating > matched[j].Rating
		}
		return matched[i].AvgProcessingDays < matched[j].AvgProcessingDays
	})
	return matched
}

// MatchRealtors returns the realtors serving county, best rated first. An
// empty county returns every realtor.
func MatchRealtors(realtors []directory.Realtor, county string) []directory.Realtor {
	county = strings.TrimSpace(county)
	matched := []directory.Realtor{}
	for _, realtor := range realtors {
		if county == "" || realtor.Serves(county) {
			matched = append(matched, realtor)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})
	return matched
}

// Summarize classifies an already matched and sorted lender list. Three or
// more lenders yield a shortlist; one or two yield the single best lender.
func Summarize(matched []directory.Lender) LenderMatch {
	switch {
	case len(matched) == 0:
		return LenderMatch{Kind: MatchNone, Lenders: []directory.Lender{}}
	case len(matched) >= constants.DefaultLenderShortlist:
		return LenderMatch{
			Kind:    MatchMultiple,
			Lenders: append([]directory.Lender(nil), matched[:constants.DefaultLenderShortlist]...),
		}
	default:
		return LenderMatch{Kind: MatchSingle, Lenders: []directory.Lender{matched[0]}}
	}
}

// SearchLenders keeps the lenders whose name contains term, ignoring case.
func SearchLenders(lenders []directory.Lender, term string) []directory.Lender {
	term = strings.ToLower(strings.TrimSpace(term))
	found := []directory.Lender{}
	for _, lender := range lenders {
		if strings.Contains(strings.ToLower(lender.Name), term) {
			found = append(found, lender)
		}
	}
	return found
}
