package profile

import (
	"strconv"
	"strings"
)

// Update is a partial profile: nil fields are left unchanged.
type Update struct {
	County           *string
	Income           *int
	HouseholdSize    *int
	FirstTimeBuyer   *bool
	Savings          *int
	Credit           *CreditBracket
	Occupation       *string
	Veteran          *bool
	SelectedPrograms *[]string
	Path             *Path
	PurchasePrice    *int
}

// Empty reports whether the update changes nothing.
func (u Update) Empty() bool {
	return u == Update{}
}

// Apply returns p with u applied. Neither argument is modified.
func Apply(p Profile, u Update) Profile {
	next := p.Clone()

	if u.County != nil {
		next.County = *u.County
	}
	if u.Income != nil {
		next.Income = *u.Income
	}
	if u.HouseholdSize != nil {
		next.HouseholdSize = *u.HouseholdSize
	}
	if u.FirstTimeBuyer != nil {
		next.FirstTimeBuyer = *u.FirstTimeBuyer
	}
	if u.Savings != nil {
		next.Savings = *u.Savings
	}
	if u.Credit != nil {
		next.Credit = *u.Credit
	}
	if u.Occupation != nil {
		next.Occupation = *u.Occupation
	}
	if u.Veteran != nil {
		next.Veteran = *u.Veteran
	}
	if u.SelectedPrograms != nil {
		next.SelectedPrograms = append([]string{}, (*u.SelectedPrograms)...)
	}
	if u.Path != nil {
		next.Path = *u.Path
	}
	if u.PurchasePrice != nil {
		next.PurchasePrice = *u.PurchasePrice
	}

	return next.Normalize()
}

// Form field names accepted by FromForm.
const (
	FieldCounty           = "county"
	FieldLocation         = "location"
	FieldIncome           = "income"
	FieldHouseholdSize    = "householdSize"
	FieldFirstTimeBuyer   = "firstTimeBuyer"
	FieldSavings          = "savings"
	FieldDownPaymentSaved = "downPaymentSaved"
	FieldCreditScore      = "creditScore"
	FieldOccupation       = "occupation"
	FieldVeteranStatus    = "veteranStatus"
	FieldSelectedPrograms = "selectedPrograms"
	FieldSelectedPath     = "selectedPath"
	FieldPurchasePrice    = "purchasePrice"
)

// formFields is the order FromForm reads keys in. Each alias precedes its
// canonical key so the canonical value wins when both are present.
var formFields = []string{
	FieldLocation,
	FieldCounty,
	FieldIncome,
	FieldHouseholdSize,
	FieldFirstTimeBuyer,
	FieldDownPaymentSaved,
	FieldSavings,
	FieldCreditScore,
	FieldOccupation,
	FieldVeteranStatus,
	FieldSelectedPrograms,
	FieldSelectedPath,
	FieldPurchasePrice,
}

// FromForm converts raw form values into an Update. Only present keys are
// set. Numeric fields are coerced with ParseAmount, booleans that do not
// parse are false and an unknown credit bracket clears the bracket. When a
// field arrives under both its name and its alias, the name wins.
func FromForm(values map[string]string) Update {
	var u Update

	for _, key := range formFields {
		raw, ok := values[key]
		if !ok {
			continue
		}
		value := strings.TrimSpace(raw)
		switch key {
		case FieldCounty, FieldLocation:
			u.County = &value
		case FieldIncome:
			u.Income = intPtr(ParseAmount(value))
		case FieldHouseholdSize:
			u.HouseholdSize = intPtr(ParseAmount(value))
		case FieldFirstTimeBuyer:
			u.FirstTimeBuyer = boolPtr(parseBool(value))
		case FieldSavings, FieldDownPaymentSaved:
			u.Savings = intPtr(ParseAmount(value))
		case FieldCreditScore:
			bracket, _ := ParseCreditBracket(value)
			u.Credit = &bracket
		case FieldOccupation:
			u.Occupation = &value
		case FieldVeteranStatus:
			u.Veteran = boolPtr(parseBool(value))
		case FieldSelectedPrograms:
			ids := splitIDs(value)
			u.SelectedPrograms = &ids
		case FieldSelectedPath:
			u.Path = pathPtr(parsePath(value))
		case FieldPurchasePrice:
			u.PurchasePrice = intPtr(ParseAmount(value))
		}
	}

	return u
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func parsePath(s string) Path {
	switch Path(strings.ToLower(s)) {
	case PathDPA:
		return PathDPA
	case PathAffordable:
		return PathAffordable
	}
	return PathUndecided
}

func splitIDs(s string) []string {
	ids := []string{}
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func pathPtr(v Path) *Path {
	return &v
}
