package profile

import "strconv"

// Option is a selectable form value and its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MaxHouseholdSize is the largest household size offered; it stands for
// "this many or more".
const MaxHouseholdSize = 8

var occupationOptions = []Option{
	{Value: "", Label: "None of the below"},
	{Value: "teacher", Label: "Teacher / Educator"},
	{Value: "first-responder", Label: "First Responder (Fire, Police, EMS)"},
	{Value: "healthcare", Label: "Healthcare Worker"},
	{Value: "nonprofit", Label: "Nonprofit Employee"},
	{Value: "farmer", Label: "Farmer / Rancher"},
}

var creditLabels = map[CreditBracket]string{
	CreditBelow620: "Below 620",
	Credit620To659: "620-659",
	Credit660To699: "660-699",
	Credit700To739: "700-739",
	Credit740Plus:  "740+",
}

// OccupationOptions returns the occupation tags a buyer can choose from.
func OccupationOptions() []Option {
	return append([]Option(nil), occupationOptions...)
}

// CreditOptions returns the credit brackets from lowest to highest.
func CreditOptions() []Option {
	options := make([]Option, 0, len(creditLabels))
	for _, bracket := range CreditBrackets() {
		options = append(options, Option{Value: string(bracket), Label: creditLabels[bracket]})
	}
	return options
}

// HouseholdSizeOptions returns sizes 1 through MaxHouseholdSize.
func HouseholdSizeOptions() []Option {
	options := make([]Option, 0, MaxHouseholdSize)
	for n := 1; n <= MaxHouseholdSize; n++ {
		label := strconv.Itoa(n) + " people"
		switch n {
		case 1:
			label = "1 person"
		case MaxHouseholdSize:
			label = strconv.Itoa(n) + "+ people"
		}
		options = append(options, Option{Value: strconv.Itoa(n), Label: label})
	}
	return options
}
