package catalog

import "github.com/iwvelando/dpa-navigator/pkg/constants"

// Program ids referenced by the default conflict relation and tests.
const (
	CHFAGrant          = "chfa-grant"
	CHFASecond         = "chfa-second"
	MetroDPA           = "metro-dpa"
	CHACLoan           = "chac-loan"
	IDFBoulder         = "idf-boulder"
	BoulderH2O         = "boulder-h2o"
	VALoan             = "va-loan"
	USDARural          = "usda-rural"
	ElevationCLT       = "elevation-clt"
	HabitatHumanity    = "habitat-humanity"
	DenverSharedEquity = "denver-shared-equity"
	TeacherNextDoor    = "teacher-next-door"
	HomesForHeroes     = "homes-for-heroes"
	HealthcareHeroes   = "healthcare-heroes"
)

var metroCounties = []string{"Denver", "Adams", "Arapahoe", "Jefferson", "Douglas", "Broomfield"}

func years(n int) *int {
	return &n
}

// DefaultConflicts are the first-lien-position products that cannot stack.
func DefaultConflicts() []Pair {
	return []Pair{
		{CHFAGrant, CHFASecond},
		{CHFAGrant, MetroDPA},
		{CHFASecond, MetroDPA},
	}
}

// Default returns the built-in Colorado catalog.
func Default() *Catalog {
	return MustNew(DefaultPrograms(), DefaultConflicts())
}

// DefaultPrograms returns the built-in Colorado program definitions in
// presentation order.
func DefaultPrograms() []Program {
	all := []string{constants.AllCounties}

	return []Program{
		{
			ID:                 CHFAGrant,
			Name:               "CHFA Down Payment Grant",
			AmountLabel:        "Up to $25,000 (3% of loan)",
			Description:        "Grant (no repayment) paired with CHFA first mortgage",
			Requirements:       []string{constants.FirstTimeBuyerRequirement, "CHFA mortgage", "Income limits apply"},
			Counties:           all,
			MaxIncome:          140000,
			Pros:               "No repayment required",
			Cons:               "Higher interest rate on mortgage",
			IsGrant:            true,
			Assistance:         Percent(0.03, 25000),
			RateAdjustment:     0.004,
			YearsToForgiveness: years(0),
			ProcessingWeeks:    4,
			Category:           CategoryState,
		},
		{
			ID:              CHFASecond,
			Name:            "CHFA Second Mortgage",
			AmountLabel:     "Up to $25,000 (4% of loan)",
			Description:     "Silent second mortgage, deferred payment",
			Requirements:    []string{constants.FirstTimeBuyerRequirement, "CHFA mortgage"},
			Counties:        all,
			MaxIncome:       140000,
			Pros:            "No monthly payments, lower rate than grant",
			Cons:            "Must repay when you sell or refinance",
			Assistance:      Percent(0.04, 25000),
			IsDeferred:      true,
			ProcessingWeeks: 4,
			Category:        CategoryState,
		},
		{
			ID:                 MetroDPA,
			Name:               "Metro DPA",
			AmountLabel:        "Up to $15,000",
			Description:        "Down payment assistance for Denver metro area buyers",
			Requirements:       []string{"Metro area property", "Income limits", "Homebuyer education"},
			Counties:           metroCounties,
			MaxIncome:          130000,
			Pros:               "Forgivable after 5 years",
			Cons:               "Limited to metro counties",
			Assistance:         Percent(0.04, 15000),
			RateAdjustment:     0.002,
			YearsToForgiveness: years(5),
			ProcessingWeeks:    3,
			Category:           CategoryLocal,
		},
		{
			ID:              CHACLoan,
			Name:            "CHAC Down Payment Loan",
			AmountLabel:     "Up to $20,000",
			Description:     "Colorado Housing Assistance Corp deferred loan",
			Requirements:    []string{constants.FirstTimeBuyerRequirement, "CHAC counseling", "Income limits"},
			Counties:        []string{"Denver", "Adams", "Arapahoe", "Jefferson"},
			MaxIncome:       120000,
			Pros:            "0% interest, deferred",
			Cons:            "Requires additional counseling session",
			Assistance:      Percent(0.05, 20000),
			IsDeferred:      true,
			ProcessingWeeks: 5,
			Category:        CategoryNonprofit,
		},
		{
			ID:                 IDFBoulder,
			Name:               "IDF Boulder County",
			AmountLabel:        "Up to $15,000",
			Description:        "Impact Development Fund assistance for Boulder County",
			Requirements:       []string{"Boulder County property", "Income limits", "First-time or targeted buyer"},
			Counties:           []string{"Boulder"},
			MaxIncome:          125000,
			Pros:               "Forgivable after 3 years",
			Cons:               "Long processing time (6+ weeks)",
			Assistance:         Percent(0.04, 15000),
			YearsToForgiveness: years(3),
			ProcessingWeeks:    6,
			Category:           CategoryLocal,
		},
		{
			ID:              BoulderH2O,
			Name:            "Boulder Homeownership Opportunity",
			AmountLabel:     "Up to $50,000",
			Description:     "City of Boulder shared equity DPA",
			Requirements:    []string{"Boulder city limits", "Income 80% AMI", "Education BEFORE offer"},
			Counties:        []string{"Boulder"},
			MaxIncome:       95000,
			Pros:            "Very high assistance amount",
			Cons:            "Must complete education before making offer, shared equity",
			Assistance:      Percent(0.10, 50000),
			IsDeferred:      true,
			ProcessingWeeks: 8,
			Category:        CategoryLocal,
		},
		{
			ID:              VALoan,
			Name:            "VA Home Loan",
			AmountLabel:     "0% down payment",
			Description:     "Zero down payment loan for veterans and military",
			Requirements:    []string{"Eligible veteran/active duty", "VA Certificate of Eligibility", "Primary residence"},
			Counties:        all,
			MaxIncome:       999999,
			Occupations:     NewOccupationSet(constants.VeteranOccupation),
			Pros:            "No down payment, no PMI, competitive rates",
			Cons:            "VA funding fee (can be financed)",
			Assistance:      Zero(),
			RateAdjustment:  -0.002,
			ProcessingWeeks: 4,
			Category:        CategoryFederal,
		},
		{
			ID:              USDARural,
			Name:            "USDA Rural Development",
			AmountLabel:     "0% down payment",
			Description:     "Zero down payment for eligible rural areas",
			Requirements:    []string{"USDA-eligible area", "Income limits (115% AMI)", "Primary residence"},
			Counties:        []string{"Weld", "Larimer", "El Paso", "Pueblo", "Mesa", "Garfield"},
			MaxIncome:       110000,
			Pros:            "No down payment, below-market rates",
			Cons:            "Property must be in eligible rural area",
			Assistance:      Zero(),
			RateAdjustment:  -0.003,
			ProcessingWeeks: 6,
			Category:        CategoryFederal,
		},
		{
			ID:                  ElevationCLT,
			Name:                "Elevation Community Land Trust",
			AmountLabel:         "20-40% below market price",
			Description:         "Buy a home at 20-40% below market value. You own the home, the trust owns the land.",
			Requirements:        []string{"Income at or below 80% AMI", "First-time buyer preferred", "Homebuyer education", "Primary residence"},
			Counties:            []string{"Denver", "Adams", "Arapahoe", "Jefferson", "Boulder", "Broomfield"},
			MaxIncome:           85000,
			Pros:                "Dramatically lower purchase price, permanently affordable, build some equity",
			Cons:                "Limited appreciation (25% of increase), land lease fee (~$50-75/mo), resale restrictions",
			Assistance:          Percent(0.30, 0),
			ProcessingWeeks:     8,
			Category:            CategoryAffordableHousing,
			IsAffordableHousing: true,
			ProgramType:         "Community Land Trust",
		},
		{
			ID:                  HabitatHumanity,
			Name:                "Habitat for Humanity Colorado",
			AmountLabel:         "0% interest mortgage + sweat equity",
			Description:         "Affordable homes with 0% interest loans. Requires sweat equity hours building homes.",
			Requirements:        []string{"Income 30-60% AMI", "Able to pay affordable mortgage", "200-400 sweat equity hours", "Housing need demonstrated"},
			Counties:            all,
			MaxIncome:           64000,
			Pros:                "Zero interest mortgage, very low monthly payments, new construction, community building",
			Cons:                "Significant time commitment (sweat equity), long waitlists, limited availability",
			Assistance:          Percent(0.40, 0),
			RateAdjustment:      -0.065,
			ProcessingWeeks:     52,
			Category:            CategoryAffordableHousing,
			IsAffordableHousing: true,
			ProgramType:         "Nonprofit Homeownership",
		},
		{
			ID:                  DenverSharedEquity,
			Name:                "Denver Shared Equity Program",
			AmountLabel:         "Up to $50,000 + below-market homes",
			Description:         "City program combining DPA with deed-restricted affordable homes in Denver.",
			Requirements:        []string{"Income at or below 80% AMI", constants.FirstTimeBuyerRequirement, "Denver resident or worker", "Homebuyer education"},
			Counties:            []string{"Denver"},
			MaxIncome:           85000,
			Pros:                "Combines DPA with affordable pricing, city-backed program, multiple neighborhoods",
			Cons:                "Resale price restrictions, must remain primary residence, limited inventory",
			Assistance:          Flat(50000),
			YearsToForgiveness:  years(15),
			IsDeferred:          true,
			ProcessingWeeks:     8,
			Category:            CategoryAffordableHousing,
			IsAffordableHousing: true,
			ProgramType:         "Shared Equity",
		},
		{
			ID:                 TeacherNextDoor,
			Name:               "Teacher Next Door",
			AmountLabel:        "Up to $10,000 grant",
			Description:        "Down payment assistance for K-12 teachers and staff",
			Requirements:       []string{"Licensed teacher or school employee", "Full-time employment", "First-time or repeat buyer"},
			Counties:           all,
			MaxIncome:          150000,
			Occupations:        NewOccupationSet("teacher"),
			Pros:               "Grant does not need to be repaid",
			Cons:               "Must verify employment annually for 3 years",
			IsGrant:            true,
			Assistance:         Flat(10000),
			YearsToForgiveness: years(0),
			ProcessingWeeks:    3,
			Category:           CategoryOccupation,
		},
		{
			ID:                 HomesForHeroes,
			Name:               "Homes for Heroes",
			AmountLabel:        "Up to $3,000 rebate",
			Description:        "Rebate program for first responders, military, healthcare, teachers",
			Requirements:       []string{"Eligible occupation", "Use participating agent/lender"},
			Counties:           all,
			MaxIncome:          999999,
			Occupations:        NewOccupationSet("teacher", "first-responder", "healthcare"),
			Pros:               "Cash back at closing, works with other programs",
			Cons:               "Must use specific agents/lenders",
			IsGrant:            true,
			Assistance:         Flat(3000),
			YearsToForgiveness: years(0),
			ProcessingWeeks:    2,
			Category:           CategoryOccupation,
		},
		{
			ID:                 HealthcareHeroes,
			Name:               "Healthcare Worker Housing",
			AmountLabel:        "Up to $5,000 grant",
			Description:        "Down payment assistance for nurses, doctors, and healthcare workers",
			Requirements:       []string{"Healthcare professional", "Full-time employment", "First-time or repeat buyer"},
			Counties:           all,
			MaxIncome:          180000,
			Occupations:        NewOccupationSet("healthcare"),
			Pros:               "Available to both first-time and repeat buyers",
			Cons:               "Must verify healthcare employment",
			IsGrant:            true,
			Assistance:         Flat(5000),
			YearsToForgiveness: years(0),
			ProcessingWeeks:    3,
			Category:           CategoryOccupation,
		},
	}
}
