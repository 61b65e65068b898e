package directory

import "github.com/iwvelando/dpa-navigator/pkg/constants"

func statewide() []string {
	return []string{constants.AllCounties}
}

// DefaultLenders returns the built-in lender directory.
func DefaultLenders() []Lender {
	return []Lender{
		{
			ID: "bellco", Name: "Bellco Credit Union", Type: "Credit Union",
			Programs:    []string{"chfa-grant", "chfa-second", "metro-dpa", "chac-loan"},
			Specialties: []string{"First-time buyers", "DPA expert", "Member-focused rates"},
			Rating:      4.7, DPALoansYTD: 156, AvgProcessingDays: 45,
			Phone: "(303) 689-7800", Website: "https://www.bellco.org",
			Counties: statewide(), Notes: "Member-owned credit union with competitive rates",
		},
		{
			ID: "elevations", Name: "Elevations Credit Union", Type: "Credit Union",
			Programs:    []string{"chfa-grant", "chfa-second", "idf-boulder", "boulder-h2o"},
			Specialties: []string{"Boulder expert", "Local decision making", "Green building"},
			Rating:      4.8, DPALoansYTD: 89, AvgProcessingDays: 42,
			Phone: "(303) 443-4672", Website: "https://www.elevationscu.com",
			Counties: []string{"Boulder", "Broomfield", "Larimer", "Weld"}, Notes: "Best for Boulder County buyers",
		},
		{
			ID: "ent", Name: "Ent Credit Union", Type: "Credit Union",
			Programs:    []string{"chfa-grant", "chfa-second", "va-loan"},
			Specialties: []string{"Military families", "Southern Colorado", "VA Loans"},
			Rating:      4.6, DPALoansYTD: 112, AvgProcessingDays: 44,
			Phone: "(719) 574-1100", Website: "https://www.ent.com",
			Counties: []string{"El Paso", "Pueblo", "Teller"}, Notes: "Strong VA lending, Colorado Springs focus",
		},
		{
			ID: "citywide", Name: "Citywide Home Loans", Type: "Mortgage Company",
			Programs:    []string{"chfa-grant", "chfa-second", "metro-dpa", "chac-loan", "idf-boulder"},
			Specialties: []string{"DPA specialists", "Bilingual loan officers", "Fast closings"},
			Rating:      4.6, DPALoansYTD: 234, AvgProcessingDays: 40,
			Phone: "(303) 285-2100", Website: "https://www.citywidehomeloans.com",
			Counties: statewide(), Notes: "One of the largest DPA originators in Colorado",
		},
		{
			ID: "firstbank", Name: "FirstBank", Type: "Bank",
			Programs:    []string{"chfa-grant", "chfa-second", "metro-dpa"},
			Specialties: []string{"Colorado-based", "Community focused", "Local decisions"},
			Rating:      4.5, DPALoansYTD: 145, AvgProcessingDays: 47,
			Phone: "(303) 761-1600", Website: "https://www.efirstbank.com",
			Counties: statewide(), Notes: "Colorado-headquartered community bank",
		},
		{
			ID: "cherry-creek", Name: "Cherry Creek Mortgage", Type: "Mortgage Company",
			Programs:    []string{"chfa-grant", "chfa-second", "idf-boulder", "metro-dpa", "chac-loan"},
			Specialties: []string{"Full-service broker", "Stacked financing expert"},
			Rating:      4.8, DPALoansYTD: 198, AvgProcessingDays: 43,
			Phone: "(303) 813-3100", Website: "https://www.cherrycreekmortgage.com",
			Counties: statewide(), Notes: "Highly rated for complex DPA scenarios",
		},
		{
			ID: "fairway", Name: "Fairway Independent Mortgage", Type: "Mortgage Company",
			Programs:    []string{"chfa-grant", "chfa-second", "metro-dpa", "va-loan", "homes-for-heroes"},
			Specialties: []string{"Technology-enabled process", "Fast approvals", "Homes for Heroes partner"},
			Rating:      4.4, DPALoansYTD: 167, AvgProcessingDays: 42,
			Phone: "(720) 428-4000", Website: "https://www.fairwaymc.com",
			Counties: statewide(), Notes: "Multiple branch locations statewide",
		},
		{
			ID: "guild", Name: "Guild Mortgage", Type: "Mortgage Company",
			Programs:    []string{"chfa-grant", "chfa-second", "va-loan", "usda-rural"},
			Specialties: []string{"National reach", "Government loan expert", "VA/FHA Specialist"},
			Rating:      4.2, DPALoansYTD: 123, AvgProcessingDays: 48,
			Phone: "(720) 515-5900", Website: "https://www.guildmortgage.com",
			Counties: statewide(), Notes: "Strong FHA/VA expertise",
		},
		{
			ID: "nbh", Name: "NBH Bank", Type: "Bank",
			Programs:    []string{"chfa-grant", "chfa-second", "metro-dpa", "chac-loan"},
			Specialties: []string{"Bilingual services", "Diverse communities"},
			Rating:      4.5, DPALoansYTD: 78, AvgProcessingDays: 46,
			Phone: "(303) 256-3500", Website: "https://www.nbhbank.com",
			Counties: []string{"Denver", "Adams", "Jefferson"}, Notes: "Spanish-language services available",
		},
		{
			ID: "colorado-mortgage", Name: "Colorado Mortgage Company", Type: "Mortgage Company",
			Programs:    []string{"chfa-grant", "chfa-second", "metro-dpa", "idf-boulder"},
			Specialties: []string{"Colorado-only focus", "Complex financing"},
			Rating:      4.7, DPALoansYTD: 189, AvgProcessingDays: 41,
			Phone: "(303) 862-5626", Website: "https://www.coloradomortgagecompany.com",
			Counties: statewide(), Notes: "Exclusively serves Colorado borrowers",
		},
	}
}

// DefaultRealtors returns the built-in realtor directory.
func DefaultRealtors() []Realtor {
	return []Realtor{
		{
			ID: "maria-santos", Name: "Maria Santos", Company: "Keller Williams Realty",
			Phone: "(303) 555-0123", Email: "maria@example.com",
			Specialties: []string{"First-time buyers", "DPA programs", "Spanish-speaking"},
			Counties:    []string{"Denver", "Adams", "Arapahoe"},
			Rating:      4.9, DPATransactions: 45, Languages: []string{"English", "Spanish"},
		},
		{
			ID: "james-mitchell", Name: "James Mitchell", Company: "RE/MAX Alliance",
			Phone: "(303) 555-0456", Email: "james@example.com",
			Specialties: []string{"First-time buyers", "Affordable housing", "CLT properties"},
			Counties:    []string{"Boulder", "Broomfield", "Jefferson"},
			Rating:      4.8, DPATransactions: 32, Languages: []string{"English"},
		},
		{
			ID: "sarah-johnson", Name: "Sarah Johnson", Company: "Compass Colorado",
			Phone: "(720) 555-0789", Email: "sarah@example.com",
			Specialties: []string{"DPA transactions", "New construction", "Condos"},
			Counties:    []string{"Denver", "Jefferson", "Douglas"},
			Rating:      4.7, DPATransactions: 58, Languages: []string{"English"},
		},
		{
			ID: "michael-chen", Name: "Michael Chen", Company: "eXp Realty",
			Phone: "(303) 555-0147", Email: "michael@example.com",
			Specialties: []string{"First-time buyers", "Investment properties", "Multilingual"},
			Counties:    []string{"Denver", "Arapahoe", "Adams"},
			Rating:      4.8, DPATransactions: 28, Languages: []string{"English", "Mandarin", "Cantonese"},
		},
		{
			ID: "lisa-martinez", Name: "Lisa Martinez", Company: "The Group Real Estate",
			Phone: "(970) 555-0258", Email: "lisa@example.com",
			Specialties: []string{"Northern Colorado", "First-time buyers", "Rural properties"},
			Counties:    []string{"Larimer", "Weld"},
			Rating:      4.9, DPATransactions: 41, Languages: []string{"English", "Spanish"},
		},
		{
			ID: "david-thompson", Name: "David Thompson", Company: "Coldwell Banker",
			Phone: "(719) 555-0369", Email: "david@example.com",
			Specialties: []string{"Southern Colorado", "DPA programs", "Military families"},
			Counties:    []string{"El Paso", "Pueblo"},
			Rating:      4.7, DPATransactions: 36, Languages: []string{"English"},
		},
		{
			ID: "jennifer-williams", Name: "Jennifer Williams", Company: "LIV Sotheby's",
			Phone: "(970) 555-0471", Email: "jennifer@example.com",
			Specialties: []string{"Mountain communities", "Deed-restricted housing", "Workforce housing"},
			Counties:    []string{"Summit", "Eagle", "Pitkin", "Routt"},
			Rating:      4.8, DPATransactions: 22, Languages: []string{"English"},
		},
		{
			ID: "amanda-rodriguez", Name: "Amanda Rodriguez", Company: "HomeSmart Realty",
			Phone: "(303) 555-0582", Email: "amanda@example.com",
			Specialties: []string{"First-time buyers", "FHA loans", "DPA specialist"},
			Counties:    []string{"Denver", "Adams", "Arapahoe", "Jefferson"},
			Rating:      4.9, DPATransactions: 67, Languages: []string{"English", "Spanish"},
		},
	}
}
