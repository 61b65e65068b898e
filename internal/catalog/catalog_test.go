package catalog

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	if cat.Len() != 14 {
		t.Fatalf("expected 14 default programs, got %d", cat.Len())
	}

	programs := cat.Programs()
	if programs[0].ID != CHFAGrant || programs[len(programs)-1].ID != HealthcareHeroes {
		t.Errorf("default catalog order changed: first %s, last %s", programs[0].ID, programs[len(programs)-1].ID)
	}

	for _, p := range programs {
		if err := p.validate(); err != nil {
			t.Errorf("default program %s invalid: %v", p.ID, err)
		}
		if got := cat.Position(p.ID); got < 0 {
			t.Errorf("program %s missing from index", p.ID)
		}
	}

	if cat.Conflicts().Len() != 3 {
		t.Errorf("expected 3 default conflicts, got %d", cat.Conflicts().Len())
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	cat := Default()

	programs := cat.Programs()
	programs[0].Counties[0] = "Nowhere"
	programs[0].Name = "changed"

	again, ok := cat.Lookup(CHFAGrant)
	if !ok {
		t.Fatal("expected to find chfa-grant")
	}
	if again.Counties[0] != "all" || again.Name != "CHFA Down Payment Grant" {
		t.Errorf("catalog mutated through returned copy: %+v", again)
	}

	*again.YearsToForgiveness = 99
	third, _ := cat.Lookup(CHFAGrant)
	if *third.YearsToForgiveness != 0 {
		t.Errorf("years to forgiveness mutated through returned pointer")
	}
}

func TestCalcAmountMonotonicAndCapped(t *testing.T) {
	prices := []float64{-5000, 0, 1000, 50000, 100000, 250000, 382500, 500000, 600000, 2000000}

	for _, p := range Default().Programs() {
		previous := -1.0
		for _, price := range prices {
			amount := p.CalcAmount(price)
			if amount < 0 {
				t.Errorf("%s: negative amount %.2f at price %.2f", p.ID, amount, price)
			}
			if amount < previous {
				t.Errorf("%s: amount decreased from %.2f to %.2f at price %.2f", p.ID, previous, amount, price)
			}
			if p.Assistance.Cap > 0 && amount > p.Assistance.Cap {
				t.Errorf("%s: amount %.2f exceeds cap %.2f", p.ID, amount, p.Assistance.Cap)
			}
			previous = amount
		}
		if got := p.CalcAmount(math.NaN()); got < 0 || math.IsNaN(got) {
			t.Errorf("%s: CalcAmount(NaN) = %v", p.ID, got)
		}
	}
}

func TestCalcAmountReferenceValues(t *testing.T) {
	cat := Default()

	tests := []struct {
		id       string
		price    float64
		expected float64
	}{
		{CHFAGrant, 382500, 11475},
		{CHFAGrant, 1000000, 25000},
		{CHFASecond, 382500, 15300},
		{MetroDPA, 382500, 15000},
		{CHACLoan, 382500, 19125},
		{BoulderH2O, 225000, 22500},
		{BoulderH2O, 600000, 50000},
		{VALoan, 382500, 0},
		{ElevationCLT, 200000, 60000},
		{DenverSharedEquity, 1, 50000},
		{TeacherNextDoor, 0, 10000},
	}

	for _, tt := range tests {
		p, ok := cat.Lookup(tt.id)
		if !ok {
			t.Fatalf("missing program %s", tt.id)
		}
		if got := p.CalcAmount(tt.price); math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("%s.CalcAmount(%.0f) = %.2f, expected %.2f", tt.id, tt.price, got, tt.expected)
		}
	}
}

func TestAssistanceRuleValidate(t *testing.T) {
	tests := []struct {
		name      string
		rule      AssistanceRule
		expectErr bool
	}{
		{"flat", Flat(1000), false},
		{"percent", Percent(0.05, 20000), false},
		{"uncapped percent", Percent(0.3, 0), false},
		{"zero", Zero(), false},
		{"negative flat", Flat(-1), true},
		{"percent over one", Percent(1.5, 0), true},
		{"negative cap", Percent(0.1, -5), true},
		{"unknown kind", AssistanceRule{Kind: "tiered"}, true},
		{"missing kind", AssistanceRule{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.expectErr && !errors.Is(err, ErrInvalidRule) {
				t.Errorf("expected ErrInvalidRule, got %v", err)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestProgramPredicates(t *testing.T) {
	cat := Default()

	grant, _ := cat.Lookup(CHFAGrant)
	if !grant.RequiresFirstTimeBuyer() {
		t.Error("chfa-grant should require a first-time buyer")
	}
	if !grant.ServesCounty("Mesa") {
		t.Error("statewide program should serve any county")
	}

	metro, _ := cat.Lookup(MetroDPA)
	if metro.RequiresFirstTimeBuyer() {
		t.Error("metro-dpa has no machine-checked first-time buyer requirement")
	}
	if metro.ServesCounty("Boulder") {
		t.Error("metro-dpa should not serve Boulder")
	}

	va, _ := cat.Lookup(VALoan)
	if !va.RequiresVeteran() {
		t.Error("va-loan should require veteran status")
	}

	heroes, _ := cat.Lookup(HomesForHeroes)
	if heroes.RequiresVeteran() || !heroes.Occupations.Contains("healthcare") || heroes.Occupations.Contains("farmer") {
		t.Errorf("unexpected homes-for-heroes occupations %v", heroes.Occupations.Tags())
	}

	second, _ := cat.Lookup(CHFASecond)
	if second.Forgivable() {
		t.Error("chfa-second is never forgiven")
	}
}

func TestNewRejectsInvalidCatalogs(t *testing.T) {
	valid := Program{ID: "a", Name: "A", Counties: []string{"all"}, MaxIncome: 1, Assistance: Zero()}

	tests := []struct {
		name      string
		programs  []Program
		conflicts []Pair
		target    error
	}{
		{"duplicate id", []Program{valid, valid}, nil, ErrDuplicateProgram},
		{"missing id", []Program{{Name: "x", Counties: []string{"all"}, Assistance: Zero()}}, nil, ErrInvalidProgram},
		{"negative income", []Program{{ID: "x", Counties: []string{"all"}, MaxIncome: -1, Assistance: Zero()}}, nil, ErrInvalidProgram},
		{"no counties", []Program{{ID: "x", Assistance: Zero()}}, nil, ErrInvalidProgram},
		{"bad rule", []Program{{ID: "x", Counties: []string{"all"}, Assistance: Flat(-3)}}, nil, ErrInvalidRule},
		{"unknown conflict", []Program{valid}, []Pair{{"a", "ghost"}}, ErrUnknownProgram},
		{"unknown declared conflict", []Program{{ID: "x", Counties: []string{"all"}, Assistance: Zero(), ConflictsWith: []string{"ghost"}}}, nil, ErrUnknownProgram},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.programs, tt.conflicts); !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestLoadFromReader(t *testing.T) {
	catalogYAML := `
programs:
  - id: city-grant
    name: City Grant
    counties: [Denver]
    maxIncome: 90000
    requirements: ["First-time buyer"]
    assistance: {kind: flat, amount: 7500}
    isGrant: true
    category: local
  - id: city-loan
    name: City Loan
    counties: [all]
    maxIncome: 100000
    occupation: teacher
    assistance: {kind: percent, percent: 0.05, cap: 12000}
    yearsToForgiveness: 10
    category: local
    conflictsWith: [city-grant]
  - id: heroes
    name: Heroes
    counties: [all]
    maxIncome: 100000
    occupation: [healthcare, teacher]
    assistance: {kind: zero}
    category: occupation
conflicts:
  - [heroes, city-grant]
`
	cat, err := LoadFromReader(strings.NewReader(catalogYAML))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	if cat.Len() != 3 {
		t.Fatalf("expected 3 programs, got %d", cat.Len())
	}
	loan, _ := cat.Lookup("city-loan")
	if !loan.Occupations.Contains("teacher") || loan.YearsToForgiveness == nil || *loan.YearsToForgiveness != 10 {
		t.Errorf("city-loan decoded incorrectly: %+v", loan)
	}
	if got := loan.CalcAmount(1000000); got != 12000 {
		t.Errorf("expected capped amount 12000, got %.2f", got)
	}
	heroes, _ := cat.Lookup("heroes")
	if len(heroes.Occupations.Tags()) != 2 {
		t.Errorf("expected list occupation to decode into 2 tags, got %v", heroes.Occupations.Tags())
	}

	conflicts := cat.Conflicts()
	if !conflicts.Conflicts("city-grant", "city-loan") || !conflicts.Conflicts("city-grant", "heroes") {
		t.Errorf("expected declared and listed conflicts, got %v", conflicts.Pairs())
	}
	if conflicts.Conflicts("city-loan", "heroes") {
		t.Error("unexpected conflict between city-loan and heroes")
	}
}

func TestLoadFromReaderErrors(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader("")); !errors.Is(err, ErrInvalidProgram) {
		t.Errorf("expected empty catalog error, got %v", err)
	}
	if _, err := LoadFromReader(strings.NewReader("programs: [{id: a, bogus: 1}]")); err == nil {
		t.Error("expected unknown field error")
	}
	if _, err := LoadFromReader(strings.NewReader("programs: [{id: a, counties: [all], occupation: {a: b}, assistance: {kind: zero}}]")); err == nil {
		t.Error("expected occupation mapping to be rejected")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	original := Default()

	data, err := original.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	reloaded, err := LoadFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("reloading marshaled catalog failed: %v\n%s", err, data)
	}
	if reloaded.Len() != original.Len() {
		t.Errorf("expected %d programs after reload, got %d", original.Len(), reloaded.Len())
	}
	if reloaded.Conflicts().Len() != original.Conflicts().Len() {
		t.Errorf("conflicts lost in round trip: %v", reloaded.Conflicts().Pairs())
	}
	heroes, _ := reloaded.Lookup(HomesForHeroes)
	if len(heroes.Occupations.Tags()) != 3 {
		t.Errorf("occupations lost in round trip: %v", heroes.Occupations.Tags())
	}
}

func TestColoradoCounties(t *testing.T) {
	counties := ColoradoCounties()
	if len(counties) != 64 {
		t.Fatalf("expected 64 counties, got %d", len(counties))
	}
	counties[0] = "changed"
	if ColoradoCounties()[0] != "Adams" {
		t.Error("ColoradoCounties exposed internal storage")
	}

	if got, ok := CanonicalCounty("  el paso "); !ok || got != "El Paso" {
		t.Errorf("CanonicalCounty() = %q, %v", got, ok)
	}
	if _, ok := CanonicalCounty("Cook"); ok {
		t.Error("expected unknown county to fail")
	}

	for _, program := range Default().Programs() {
		for _, county := range program.Counties {
			if county == "all" {
				continue
			}
			if _, ok := CanonicalCounty(county); !ok {
				t.Errorf("program %s references unknown county %q", program.ID, county)
			}
		}
	}
}

func TestAssistanceRuleLabel(t *testing.T) {
	tests := []struct {
		rule AssistanceRule
		want string
	}{
		{Flat(7500), "$7,500"},
		{Percent(0.05, 12000), "Up to $12,000 (5% of price)"},
		{Percent(0.3, 0), "30% of price"},
		{Zero(), "No cash assistance"},
	}
	for _, tt := range tests {
		if got := tt.rule.Label(); got != tt.want {
			t.Errorf("%+v.Label() = %q, expected %q", tt.rule, got, tt.want)
		}
	}

	cat := MustNew([]Program{{ID: "city-grant", Counties: []string{"Denver"}, Assistance: Flat(7500)}}, nil)
	program, _ := cat.Lookup("city-grant")
	if program.AmountLabel != "$7,500" {
		t.Errorf("expected a derived amount label, got %q", program.AmountLabel)
	}
	if got := Default().Programs()[0].AmountLabel; got != "Up to $25,000 (3% of loan)" {
		t.Errorf("explicit labels must be kept, got %q", got)
	}
}
