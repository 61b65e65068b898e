// Package combination generates the candidate program sets a buyer could
// stack on one purchase.
package combination

import (
	"github.com/iwvelando/dpa-navigator/internal/catalog"
	"github.com/iwvelando/dpa-navigator/pkg/constants"
)

// Generator enumerates conflict-free program sets.
type Generator struct {
	// Conflicts is the stacking relation consulted for every candidate.
	Conflicts catalog.ConflictSet
	// MaxSize is the largest set generated. Zero means pairs.
	MaxSize int
	// Limit bounds the number of candidates. Zero means the default bound.
	Limit int
}

// NewGenerator returns a generator using the conflicts of cat and the
// default bounds.
func NewGenerator(cat *catalog.Catalog) Generator {
	g := Generator{
		MaxSize: constants.DefaultMaxCombinationSize,
		Limit:   constants.DefaultMaxCombinations,
	}
	if cat != nil {
		g.Conflicts = cat.Conflicts()
	}
	return g
}

func (g Generator) maxSize() int {
	if g.MaxSize <= 0 {
		return constants.DefaultMaxCombinationSize
	}
	return g.MaxSize
}

func (g Generator) limit() int {
	if g.Limit <= 0 {
		return constants.DefaultMaxCombinations
	}
	return g.Limit
}

// IsValid reports whether ids contains no conflicting pair.
func (g Generator) IsValid(ids []string) bool {
	return g.Conflicts.Valid(ids)
}

// Generate returns every valid set of the cash-assistance programs among
// eligible: all singletons in input order, then pairs, then larger sets up
// to MaxSize, each size in index order. Affordable-housing programs are
// never combined. Generation stops once Limit candidates exist.
func (g Generator) Generate(eligible []catalog.Program) [][]string {
	ids := make([]string, 0, len(eligible))
	seen := make(map[string]struct{}, len(eligible))
	for _, program := range eligible {
		if program.IsAffordableHousing {
			continue
		}
		if _, dup := seen[program.ID]; dup {
			continue
		}
		seen[program.ID] = struct{}{}
		ids = append(ids, program.ID)
	}

	combos := [][]string{}
	limit := g.limit()
	maxSize := g.maxSize()
	if maxSize > len(ids) {
		maxSize = len(ids)
	}

	for size := 1; size <= maxSize && len(combos) < limit; size++ {
		combos = g.extend(combos, ids, make([]string, 0, size), 0, size, limit)
	}
	return combos
}

// Truncated reports whether Generate would have produced more than Limit
// candidates for eligible.
func (g Generator) Truncated(eligible []catalog.Program) bool {
	probe := g
	probe.Limit = g.limit() + 1
	return len(probe.Generate(eligible)) > g.limit()
}

// extend appends to combos every valid size-element set that begins with
// prefix and continues from ids[start:].
func (g Generator) extend(combos [][]string, ids, prefix []string, start, size, limit int) [][]string {
	if len(prefix) == size {
		return append(combos, append([]string(nil), prefix...))
	}

	for i := start; i < len(ids) && len(combos) < limit; i++ {
		if !g.compatible(prefix, ids[i]) {
			continue
		}
		combos = g.extend(combos, ids, append(prefix, ids[i]), i+1, size, limit)
	}
	return combos
}

func (g Generator) compatible(set []string, id string) bool {
	for _, member := range set {
		if g.Conflicts.Conflicts(member, id) {
			return false
		}
	}
	return true
}

var defaultConflicts = catalog.NewConflictSet(catalog.DefaultConflicts()...)

// IsValidCombination checks ids against the default catalog's conflicts.
func IsValidCombination(ids []string) bool {
	return defaultConflicts.Valid(ids)
}
