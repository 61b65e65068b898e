package catalog

import "sort"

// Pair is an unordered pair of program ids that cannot be stacked.
type Pair [2]string

// ConflictSet is a symmetric stacking-conflict relation between programs.
type ConflictSet struct {
	adjacency map[string]map[string]struct{}
}

// NewConflictSet builds a relation from pairs. Self-pairs are ignored.
func NewConflictSet(pairs ...Pair) ConflictSet {
	set := ConflictSet{adjacency: make(map[string]map[string]struct{})}
	for _, pair := range pairs {
		set.add(pair[0], pair[1])
	}
	return set
}

func (s *ConflictSet) add(a, b string) {
	if a == b || a == "" || b == "" {
		return
	}
	if s.adjacency == nil {
		s.adjacency = make(map[string]map[string]struct{})
	}
	for _, edge := range []Pair{{a, b}, {b, a}} {
		peers, ok := s.adjacency[edge[0]]
		if !ok {
			peers = make(map[string]struct{})
			s.adjacency[edge[0]] = peers
		}
		peers[edge[1]] = struct{}{}
	}
}

// Conflicts reports whether a and b cannot be combined.
func (s ConflictSet) Conflicts(a, b string) bool {
	_, ok := s.adjacency[a][b]
	return ok
}

// Valid reports whether no two members of ids conflict.
func (s ConflictSet) Valid(ids []string) bool {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if s.Conflicts(ids[i], ids[j]) {
				return false
			}
		}
	}
	return true
}

// Pairs returns every conflict once, sorted.
func (s ConflictSet) Pairs() []Pair {
	var pairs []Pair
	for a, peers := range s.adjacency {
		for b := range peers {
			if a < b {
				pairs = append(pairs, Pair{a, b})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

// Len returns the number of distinct conflicting pairs.
func (s ConflictSet) Len() int {
	n := 0
	for _, peers := range s.adjacency {
		n += len(peers)
	}
	return n / 2
}

func (s ConflictSet) clone() ConflictSet {
	return NewConflictSet(s.Pairs()...)
}
