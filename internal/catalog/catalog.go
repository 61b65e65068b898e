package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidProgram is returned for malformed program definitions.
	ErrInvalidProgram = errors.New("invalid program")
	// ErrInvalidRule is returned for malformed assistance rules.
	ErrInvalidRule = errors.New("invalid assistance rule")
	// ErrDuplicateProgram is returned when two programs share an id.
	ErrDuplicateProgram = errors.New("duplicate program id")
	// ErrUnknownProgram is returned when a conflict references a missing program.
	ErrUnknownProgram = errors.New("unknown program id")
)

// Catalog is an immutable, ordered registry of programs plus their
// stacking conflicts.
type Catalog struct {
	programs  []Program
	index     map[string]int
	conflicts ConflictSet
}

// File is the on-disk shape of a catalog.
type File struct {
	Programs  []Program `yaml:"programs"`
	Conflicts []Pair    `yaml:"conflicts,omitempty"`
}

// New validates programs and conflicts and builds a catalog. Conflicts
// declared on a program through ConflictsWith are folded into the relation.
func New(programs []Program, conflicts []Pair) (*Catalog, error) {
	c := &Catalog{
		programs: make([]Program, 0, len(programs)),
		index:    make(map[string]int, len(programs)),
	}

	for _, p := range programs {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProgram, p.ID)
		}
		program := p.clone()
		if program.AmountLabel == "" {
			program.AmountLabel = program.Assistance.Label()
		}
		c.index[p.ID] = len(c.programs)
		c.programs = append(c.programs, program)
	}

	all := append([]Pair(nil), conflicts...)
	for _, p := range programs {
		for _, other := range p.ConflictsWith {
			all = append(all, Pair{p.ID, other})
		}
	}
	for _, pair := range all {
		for _, id := range pair {
			if _, ok := c.index[id]; !ok {
				return nil, fmt.Errorf("%w: conflict %s/%s references %s", ErrUnknownProgram, pair[0], pair[1], id)
			}
		}
	}
	c.conflicts = NewConflictSet(all...)

	return c, nil
}

// MustNew is New for static data known to be valid.
func MustNew(programs []Program, conflicts []Pair) *Catalog {
	c, err := New(programs, conflicts)
	if err != nil {
		panic(fmt.Sprintf("invalid static catalog: %v", err))
	}
	return c
}

// Load reads a YAML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return LoadFromReader(bytes.NewReader(data))
}

// LoadFromReader decodes a YAML catalog.
func LoadFromReader(r io.Reader) (*Catalog, error) {
	var file File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidProgram)
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(file.Programs, file.Conflicts)
}

// Marshal encodes the catalog in the same YAML shape Load reads.
func (c *Catalog) Marshal() ([]byte, error) {
	file := File{Programs: c.Programs(), Conflicts: c.conflicts.Pairs()}
	for i := range file.Programs {
		// Conflicts are emitted once in the top-level list.
		file.Programs[i].ConflictsWith = nil
	}
	return yaml.Marshal(file)
}

// Programs returns a copy of every program in catalog order.
func (c *Catalog) Programs() []Program {
	out := make([]Program, len(c.programs))
	for i, p := range c.programs {
		out[i] = p.clone()
	}
	return out
}

// Lookup returns the program with id.
func (c *Catalog) Lookup(id string) (Program, bool) {
	i, ok := c.index[id]
	if !ok {
		return Program{}, false
	}
	return c.programs[i].clone(), true
}

// Position returns the catalog order of id, or -1.
func (c *Catalog) Position(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Conflicts returns the stacking-conflict relation.
func (c *Catalog) Conflicts() ConflictSet {
	return c.conflicts.clone()
}

// Len returns the number of programs.
func (c *Catalog) Len() int {
	return len(c.programs)
}
