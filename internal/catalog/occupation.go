package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// OccupationSet is the normalized occupation constraint of a program. Source
// data may declare a single tag or a list of tags; both decode into a set.
// The zero value means the program has no occupation constraint.
type OccupationSet struct {
	tags []string
}

// NewOccupationSet builds a set from tags, dropping blanks and duplicates.
func NewOccupationSet(tags ...string) OccupationSet {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	if len(out) == 0 {
		return OccupationSet{}
	}
	return OccupationSet{tags: out}
}

// Empty reports whether the set declares no constraint.
func (s OccupationSet) Empty() bool {
	return len(s.tags) == 0
}

// Contains reports whether tag is a member.
func (s OccupationSet) Contains(tag string) bool {
	if tag == "" {
		return false
	}
	i := sort.SearchStrings(s.tags, tag)
	return i < len(s.tags) && s.tags[i] == tag
}

// Tags returns the sorted members.
func (s OccupationSet) Tags() []string {
	return append([]string(nil), s.tags...)
}

func (s OccupationSet) clone() OccupationSet {
	if s.Empty() {
		return OccupationSet{}
	}
	return OccupationSet{tags: s.Tags()}
}

// UnmarshalYAML accepts either a scalar tag or a sequence of tags.
func (s *OccupationSet) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var tag string
		if err := value.Decode(&tag); err != nil {
			return err
		}
		*s = NewOccupationSet(tag)
	case yaml.SequenceNode:
		var tags []string
		if err := value.Decode(&tags); err != nil {
			return err
		}
		*s = NewOccupationSet(tags...)
	default:
		return fmt.Errorf("occupation must be a tag or a list of tags, line %d", value.Line)
	}
	return nil
}

// MarshalYAML encodes the set as a sequence.
func (s OccupationSet) MarshalYAML() (interface{}, error) {
	return s.Tags(), nil
}

// IsZero lets yaml omitempty drop unconstrained sets.
func (s OccupationSet) IsZero() bool {
	return s.Empty()
}

// UnmarshalJSON accepts either a string tag or an array of tags.
func (s *OccupationSet) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		*s = NewOccupationSet(tag)
		return nil
	}
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return fmt.Errorf("occupation must be a tag or a list of tags: %w", err)
	}
	*s = NewOccupationSet(tags...)
	return nil
}

// MarshalJSON encodes the set as an array.
func (s OccupationSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tags())
}
