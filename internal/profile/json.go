package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// UnmarshalJSON decodes a profile leniently: numeric fields may arrive as
// numbers or strings, empty or unparsable values become zero and absent
// fields keep the session defaults from New.
func (p *Profile) UnmarshalJSON(data []byte) error {
	u, err := UpdateFromJSON(data)
	if err != nil {
		return err
	}
	*p = Apply(New(), u)
	return nil
}

// UpdateFromJSON decodes a JSON object of form fields into an Update.
func UpdateFromJSON(data []byte) (Update, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Update{}, fmt.Errorf("failed to decode profile: %w", err)
	}

	values := make(map[string]string, len(raw))
	for key, msg := range raw {
		value, err := rawFieldValue(msg)
		if err != nil {
			return Update{}, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		values[key] = value
	}
	return FromForm(values), nil
}

func rawFieldValue(msg json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case '[':
		var items []interface{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return "", err
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ","), nil
	case '{':
		return "", fmt.Errorf("objects are not supported")
	default:
		// numbers and booleans
		return string(trimmed), nil
	}
}
