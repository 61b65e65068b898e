package profile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a buyer profile from a YAML (or JSON) file. Values are coerced
// the same way form input is.
func Load(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to open profile %s: %w", path, err)
	}
	defer f.Close()

	return LoadFromReader(f)
}

// LoadFromReader reads a buyer profile document from r.
func LoadFromReader(r io.Reader) (Profile, error) {
	var raw map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return New(), nil
		}
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}

	values := make(map[string]string, len(raw))
	for key, v := range raw {
		switch value := v.(type) {
		case nil:
			values[key] = ""
		case []interface{}:
			parts := make([]string, 0, len(value))
			for _, item := range value {
				parts = append(parts, fmt.Sprint(item))
			}
			values[key] = strings.Join(parts, ",")
		case map[string]interface{}:
			return Profile{}, fmt.Errorf("invalid value for %s: objects are not supported", key)
		default:
			values[key] = fmt.Sprint(value)
		}
	}

	return Apply(New(), FromForm(values)), nil
}
