package repositories

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/countries.yaml
var defaultCountries []byte

// countryFile is the on-disk shape: a top-level `countries:` list.
type countryFile struct {
	Countries []string `yaml:"countries"`
}

// LoadCountries reads the reference list from path, or the embedded list when path is empty.
// Order is kept; autocomplete suggestions follow it.
func LoadCountries(path string) ([]string, error) {
	data := defaultCountries
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read countries: %w", err)
		}
		data = b
	}
	return parseCountries(data)
}

func parseCountries(data []byte) ([]string, error) {
	var f countryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse countries: %w", err)
	}
	if len(f.Countries) == 0 {
		return nil, errors.New("countries list is empty")
	}
	out := make([]string, 0, len(f.Countries))
	seen := make(map[string]bool, len(f.Countries))
	for _, c := range f.Countries {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}
