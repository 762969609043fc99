package verify

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

type overridesFile struct {
	Components map[string]overrideEntry `yaml:"components"`
}

type overrideEntry struct {
	Min         string `yaml:"min"`
	Recommended string `yaml:"recommended"`
	Max         string `yaml:"max"`
	Pattern     string `yaml:"pattern"`
}

// LoadOverrides reads a constraint file. Entries without a pattern fall
// back to the built-in pattern for that component; unknown components
// must supply one.
func LoadOverrides(path string) (map[string]Constraint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file overridesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	defaults := DefaultMatrix()
	out := make(map[string]Constraint, len(file.Components))
	for name, entry := range file.Components {
		c := Constraint{
			Min:         entry.Min,
			Recommended: entry.Recommended,
			Max:         entry.Max,
		}
		switch {
		case entry.Pattern != "":
			pattern, err := regexp.Compile(entry.Pattern)
			if err != nil {
				return nil, fmt.Errorf("component %s: invalid pattern: %w", name, err)
			}
			c.Pattern = pattern
		default:
			base, ok := defaults[name]
			if !ok {
				return nil, fmt.Errorf("component %s: pattern required for non-default component", name)
			}
			c.Pattern = base.Pattern
		}
		if c.Min == "" || c.Max == "" {
			return nil, fmt.Errorf("component %s: min and max are required", name)
		}
		out[name] = c
	}
	return out, nil
}
