package category

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRules reads an ordered keyword table from a YAML file. The file is a
// sequence of {keyword, category} entries; sequence order is match order.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword rules: %w", err)
	}

	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse keyword rules: %w", err)
	}

	for i, rule := range rules {
		if rule.Keyword == "" || rule.Category == "" {
			return nil, fmt.Errorf("keyword rule %d is incomplete: keyword=%q category=%q", i, rule.Keyword, rule.Category)
		}
	}

	return rules, nil
}
