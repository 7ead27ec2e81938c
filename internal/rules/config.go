package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ruleConfig is one rule as declared in the YAML file. The rule kind is
// chosen from the fields present: a rate makes it a rate rule, multiple
// materials make it a multi-item rule, otherwise it is a plain per-match
// rule.
type ruleConfig struct {
	Keyword   string `yaml:"keyword"`
	Rate      int    `yaml:"rate"`
	Materials []struct {
		Item     string `yaml:"item"`
		Quantity int    `yaml:"quantity"`
	} `yaml:"materials"`
}

type tableConfig struct {
	Rules []ruleConfig `yaml:"rules"`
}

// LoadTable reads an ordered rule table from a YAML file. File order is
// the matching priority. A rule that declares neither a usable quantity
// nor a rate is a configuration defect and fails the load.
func LoadTable(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule table: %w", err)
	}

	var cfg tableConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse rule table %s: %w", path, err)
	}
	if len(cfg.Rules) == 0 {
		return nil, fmt.Errorf("rule table %s declares no rules", path)
	}

	rules := make([]Rule, 0, len(cfg.Rules))
	for _, rc := range cfg.Rules {
		r := Rule{
			Keyword: strings.ToLower(strings.TrimSpace(rc.Keyword)),
			Rate:    rc.Rate,
		}
		for _, m := range rc.Materials {
			r.Items = append(r.Items, Material{Item: m.Item, Quantity: m.Quantity})
		}
		switch {
		case rc.Rate > 0:
			r.Kind = RateDivision
		case len(r.Items) > 1:
			r.Kind = PerMatchMulti
		default:
			r.Kind = PerMatch
		}
		rules = append(rules, r)
	}

	t, err := NewTable(rules)
	if err != nil {
		return nil, fmt.Errorf("rule table %s: %w", path, err)
	}
	return t, nil
}
