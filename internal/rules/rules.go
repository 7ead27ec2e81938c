package rules

import (
	"fmt"
	"strings"
)

// RuleKind selects how a rule converts match counts into quantities.
type RuleKind int

const (
	// PerMatch: every match consumes Items[0].Quantity units.
	PerMatch RuleKind = iota
	// PerMatchMulti: every match consumes each listed item's quantity.
	PerMatchMulti
	// RateDivision: one unit of Items[0].Item per Rate matches, rounded
	// down. Counts below the rate threshold yield zero units.
	RateDivision
)

// Material is one consumable item with a quantity per match.
type Material struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// Rule maps a lower-case keyword to the consumables it requires.
type Rule struct {
	Keyword string
	Kind    RuleKind
	Items   []Material
	Rate    int // used by RateDivision only
}

// Table is an ordered rule list. Declaration order is the matching
// priority: the first rule whose keyword is a substring of a description
// wins, and later rules are never consulted for that description.
type Table struct {
	rules []Rule
}

// NewTable validates the rules and returns a table. A rule missing its
// keyword, items, or rate indicates a configuration defect, not bad user
// input, so it fails here rather than during matching.
func NewTable(rules []Rule) (*Table, error) {
	for i, r := range rules {
		if strings.TrimSpace(r.Keyword) == "" {
			return nil, fmt.Errorf("rule %d: empty keyword", i)
		}
		if r.Keyword != strings.ToLower(r.Keyword) {
			return nil, fmt.Errorf("rule %d (%q): keyword must be lower-case", i, r.Keyword)
		}
		if len(r.Items) == 0 {
			return nil, fmt.Errorf("rule %d (%q): no materials listed", i, r.Keyword)
		}
		switch r.Kind {
		case PerMatch:
			if len(r.Items) != 1 {
				return nil, fmt.Errorf("rule %d (%q): per-match rule needs exactly one material", i, r.Keyword)
			}
			if r.Items[0].Quantity <= 0 {
				return nil, fmt.Errorf("rule %d (%q): quantity must be positive", i, r.Keyword)
			}
		case PerMatchMulti:
			for _, m := range r.Items {
				if m.Quantity <= 0 {
					return nil, fmt.Errorf("rule %d (%q): quantity for %q must be positive", i, r.Keyword, m.Item)
				}
			}
		case RateDivision:
			if len(r.Items) != 1 {
				return nil, fmt.Errorf("rule %d (%q): rate rule needs exactly one material", i, r.Keyword)
			}
			if r.Rate <= 0 {
				return nil, fmt.Errorf("rule %d (%q): rate must be positive", i, r.Keyword)
			}
		default:
			return nil, fmt.Errorf("rule %d (%q): unknown rule kind %d", i, r.Keyword, r.Kind)
		}
	}
	return &Table{rules: rules}, nil
}

// MustTable is NewTable for compiled-in tables; it panics on a bad rule.
func MustTable(rules []Rule) *Table {
	t, err := NewTable(rules)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}

// Match returns the first rule whose keyword is a substring of the
// description, scanning in declaration order. The description is matched
// against its lower-cased form.
func (t *Table) Match(description string) (Rule, bool) {
	desc := strings.ToLower(description)
	for _, r := range t.rules {
		if strings.Contains(desc, r.Keyword) {
			return r, true
		}
	}
	return Rule{}, false
}

// MaterialsNeeded counts keyword matches across all descriptions and
// converts the counts into required quantities per item. Two keywords
// feeding the same item name sum into one entry. Descriptions matching no
// keyword contribute nothing; no matches at all yields an empty map.
func (t *Table) MaterialsNeeded(descriptions []string) map[string]int {
	counts := make(map[string]int)
	for _, desc := range descriptions {
		if r, ok := t.Match(desc); ok {
			counts[r.Keyword]++
		}
	}

	needed := make(map[string]int)
	for _, r := range t.rules {
		count := counts[r.Keyword]
		if count == 0 {
			continue
		}
		switch r.Kind {
		case RateDivision:
			// Integer division: counts below the rate threshold
			// contribute a zero-quantity entry, as the source
			// system did.
			needed[r.Items[0].Item] += count / r.Rate
		default: // PerMatch, PerMatchMulti
			for _, m := range r.Items {
				needed[m.Item] += count * m.Quantity
			}
		}
	}
	return needed
}
