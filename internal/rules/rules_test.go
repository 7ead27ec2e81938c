package rules

import (
	"strings"
	"testing"
)

func TestMatchFirstRuleWins(t *testing.T) {
	table := MustTable([]Rule{
		{Keyword: "reading light", Kind: PerMatch, Items: []Material{{Item: "Switch", Quantity: 1}}},
		{Keyword: "light", Kind: PerMatch, Items: []Material{{Item: "Globe", Quantity: 1}}},
	})

	r, ok := table.Match("reading light flickering")
	if !ok {
		t.Fatal("expected a match")
	}
	if r.Keyword != "reading light" {
		t.Errorf("matched %q, want the earlier-declared %q", r.Keyword, "reading light")
	}

	r, ok = table.Match("bathroom light out")
	if !ok {
		t.Fatal("expected a match")
	}
	if r.Keyword != "light" {
		t.Errorf("matched %q, want %q", r.Keyword, "light")
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	table := DefaultTable()
	if _, ok := table.Match("TV Remote NOT working"); !ok {
		t.Error("expected mixed-case description to match")
	}
}

func TestMatchNoKeyword(t *testing.T) {
	table := DefaultTable()
	if _, ok := table.Match("curtain rail loose"); ok {
		t.Error("expected no match")
	}
}

func TestMaterialsNeededSumsAcrossKeywords(t *testing.T) {
	table := DefaultTable()
	got := table.MaterialsNeeded([]string{
		"safe battery needs replacing",
		"tv remote not working",
	})

	// safe battery -> 4 AA, tv remote -> 2 AA; same item sums into one entry
	if got["AA Battery"] != 6 {
		t.Errorf("AA Battery: got %d, want 6", got["AA Battery"])
	}
	if len(got) != 1 {
		t.Errorf("expected 1 material, got %d: %v", len(got), got)
	}
}

func TestMaterialsNeededRateDivision(t *testing.T) {
	table := DefaultTable()

	var five []string
	for i := 0; i < 5; i++ {
		five = append(five, "shower silicon worn out")
	}
	got := table.MaterialsNeeded(five)
	if got["Grey Silicon"] != 2 {
		t.Errorf("5 matches at rate 2: got %d, want 2", got["Grey Silicon"])
	}

	got = table.MaterialsNeeded([]string{"shower silicon worn out"})
	if got["Grey Silicon"] != 0 {
		t.Errorf("1 match at rate 2: got %d, want 0", got["Grey Silicon"])
	}
}

func TestMaterialsNeededMultiItem(t *testing.T) {
	table := DefaultTable()
	got := table.MaterialsNeeded([]string{"door battery flat", "door battery flat again"})

	if got["AA Battery"] != 8 {
		t.Errorf("AA Battery: got %d, want 8", got["AA Battery"])
	}
	if got["6V Alkaline Battery"] != 2 {
		t.Errorf("6V Alkaline Battery: got %d, want 2", got["6V Alkaline Battery"])
	}
}

func TestMaterialsNeededEmpty(t *testing.T) {
	table := DefaultTable()
	got := table.MaterialsNeeded(nil)
	if len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}

	got = table.MaterialsNeeded([]string{"nothing that matches"})
	if len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}

func TestNewTableRejectsBadRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{"empty keyword", Rule{Keyword: "", Kind: PerMatch, Items: []Material{{Item: "Globe", Quantity: 1}}}},
		{"upper-case keyword", Rule{Keyword: "Light", Kind: PerMatch, Items: []Material{{Item: "Globe", Quantity: 1}}}},
		{"no materials", Rule{Keyword: "light", Kind: PerMatch}},
		{"zero quantity", Rule{Keyword: "light", Kind: PerMatch, Items: []Material{{Item: "Globe"}}}},
		{"zero rate", Rule{Keyword: "silicon", Kind: RateDivision, Items: []Material{{Item: "Blade"}}}},
		{"multi with zero quantity", Rule{Keyword: "door battery", Kind: PerMatchMulti, Items: []Material{{Item: "AA Battery"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable([]Rule{tt.rule}); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestMustTablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid table")
		}
	}()
	MustTable([]Rule{{Keyword: "light", Kind: PerMatch}})
}

func TestDefaultTableOrder(t *testing.T) {
	table := DefaultTable()

	// The specific silicon keywords must be declared before the bare one.
	r, ok := table.Match("shower silicon resealing")
	if !ok || r.Keyword != "shower silicon" {
		t.Errorf("matched %q, want shower silicon", r.Keyword)
	}
	r, ok = table.Match("silicon around sink cracked")
	if !ok || r.Keyword != "silicon" {
		t.Errorf("matched %q, want silicon", r.Keyword)
	}

	if table.Len() != 11 {
		t.Errorf("default table has %d rules, want 11", table.Len())
	}

	// Keyword attribution never double-counts: a description matching two
	// keywords feeds exactly one rule.
	got := table.MaterialsNeeded([]string{"reading light switch missing"})
	if got["Globe"] != 0 || got["Check/Identify"] != 0 {
		t.Errorf("description attributed to more than one rule: %v", got)
	}
	if got["Switch"] != 1 {
		t.Errorf("Switch: got %d, want 1", got["Switch"])
	}
}

func TestMatchLowerCasesDescription(t *testing.T) {
	table := DefaultTable()
	upper := strings.ToUpper("safe battery dead")
	if _, ok := table.Match(upper); !ok {
		t.Error("expected upper-cased description to match")
	}
}
