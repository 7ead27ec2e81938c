package rules

// DefaultTable is the standard consumable-materials table used by the
// maintenance team. Order matters: "shower silicon" must be declared
// before the bare "silicon" keyword, and "reading light" before "light",
// so the more specific rule wins.
func DefaultTable() *Table {
	return MustTable([]Rule{
		{Keyword: "shower silicon", Kind: RateDivision, Items: []Material{{Item: "Grey Silicon"}}, Rate: 2},
		{Keyword: "bathtub silicon", Kind: RateDivision, Items: []Material{{Item: "White Silicon"}}, Rate: 3},
		{Keyword: "silicon", Kind: RateDivision, Items: []Material{{Item: "Blade"}}, Rate: 2},
		{Keyword: "safe battery", Kind: PerMatch, Items: []Material{{Item: "AA Battery", Quantity: 4}}},
		{Keyword: "tv remote", Kind: PerMatch, Items: []Material{{Item: "AA Battery", Quantity: 2}}},
		{Keyword: "door battery", Kind: PerMatchMulti, Items: []Material{
			{Item: "AA Battery", Quantity: 4},
			{Item: "6V Alkaline Battery", Quantity: 1},
		}},
		{Keyword: "flusher", Kind: PerMatch, Items: []Material{{Item: "Flusher Valve", Quantity: 1}}},
		{Keyword: "reading light", Kind: PerMatch, Items: []Material{{Item: "Switch", Quantity: 1}}},
		{Keyword: "light", Kind: PerMatch, Items: []Material{{Item: "Globe", Quantity: 1}}},
		{Keyword: "replace", Kind: PerMatch, Items: []Material{{Item: "Check/Identify", Quantity: 1}}},
		{Keyword: "missing", Kind: PerMatch, Items: []Material{{Item: "Check/Identify", Quantity: 1}}},
	})
}
