package report

import (
	"math"
	"sort"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
)

// GroupDuplicates buckets entries by amount at currency precision and
// returns the buckets holding two or more entries, ascending by amount.
// Amounts are keyed in cents so representation error in parsed floats
// cannot split a genuine duplicate pair. Sign is significant: a -50.00
// debit and a +50.00 refund are different groups.
func GroupDuplicates(entries []models.FinancialEntry) []models.DuplicateGroup {
	byCents := make(map[int64][]models.FinancialEntry)
	for _, e := range entries {
		byCents[toCents(e.Amount)] = append(byCents[toCents(e.Amount)], e)
	}

	var groups []models.DuplicateGroup
	for cents, members := range byCents {
		if len(members) < 2 {
			continue
		}
		groups = append(groups, models.DuplicateGroup{
			Amount:  float64(cents) / 100,
			Entries: members,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Amount < groups[j].Amount
	})
	return groups
}

// toCents normalizes an amount to two decimal places.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
