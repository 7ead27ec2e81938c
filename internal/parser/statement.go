package parser

import (
	"strings"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
)

// providerPhrases is the fixed vocabulary used to pull a counterparty label
// out of a statement line. Checked in order; first phrase found wins.
var providerPhrases = []string{
	"Transfer to",
	"Direct Debit",
	"DEPT OF",
	"CommBank",
	"NetBank",
	"Importers",
	"POS",
	"EMI",
	"RED",
}

// counterpartyFallbackLen caps the raw-line fallback label.
const counterpartyFallbackLen = 50

// StatementExtraction is the result of scanning pasted statement text.
type StatementExtraction struct {
	Entries []models.FinancialEntry
	Skipped int // lines without a recognizable amount
}

// ExtractEntries pulls debit entries out of pasted bank-statement text.
// The first amount match on each line wins; lines without one are skipped.
func ExtractEntries(text string) StatementExtraction {
	var out StatementExtraction
	for _, line := range SplitLines(text) {
		raw := amountPattern.FindString(line)
		if raw == "" {
			out.Skipped++
			continue
		}
		amount, err := parseAmount(raw)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Entries = append(out.Entries, models.FinancialEntry{
			RawLine:      line,
			Amount:       amount,
			Counterparty: extractCounterparty(line),
		})
	}
	return out
}

// extractCounterparty finds the first known provider phrase in the line and
// takes the text after it, cut off at the next amount marker. Falls back to
// the first 50 characters of the line when no phrase matches.
func extractCounterparty(line string) string {
	lower := strings.ToLower(line)
	for _, phrase := range providerPhrases {
		idx := strings.Index(lower, strings.ToLower(phrase))
		if idx < 0 {
			continue
		}
		rest := line[idx+len(phrase):]
		if cut := strings.IndexAny(rest, "$-"); cut >= 0 {
			rest = rest[:cut]
		}
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return phrase
		}
		return rest
	}

	runes := []rune(line)
	if len(runes) > counterpartyFallbackLen {
		return strings.TrimSpace(string(runes[:counterpartyFallbackLen]))
	}
	return line
}
