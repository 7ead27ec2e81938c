package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches a debit amount as it appears in statement text:
// a minus sign and/or currency symbol, 1-5 leading digits, optional
// thousands groups, optional decimal point with up to two fractional
// digits. A bare unsigned number is not an amount; debits are marked by
// sign or symbol, which keeps dates and reference numbers from matching.
var amountPattern = regexp.MustCompile(`(?:-[£$€]?|[£$€])\d{1,5}(?:,\d{3})*(?:\.\d{0,2})?`)

// parseAmount converts a string like "1,234.56" or "-£1,234.56" to a float64.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	// Remove currency symbols and whitespace (including Unicode variants)
	s = strings.ReplaceAll(s, "£", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "") // non-breaking space
	s = strings.TrimSuffix(s, ".")

	if s == "" || s == "-" {
		return 0, nil
	}

	return strconv.ParseFloat(s, 64)
}
