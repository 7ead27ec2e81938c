package parser

import (
	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
)

// DetectKind guesses whether pasted text is a maintenance job list or a
// bank statement by counting which recognition pattern matches more lines.
// Ties (including text matching neither) fall back to the job list, which
// is the common paste in practice.
func DetectKind(text string) models.InputKind {
	jobHits := 0
	stmtHits := 0
	for _, line := range SplitLines(text) {
		if _, _, ok := matchJobLine(line); ok {
			jobHits++
		}
		if amountPattern.MatchString(line) {
			stmtHits++
		}
	}
	if stmtHits > jobHits {
		return models.InputStatement
	}
	return models.InputJobs
}
