package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
)

// Job ticket line formats accepted:
//
//	Room 302 - Door lock not working
//	105: AC not cooling
//	Rm 407 Toilet blocked
//	Kitchen | Extractor fan rattling      (pipe format, free-text area name)
//
// Room numbers are exactly three digits. A 2- or 4-digit run next to
// "Room"/"Rm" is not a room number; the first 3-digit run anywhere in the
// line wins, even when it sits inside the description. That tie-break is
// inherited from the source system and kept as-is.

// digitRunPattern finds maximal runs of digits in a line.
var digitRunPattern = regexp.MustCompile(`[0-9]+`)

// descTrimSet is stripped from both ends of a captured description.
const descTrimSet = " -:|"

// JobExtraction is the result of one paste-and-submit event.
type JobExtraction struct {
	Jobs    []models.JobRecord
	Skipped int // lines that matched no recognized format
}

// ExtractJobs turns a pasted blob into job records. Unrecognized lines are
// skipped, never reported as errors; pasted text is expected to be noisy.
// Whitespace-only input yields zero records and no skips.
func ExtractJobs(text string, now time.Time) JobExtraction {
	var out JobExtraction
	for _, line := range SplitLines(text) {
		room, desc, ok := matchJobLine(line)
		if !ok {
			out.Skipped++
			continue
		}
		out.Jobs = append(out.Jobs, models.JobRecord{
			ID:          uuid.NewString(),
			Room:        room,
			Description: desc,
			Status:      models.StatusOpen,
			Urgency:     models.UrgencyLow,
			Timestamp:   now,
		})
	}
	return out
}

// matchJobLine recognizes a single ticket line. Both the room and the
// description must be non-empty after trimming or the line is rejected.
func matchJobLine(line string) (room, desc string, ok bool) {
	if room, desc, ok = matchRoomNumber(line); ok {
		return room, desc, true
	}
	return matchPipeFormat(line)
}

// matchRoomNumber applies the canonical pattern: optional "Room"/"Rm"
// marker, a 3-digit token, one or more non-alphanumeric separators, then
// the description.
func matchRoomNumber(line string) (room, desc string, ok bool) {
	for _, loc := range digitRunPattern.FindAllStringIndex(line, -1) {
		if loc[1]-loc[0] != 3 {
			continue
		}
		rest := line[loc[1]:]

		// Require at least one non-alphanumeric separator after the
		// room token, so "302AC broken" does not split mid-word.
		sep := 0
		for _, r := range rest {
			if isAlphanumeric(r) {
				break
			}
			sep++
		}
		if sep == 0 {
			continue
		}

		desc = strings.Trim(rest, descTrimSet)
		if desc == "" {
			return "", "", false
		}
		return line[loc[0]:loc[1]], desc, true
	}
	return "", "", false
}

// matchPipeFormat accepts "Room | Job description" lines where the room can
// be a free-text area name like "Kitchen".
func matchPipeFormat(line string) (room, desc string, ok bool) {
	before, after, found := strings.Cut(line, "|")
	if !found {
		return "", "", false
	}
	room = strings.TrimSpace(before)
	desc = strings.Trim(after, descTrimSet)
	if room == "" || desc == "" {
		return "", "", false
	}
	return room, desc, true
}

func isAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
