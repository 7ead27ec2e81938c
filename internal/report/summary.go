package report

import (
	"strings"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
)

// Read-side summaries over the record set. All functions are pure: they
// never mutate the records and tolerate an empty slice.

// CountByStatus returns the number of jobs per status.
func CountByStatus(jobs []models.JobRecord) map[models.Status]int {
	out := make(map[models.Status]int)
	for _, j := range jobs {
		out[j.Status]++
	}
	return out
}

// CountByRoom returns the number of jobs per room.
func CountByRoom(jobs []models.JobRecord) map[string]int {
	out := make(map[string]int)
	for _, j := range jobs {
		out[j.Room]++
	}
	return out
}

// CountByDescription returns the number of jobs per exact description.
func CountByDescription(jobs []models.JobRecord) map[string]int {
	out := make(map[string]int)
	for _, j := range jobs {
		out[j.Description]++
	}
	return out
}

// OpenByRoom counts only non-closed jobs per room, for the dashboard.
func OpenByRoom(jobs []models.JobRecord) map[string]int {
	out := make(map[string]int)
	for _, j := range jobs {
		if j.Status != models.StatusClosed {
			out[j.Room]++
		}
	}
	return out
}

// OpenJobs returns the non-closed subset of the record set.
func OpenJobs(jobs []models.JobRecord) []models.JobRecord {
	var out []models.JobRecord
	for _, j := range jobs {
		if j.Status != models.StatusClosed {
			out = append(out, j)
		}
	}
	return out
}

// Descriptions projects the description column, in record order.
func Descriptions(jobs []models.JobRecord) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Description)
	}
	return out
}

// Filter narrows the record set by optional room, status, and description
// substring criteria. Empty criteria match everything; the description
// filter is case-insensitive.
func Filter(jobs []models.JobRecord, room string, status models.Status, query string) []models.JobRecord {
	query = strings.ToLower(query)
	var out []models.JobRecord
	for _, j := range jobs {
		if room != "" && j.Room != room {
			continue
		}
		if status != "" && j.Status != status {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(j.Description), query) {
			continue
		}
		out = append(out, j)
	}
	return out
}
