package report

import (
	"reflect"
	"testing"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
)

func sampleJobs() []models.JobRecord {
	return []models.JobRecord{
		{ID: "a", Room: "302", Description: "Door lock not working", Status: models.StatusOpen},
		{ID: "b", Room: "302", Description: "Shower silicon worn", Status: models.StatusClosed},
		{ID: "c", Room: "105", Description: "AC not cooling", Status: models.StatusOpen},
		{ID: "d", Room: "407", Description: "Door lock not working", Status: models.StatusOpen},
	}
}

func TestCountByStatus(t *testing.T) {
	got := CountByStatus(sampleJobs())
	if got[models.StatusOpen] != 3 {
		t.Errorf("open: got %d, want 3", got[models.StatusOpen])
	}
	if got[models.StatusClosed] != 1 {
		t.Errorf("closed: got %d, want 1", got[models.StatusClosed])
	}
}

func TestCountByRoom(t *testing.T) {
	got := CountByRoom(sampleJobs())
	want := map[string]int{"302": 2, "105": 1, "407": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCountByDescription(t *testing.T) {
	got := CountByDescription(sampleJobs())
	if got["Door lock not working"] != 2 {
		t.Errorf("got %d, want 2", got["Door lock not working"])
	}
}

func TestOpenByRoom(t *testing.T) {
	got := OpenByRoom(sampleJobs())
	want := map[string]int{"302": 1, "105": 1, "407": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSummariesEmptyRecordSet(t *testing.T) {
	if got := CountByStatus(nil); len(got) != 0 {
		t.Errorf("CountByStatus(nil) = %v, want empty", got)
	}
	if got := CountByRoom(nil); len(got) != 0 {
		t.Errorf("CountByRoom(nil) = %v, want empty", got)
	}
	if got := OpenJobs(nil); len(got) != 0 {
		t.Errorf("OpenJobs(nil) = %v, want empty", got)
	}
}

func TestFilter(t *testing.T) {
	jobs := sampleJobs()

	got := Filter(jobs, "302", "", "")
	if len(got) != 2 {
		t.Errorf("room filter: got %d jobs, want 2", len(got))
	}

	got = Filter(jobs, "", models.StatusOpen, "")
	if len(got) != 3 {
		t.Errorf("status filter: got %d jobs, want 3", len(got))
	}

	got = Filter(jobs, "", "", "door LOCK")
	if len(got) != 2 {
		t.Errorf("query filter: got %d jobs, want 2", len(got))
	}

	got = Filter(jobs, "302", models.StatusOpen, "door")
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("combined filter: got %v", got)
	}

	got = Filter(jobs, "", "", "")
	if len(got) != len(jobs) {
		t.Errorf("no criteria: got %d jobs, want %d", len(got), len(jobs))
	}
}

func TestDescriptionsPreservesOrder(t *testing.T) {
	got := Descriptions(sampleJobs())
	want := []string{"Door lock not working", "Shower silicon worn", "AC not cooling", "Door lock not working"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
