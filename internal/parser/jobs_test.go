package parser

import (
	"testing"
	"time"
)

func TestMatchJobLine(t *testing.T) {
	tests := []struct {
		input    string
		wantRoom string
		wantDesc string
		wantOK   bool
	}{
		{"Room 302 - Door lock not working", "302", "Door lock not working", true},
		{"105: AC not cooling", "105", "AC not cooling", true},
		{"Rm 407 Toilet blocked", "407", "Toilet blocked", true},
		{"random unrelated line", "", "", false},
		// Room numbers are exactly three digits
		{"Room 12 TVs need batteries", "", "", false},
		{"Room 1234 broken lamp", "", "", false},
		// First 3-digit run wins even mid-line
		{"needs 220 volt check Room 305", "220", "volt check Room 305", true},
		// 4-digit run ignored, later 3-digit run picked up
		{"Block 4000 room 117 leaking tap", "117", "leaking tap", true},
		// Separator required after the room token
		{"302AC broken", "", "", false},
		// Description left after trimming separators must be non-empty
		{"Room 302 -:|", "", "", false},
		{"Room 302", "", "", false},
		// Pipe format with free-text area name
		{"Kitchen | Extractor fan rattling", "Kitchen", "Extractor fan rattling", true},
		{"Lobby|Carpet stained", "Lobby", "Carpet stained", true},
		{"| missing room", "", "", false},
		{"Pool |", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			room, desc, ok := matchJobLine(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("matchJobLine(%q): ok=%v, want %v", tt.input, ok, tt.wantOK)
			}
			if room != tt.wantRoom {
				t.Errorf("room: got %q, want %q", room, tt.wantRoom)
			}
			if desc != tt.wantDesc {
				t.Errorf("desc: got %q, want %q", desc, tt.wantDesc)
			}
		})
	}
}

func TestExtractJobs(t *testing.T) {
	text := "Room 302 - Door lock not working\n105: AC not cooling\nRm 407 Toilet blocked\nrandom unrelated line"
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	got := ExtractJobs(text, now)

	if len(got.Jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(got.Jobs))
	}
	if got.Skipped != 1 {
		t.Errorf("expected 1 skipped line, got %d", got.Skipped)
	}

	wantRooms := []string{"302", "105", "407"}
	wantDescs := []string{"Door lock not working", "AC not cooling", "Toilet blocked"}
	for i, job := range got.Jobs {
		if job.Room != wantRooms[i] {
			t.Errorf("job %d: room %q, want %q", i, job.Room, wantRooms[i])
		}
		if job.Description != wantDescs[i] {
			t.Errorf("job %d: description %q, want %q", i, job.Description, wantDescs[i])
		}
		if job.Status != "Open" {
			t.Errorf("job %d: status %q, want Open", i, job.Status)
		}
		if !job.Timestamp.Equal(now) {
			t.Errorf("job %d: timestamp %v, want %v", i, job.Timestamp, now)
		}
		if job.ID == "" {
			t.Errorf("job %d: missing ID", i)
		}
	}
}

func TestExtractJobsEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\n", "\r\n \r\n"} {
		got := ExtractJobs(input, time.Now())
		if len(got.Jobs) != 0 || got.Skipped != 0 {
			t.Errorf("ExtractJobs(%q): got %d jobs, %d skipped; want none", input, len(got.Jobs), got.Skipped)
		}
	}
}

// Re-extracting an already extracted description yields the same description.
func TestExtractJobsIdempotent(t *testing.T) {
	first := ExtractJobs("Room 302 - Door lock not working", time.Now())
	if len(first.Jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(first.Jobs))
	}

	refed := first.Jobs[0].Room + " " + first.Jobs[0].Description
	second := ExtractJobs(refed, time.Now())
	if len(second.Jobs) != 1 {
		t.Fatalf("re-extraction: expected 1 job, got %d", len(second.Jobs))
	}
	if second.Jobs[0].Description != first.Jobs[0].Description {
		t.Errorf("re-extracted description %q, want %q", second.Jobs[0].Description, first.Jobs[0].Description)
	}
	if second.Jobs[0].Room != first.Jobs[0].Room {
		t.Errorf("re-extracted room %q, want %q", second.Jobs[0].Room, first.Jobs[0].Room)
	}
}
