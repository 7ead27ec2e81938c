package parser

import (
	"testing"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected models.InputKind
	}{
		{
			"job list",
			"Room 302 - Door lock not working\n105: AC not cooling\nRm 407 Toilet blocked",
			models.InputJobs,
		},
		{
			"bank statement",
			"04/07 Transfer to CommBank -$316.70\n05/07 Direct Debit -$98.00\n06/07 POS -$12.40",
			models.InputStatement,
		},
		{
			"neither defaults to jobs",
			"hello\nworld",
			models.InputJobs,
		},
		{
			"empty defaults to jobs",
			"",
			models.InputJobs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectKind(tt.input)
			if got != tt.expected {
				t.Errorf("DetectKind: got %q, want %q", got, tt.expected)
			}
		})
	}
}
