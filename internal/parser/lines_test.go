package parser

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"unix endings", "a\nb\nc", []string{"a", "b", "c"}},
		{"windows endings", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"bare carriage returns", "a\rb", []string{"a", "b"}},
		{"mixed endings", "a\r\nb\nc\r", []string{"a", "b", "c"}},
		{"blank lines dropped", "a\n\n  \nb", []string{"a", "b"}},
		{"whitespace trimmed", "  a  \n\tb\t", []string{"a", "b"}},
		{"empty input", "", nil},
		{"whitespace only", "  \n \t \n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitLines(%q): got %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
