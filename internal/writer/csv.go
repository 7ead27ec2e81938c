package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
)

// CSVWriter renders derived reports as CSV downloads for the UI layer.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteMaterials writes the materials-needed list, sorted by item name so
// output is stable run to run.
func (w *CSVWriter) WriteMaterials(out io.Writer, needed map[string]int) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		if err := writer.Write([]string{"Material", "Quantity"}); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	items := make([]string, 0, len(needed))
	for item := range needed {
		items = append(items, item)
	}
	sort.Strings(items)

	for _, item := range items {
		if err := writer.Write([]string{item, strconv.Itoa(needed[item])}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteDuplicates writes the duplicate-debit report, one row per entry,
// groups in the order given (ascending amount).
func (w *CSVWriter) WriteDuplicates(out io.Writer, groups []models.DuplicateGroup) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		if err := writer.Write([]string{"Amount", "Institute", "Line"}); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	for _, g := range groups {
		for _, e := range g.Entries {
			row := []string{formatAmount(g.Amount), e.Counterparty, e.RawLine}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteMaterialsFile writes the materials list to a CSV file at the given path.
func (w *CSVWriter) WriteMaterialsFile(path string, needed map[string]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.WriteMaterials(f, needed)
}

// WriteDuplicatesFile writes the duplicate report to a CSV file at the given path.
func (w *CSVWriter) WriteDuplicatesFile(path string, groups []models.DuplicateGroup) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.WriteDuplicates(f, groups)
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
