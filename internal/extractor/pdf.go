package extractor

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a bank-statement PDF and returns the text of each
// page, so the statement parser can treat an upload the same as a paste.
// If the Go PDF library returns nothing readable, falls back to the
// external pdftotext command (poppler-utils).
func ExtractText(filePath string) ([]string, error) {
	pages, libErr := extractWithLibrary(filePath)
	if libErr == nil && isReadableText(pages) {
		return pages, nil
	}

	popplerPages, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && isReadableText(popplerPages) {
		return popplerPages, nil
	}

	if libErr != nil {
		return nil, fmt.Errorf("PDF text extraction failed: %v. The PDF may be image-based/scanned; paste the statement text instead", libErr)
	}
	return nil, fmt.Errorf("no readable text could be extracted from PDF; paste the statement text instead")
}

// ExtractTextCombined reads a PDF and returns all text as one blob.
func ExtractTextCombined(filePath string) (string, error) {
	pages, err := ExtractText(filePath)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n"), nil
}

// extractWithLibrary pulls text with ledongthuc/pdf, preferring the
// row-based read which keeps amounts on the same line as their narrative.
func extractWithLibrary(filePath string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}

	if isReadableText(pages) {
		return pages, nil
	}

	// Row read produced garbage; try the whole-document plain-text path.
	reader, ptErr := r.GetPlainText()
	if ptErr != nil {
		return pages, nil
	}
	data, readErr := io.ReadAll(reader)
	if readErr != nil {
		return pages, nil
	}
	if text := strings.TrimSpace(string(data)); text != "" {
		return []string{text}, nil
	}
	return pages, nil
}

// extractWithPdftotext shells out to poppler-utils as a last resort for
// encodings the Go library cannot decode.
func extractWithPdftotext(filePath string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %v", err)
	}

	out, err := exec.Command("pdftotext", "-layout", filePath, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %v", err)
	}
	text := strings.TrimSpace(string(out))
	if text == "" {
		return nil, fmt.Errorf("pdftotext produced no output")
	}
	return strings.Split(text, "\f"), nil
}

// statementWords appear in virtually all bank statements. Extracted text
// containing none of them is likely garbage from a custom font encoding.
var statementWords = []string{
	"bank", "account", "balance", "date", "payment", "statement",
	"total", "amount", "credit", "debit", "transaction", "transfer",
}

// isReadableText requires enough text, a high ratio of plain ASCII, and
// at least one word a statement would contain.
func isReadableText(pages []string) bool {
	total, readable := 0, 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r) ||
				unicode.IsSpace(r) || strings.ContainsRune(`.,-/:;()'"$%&@#!?+=*`, r)) {
				readable++
			}
			if r == '£' || r == '€' {
				readable++
			}
		}
	}
	if total <= 50 || float64(readable)/float64(total) <= 0.6 {
		return false
	}

	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range statementWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}
