// Package extractor turns a source statement PDF into plain text with the
// layout preserved, which is the single-string input the document scanner
// expects. Extraction failures are propagated to the caller unchanged; there
// are no retries.
package extractor

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a PDF file and returns its full text content. It tries
// the in-process PDF library first, then the external pdftotext tool with
// layout preservation, and finally OCR for scanned statements. Output that
// fails the readability gate is treated the same as a failed method so that
// garbage never reaches the scanner.
func ExtractText(path string) (string, error) {
	text, libErr := extractWithLibrary(path)
	if libErr == nil && IsReadableText(text) {
		return text, nil
	}

	text, toolErr := extractWithPdftotext(path)
	if toolErr == nil && IsReadableText(text) {
		return text, nil
	}

	text, ocrErr := ExtractTextOCR(path)
	if ocrErr == nil && IsReadableText(text) {
		return text, nil
	}

	if libErr != nil {
		return "", fmt.Errorf("text extraction failed: %w", libErr)
	}
	return "", fmt.Errorf("no readable text could be extracted from %q; the file may be image-based or use font encodings that cannot be decoded", path)
}

// extractWithLibrary uses the ledongthuc/pdf library, preferring row-based
// extraction because it keeps columns on one line. The library is known to
// panic on malformed files, so the panic is converted into an error.
func extractWithLibrary(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	if text := extractByRow(r); IsReadableText(text) {
		return text, nil
	}

	// Row extraction produced garbage; try the whole-document path, which
	// decodes through a different code route in the library.
	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func extractByRow(r *pdf.Reader) string {
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
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
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n")
}

// extractWithPdftotext shells out to pdftotext (poppler-utils) with the
// -layout option so column positions survive into the text.
func extractWithPdftotext(path string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %w", err)
	}

	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", fmt.Errorf("pdftotext produced no output")
	}
	return text, nil
}

// statementWords are words expected in any statement this tool handles. If
// the extracted text contains none of them, it is almost certainly garbage
// from an identity-encoded font.
var statementWords = []string{
	"deposits", "credits", "charges", "debits",
	"date", "amount", "description", "statement", "account",
}

// IsReadableText reports whether extracted text is plausible statement
// content: enough of it, mostly readable ASCII, and containing at least one
// expected word.
func IsReadableText(text string) bool {
	if len(strings.TrimSpace(text)) <= 50 {
		return false
	}
	if textQuality(text) <= 0.6 {
		return false
	}
	lower := strings.ToLower(text)
	for _, word := range statementWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// textQuality returns the ratio of readable characters (ASCII letters,
// digits, whitespace, common punctuation) to total characters. A strict
// ASCII check is used on purpose: unicode.IsLetter also matches the accented
// garbage produced by undecodable fonts.
func textQuality(text string) float64 {
	total := 0
	readable := 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(`.,-/:;()'"$%&@#!?+=*`, r) {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}
