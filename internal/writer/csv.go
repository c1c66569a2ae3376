// Package writer exports scanned transactions as comma-delimited tables,
// one per transaction class.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/stmtscan/internal/models"
)

// Columns is the fixed header row of every exported table.
var Columns = []string{"Date", "Amount", "Description"}

// CSVWriter writes credit and debit tables in CSV form. Rows are emitted in
// the order they arrive from the scanner, which is reverse document order.
type CSVWriter struct{}

// WriteTable writes one transaction class: the fixed header followed by one
// row per transaction. encoding/csv applies double-quote escaping to any
// field that needs it.
func (w *CSVWriter) WriteTable(out io.Writer, txns []models.Transaction) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, txn := range txns {
		if err := cw.Write([]string{txn.Date, txn.Amount, txn.Description}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write writes both tables to a single writer, credits first, separated by a
// blank line. Used by the HTTP surface, which returns one CSV blob.
func (w *CSVWriter) Write(out io.Writer, stmt *models.Statement) error {
	if err := w.WriteTable(out, stmt.Credits); err != nil {
		return err
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return fmt.Errorf("failed to write table separator: %w", err)
	}
	return w.WriteTable(out, stmt.Debits)
}

// WriteFiles writes <base>.credits.csv and <base>.debits.csv and returns the
// two paths. Write failures are propagated as-is, without cleanup of a
// partially written pair.
func (w *CSVWriter) WriteFiles(base string, stmt *models.Statement) (creditsPath, debitsPath string, err error) {
	creditsPath = base + ".credits.csv"
	debitsPath = base + ".debits.csv"

	if err := w.writeFile(creditsPath, stmt.Credits); err != nil {
		return "", "", err
	}
	if err := w.writeFile(debitsPath, stmt.Debits); err != nil {
		return "", "", err
	}
	return creditsPath, debitsPath, nil
}

func (w *CSVWriter) writeFile(path string, txns []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.WriteTable(f, txns)
}
