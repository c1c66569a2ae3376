package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/insightdelivered/stmtscan/internal/extractor"
	"github.com/insightdelivered/stmtscan/internal/models"
	"github.com/insightdelivered/stmtscan/internal/scanner"
	"github.com/insightdelivered/stmtscan/internal/writer"
)

func newConvertCommand() *cobra.Command {
	var (
		output string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "convert <statement.pdf|statement.txt> [more files...]",
		Short: "Scan statements and write credit/debit CSV tables",
		Long: `Convert reads each statement, locates the DEPOSITS/CREDITS and
CHARGES/DEBITS sections, and writes one CSV table per section next to the
input file (or under the --output base path). Rows come out in the scanner's
accumulated order: the last transaction in the document first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := convertFile(cmd, path, output, strict); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "base path for the output tables (default: input path without extension)")
	cmd.Flags().BoolVar(&strict, "strict", false, "require transaction rows to consume their whole line")

	return cmd
}

func convertFile(cmd *cobra.Command, path, output string, strict bool) error {
	text, err := readStatement(path)
	if err != nil {
		return err
	}

	sc := &scanner.Scanner{Strict: strict}
	st, err := sc.Scan(text)
	if err != nil {
		return err
	}

	stmt := &models.Statement{
		Source:  filepath.Base(path),
		Credits: st.Credits,
		Debits:  st.Debits,
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(path, filepath.Ext(path))
	}

	w := &writer.CSVWriter{}
	creditsPath, debitsPath, err := w.WriteFiles(base, stmt)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processed: %s\n", path)
	fmt.Fprintf(out, "  %d credit(s) totaling %s -> %s\n",
		len(stmt.Credits), models.Total(stmt.Credits).StringFixed(2), creditsPath)
	fmt.Fprintf(out, "  %d debit(s) totaling %s -> %s\n",
		len(stmt.Debits), models.Total(stmt.Debits).StringFixed(2), debitsPath)
	return nil
}

// readStatement extracts text from a PDF input, or reads any other file as
// pre-extracted statement text.
func readStatement(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("input file not found: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extractor.ExtractText(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
