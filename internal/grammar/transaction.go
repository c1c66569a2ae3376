package grammar

import (
	"strings"

	"github.com/insightdelivered/stmtscan/internal/models"
)

// Transaction recognizes one statement row: optional leading whitespace,
// then date, amount, and description with optional whitespace between them.
//
// Only a matching prefix is required. In particular, a comma inside the
// description field truncates it: the text before the comma is captured and
// the remainder of the line is silently discarded. TransactionStrict is the
// opt-in variant that refuses such rows.
func Transaction(line string) (models.Transaction, bool) {
	txn, _, ok := transactionPrefix(line)
	return txn, ok
}

// TransactionStrict recognizes a statement row only if it consumes the
// whole line.
func TransactionStrict(line string) (models.Transaction, bool) {
	txn, rest, ok := transactionPrefix(line)
	if !ok || rest != "" {
		return models.Transaction{}, false
	}
	return txn, true
}

func transactionPrefix(line string) (models.Transaction, string, bool) {
	s := skipSpace(line)

	date, s, ok := Date(s)
	if !ok {
		return models.Transaction{}, line, false
	}

	amount, s, ok := Amount(skipSpace(s))
	if !ok {
		return models.Transaction{}, line, false
	}

	desc, s, ok := Description(skipSpace(s))
	if !ok {
		return models.Transaction{}, line, false
	}

	return models.Transaction{Date: date, Amount: amount, Description: desc}, s, true
}

func skipSpace(s string) string {
	return strings.TrimLeft(s, " \t")
}
