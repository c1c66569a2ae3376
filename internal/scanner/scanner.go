// Package scanner walks a statement one line at a time, driving a fixed
// seven-phase state machine over the grammar recognizers and folding every
// match into the running credit and debit lists.
package scanner

import (
	"fmt"
	"strings"

	"github.com/insightdelivered/stmtscan/internal/grammar"
	"github.com/insightdelivered/stmtscan/internal/models"
)

// Phase is the scanner's current expectation about what kind of line comes
// next. Exactly one phase is active at any point; phases are visited in
// declaration order and never revisited.
type Phase int

const (
	SearchingCreditTitle Phase = iota
	SearchingCreditHeader
	ScanningCredits
	SearchingDebitTitle
	SearchingDebitHeader
	ScanningDebits
	Done
)

var phaseNames = [...]string{
	SearchingCreditTitle:  "SearchingCreditTitle",
	SearchingCreditHeader: "SearchingCreditHeader",
	ScanningCredits:       "ScanningCredits",
	SearchingDebitTitle:   "SearchingDebitTitle",
	SearchingDebitHeader:  "SearchingDebitHeader",
	ScanningDebits:        "ScanningDebits",
	Done:                  "Done",
}

func (p Phase) String() string {
	if p < SearchingCreditTitle || p > Done {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// State is the accumulator threaded through the scan. Newly recognized
// transactions are prepended, so Credits and Debits end up in reverse
// document order: last recognized first. That ordering is part of the
// output contract; callers that want document order must reverse the lists
// themselves.
type State struct {
	Phase   Phase
	Credits []models.Transaction
	Debits  []models.Transaction
}

// MalformedDocumentError reports a scan that consumed all input without the
// debit section ever ending. The partial lists are deliberately withheld:
// a document that never reaches the terminal phase has no usable result.
type MalformedDocumentError struct {
	Phase Phase
	Line  int
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed statement: input ended at line %d while still in phase %s", e.Line, e.Phase)
}

// Scanner runs the line-by-line scan. The zero value is ready to use.
type Scanner struct {
	// Strict makes transaction rows match only when they consume their
	// whole line, refusing rows whose description is cut short by a comma.
	Strict bool
}

// Scan splits text into lines and folds them through the state machine,
// starting in SearchingCreditTitle with both lists empty. It returns the
// terminal state the instant Done is reached, ignoring any remaining lines.
// Reaching end of input in any other phase is a hard failure: no partial
// result is returned. Deterministic for identical input.
func (s *Scanner) Scan(text string) (*State, error) {
	st := &State{Phase: SearchingCreditTitle}

	lineNum := 0
	for _, line := range strings.Split(text, "\n") {
		lineNum++
		s.step(st, strings.TrimSuffix(line, "\r"))
		if st.Phase == Done {
			return st, nil
		}
	}

	return nil, &MalformedDocumentError{Phase: st.Phase, Line: lineNum}
}

// step applies the recognizer relevant to the current phase and performs the
// success or failure transition. Recognizer failure is never an error: while
// searching it means "keep looking", and while scanning it means the section
// has ended.
func (s *Scanner) step(st *State, line string) {
	switch st.Phase {
	case SearchingCreditTitle:
		if grammar.CreditTitle(line) {
			st.Phase = SearchingCreditHeader
		}
	case SearchingCreditHeader:
		if grammar.Header(line) {
			st.Phase = ScanningCredits
		}
	case ScanningCredits:
		if txn, ok := s.row(line); ok {
			st.Credits = append([]models.Transaction{txn}, st.Credits...)
		} else {
			st.Phase = SearchingDebitTitle
		}
	case SearchingDebitTitle:
		if grammar.DebitTitle(line) {
			st.Phase = SearchingDebitHeader
		}
	case SearchingDebitHeader:
		if grammar.Header(line) {
			st.Phase = ScanningDebits
		}
	case ScanningDebits:
		if txn, ok := s.row(line); ok {
			st.Debits = append([]models.Transaction{txn}, st.Debits...)
		} else {
			st.Phase = Done
		}
	}
}

func (s *Scanner) row(line string) (models.Transaction, bool) {
	if s.Strict {
		return grammar.TransactionStrict(line)
	}
	return grammar.Transaction(line)
}

// Scan runs a scan with the default (lenient) row matching.
func Scan(text string) (*State, error) {
	return (&Scanner{}).Scan(text)
}
