// Package grammar holds the lexical recognizers for the fixed statement
// layout: date and amount tokens, free-text descriptions, the two section
// titles, and the column header row.
//
// Each recognizer inspects a single line and either succeeds, yielding the
// recognized value and any unconsumed tail, or fails without side effects.
// Failure is ordinary control flow here; it is the signal the document
// scanner uses to drive its phase transitions. None of the recognizers
// require consuming the whole line.
package grammar

import "regexp"

var (
	// DD/DD — two ASCII-digit pairs joined by a slash. No calendar checks.
	dateRe = regexp.MustCompile(`^\d{2}/\d{2}`)

	// Optional thousands group of 1-3 digits plus comma, then 1-3 digits,
	// a point, and exactly 2 fractional digits.
	amountRe = regexp.MustCompile(`^(?:(\d{1,3}),)?(\d{1,3})\.(\d{2})`)

	// Printable ASCII with the comma (0x2C) carved out, so a captured
	// description can never carry the output delimiter.
	descriptionRe = regexp.MustCompile(`^[\x20-\x2b\x2d-\x7e]+`)

	creditTitleRe = regexp.MustCompile(`^\s*\d+\s+DEPOSITS/CREDITS`)
	debitTitleRe  = regexp.MustCompile(`^\s*\d+\s+CHARGES/DEBITS`)
	headerRe      = regexp.MustCompile(`^\s*Date\s*Amount\s*Description`)
)

// Date recognizes a two-digit/two-digit date token at the start of the line,
// e.g. "04/15".
func Date(line string) (value, rest string, ok bool) {
	loc := dateRe.FindStringIndex(line)
	if loc == nil {
		return "", line, false
	}
	return line[:loc[1]], line[loc[1]:], true
}

// Amount recognizes a monetary amount at the start of the line. The
// thousands separator is consumed but dropped and the pieces are
// concatenated, so "1,234.56" yields "1234.56". "12.5" fails (fraction must
// be exactly two digits) and "1234.56" fails (more than three digits before
// the point with no thousands group).
func Amount(line string) (value, rest string, ok bool) {
	m := amountRe.FindStringSubmatchIndex(line)
	if m == nil {
		return "", line, false
	}
	var thousands string
	if m[2] >= 0 {
		thousands = line[m[2]:m[3]]
	}
	value = thousands + line[m[4]:m[5]] + "." + line[m[6]:m[7]]
	return value, line[m[1]:], true
}

// Description recognizes a non-empty run of printable ASCII characters,
// comma excluded. Greedy: it stops at the first byte outside the class and
// leaves the remainder unconsumed.
func Description(line string) (value, rest string, ok bool) {
	loc := descriptionRe.FindStringIndex(line)
	if loc == nil {
		return "", line, false
	}
	return line[:loc[1]], line[loc[1]:], true
}

// CreditTitle reports whether the line is a deposits section title: optional
// leading whitespace, a page/section number, whitespace, then the literal
// DEPOSITS/CREDITS. The number is consumed and dropped.
func CreditTitle(line string) bool {
	return creditTitleRe.MatchString(line)
}

// DebitTitle reports whether the line is a charges section title, same shape
// as CreditTitle with the literal CHARGES/DEBITS.
func DebitTitle(line string) bool {
	return debitTitleRe.MatchString(line)
}

// Header reports whether the line is the column header row: the literals
// Date, Amount, Description in order, case-sensitive, with optional
// whitespace around them.
func Header(line string) bool {
	return headerRe.MatchString(line)
}
