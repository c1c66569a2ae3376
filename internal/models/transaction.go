package models

import "github.com/shopspring/decimal"

// Transaction represents a single recognized statement line. Amount is kept
// as the normalized decimal string produced by the grammar (thousands
// separator removed, exactly two fractional digits). Immutable once produced.
type Transaction struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// Statement holds the terminal scan result handed to the output surfaces.
//
// Credits and Debits are in the scanner's accumulated order: each recognized
// transaction was prepended to its list, so the last transaction in the
// document comes first. Callers that need document order must reverse.
type Statement struct {
	Source  string        `json:"source,omitempty"`
	Credits []Transaction `json:"credits"`
	Debits  []Transaction `json:"debits"`
}

// Total sums the amounts of one transaction class for display summaries.
// Amounts come pre-normalized from the grammar, so parse failures are not
// expected; any that occur are skipped rather than propagated.
func Total(txns []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range txns {
		d, err := decimal.NewFromString(txn.Amount)
		if err != nil {
			continue
		}
		sum = sum.Add(d)
	}
	return sum
}
