package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	txns := []Transaction{
		{Date: "04/16", Amount: "20.00", Description: "Gas"},
		{Date: "04/15", Amount: "123.45", Description: "Groceries"},
		{Date: "04/14", Amount: "1250.00", Description: "Payroll"},
	}

	assert.Equal(t, "1393.45", Total(txns).StringFixed(2))
}

func TestTotalEmpty(t *testing.T) {
	assert.Equal(t, "0.00", Total(nil).StringFixed(2))
}

func TestTotalSkipsUnparsable(t *testing.T) {
	txns := []Transaction{
		{Amount: "10.00"},
		{Amount: "not a number"},
		{Amount: "5.50"},
	}

	assert.Equal(t, "15.50", Total(txns).StringFixed(2))
}
