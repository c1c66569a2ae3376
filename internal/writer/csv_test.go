package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/stmtscan/internal/models"
)

func TestWriteTable(t *testing.T) {
	txns := []models.Transaction{
		{Date: "04/16", Amount: "20.00", Description: "Gas"},
		{Date: "04/15", Amount: "1234.56", Description: "Payroll deposit"},
	}

	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.WriteTable(&buf, txns))

	want := "Date,Amount,Description\n" +
		"04/16,20.00,Gas\n" +
		"04/15,1234.56,Payroll deposit\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTableQuoting(t *testing.T) {
	txns := []models.Transaction{
		{Date: "04/15", Amount: "9.99", Description: `Cafe "Le Matin"`},
	}

	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.WriteTable(&buf, txns))

	assert.Contains(t, buf.String(), `"Cafe ""Le Matin"""`)
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.WriteTable(&buf, nil))

	// header only
	assert.Equal(t, "Date,Amount,Description\n", buf.String())
}

func TestWriteBothTables(t *testing.T) {
	stmt := &models.Statement{
		Credits: []models.Transaction{{Date: "04/16", Amount: "20.00", Description: "Gas"}},
		Debits:  []models.Transaction{{Date: "04/17", Amount: "50.00", Description: "Rent"}},
	}

	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, stmt))

	want := "Date,Amount,Description\n" +
		"04/16,20.00,Gas\n" +
		"\n" +
		"Date,Amount,Description\n" +
		"04/17,50.00,Rent\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteFiles(t *testing.T) {
	stmt := &models.Statement{
		Credits: []models.Transaction{{Date: "04/16", Amount: "20.00", Description: "Gas"}},
		Debits:  []models.Transaction{{Date: "04/17", Amount: "50.00", Description: "Rent"}},
	}

	base := filepath.Join(t.TempDir(), "statement")
	w := &CSVWriter{}
	creditsPath, debitsPath, err := w.WriteFiles(base, stmt)
	require.NoError(t, err)
	assert.Equal(t, base+".credits.csv", creditsPath)
	assert.Equal(t, base+".debits.csv", debitsPath)

	credits, err := os.ReadFile(creditsPath)
	require.NoError(t, err)
	assert.Equal(t, "Date,Amount,Description\n04/16,20.00,Gas\n", string(credits))

	debits, err := os.ReadFile(debitsPath)
	require.NoError(t, err)
	assert.Equal(t, "Date,Amount,Description\n04/17,50.00,Rent\n", string(debits))
}

func TestWriteFilesBadPath(t *testing.T) {
	w := &CSVWriter{}
	_, _, err := w.WriteFiles(filepath.Join(t.TempDir(), "missing", "dir", "out"), &models.Statement{})
	require.Error(t, err)
}
