package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = `  3 DEPOSITS/CREDITS
 Date  Amount  Description
 04/15 123.45 Groceries
 04/16 20.00 Gas

 2 CHARGES/DEBITS
 Date Amount Description
 04/17 50.00 Rent
`

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "statement.txt")
	require.NoError(t, os.WriteFile(input, []byte(sampleStatement), 0o644))

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"convert", input})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "2 credit(s) totaling 143.45")
	assert.Contains(t, out.String(), "1 debit(s) totaling 50.00")

	credits, err := os.ReadFile(filepath.Join(dir, "statement.credits.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Date,Amount,Description\n04/16,20.00,Gas\n04/15,123.45,Groceries\n", string(credits))

	debits, err := os.ReadFile(filepath.Join(dir, "statement.debits.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Date,Amount,Description\n04/17,50.00,Rent\n", string(debits))
}

func TestConvertCommandOutputBase(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "statement.txt")
	require.NoError(t, os.WriteFile(input, []byte(sampleStatement), 0o644))

	base := filepath.Join(dir, "tables")
	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"convert", "--output", base, input})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, base+".credits.csv")
	assert.FileExists(t, base+".debits.csv")
}

func TestConvertCommandMalformed(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "statement.txt")
	require.NoError(t, os.WriteFile(input, []byte("not a statement\n"), 0o644))

	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"convert", input})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed statement")

	// no best-effort partial export
	assert.NoFileExists(t, filepath.Join(dir, "statement.credits.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "statement.debits.csv"))
}

func TestConvertCommandMissingInput(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"convert", filepath.Join(t.TempDir(), "nope.txt")})

	require.Error(t, cmd.Execute())
}
