package gateway

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cash-audit/internal/domain"
)

func TestDemoData(t *testing.T) {
	ledger, bank, err := DemoData()
	require.NoError(t, err)
	require.Len(t, ledger, 9)
	require.Len(t, bank, 8)

	assert.True(t, ledger[0].IsOpeningBalance())
	assert.Equal(t, "L-009", ledger[8].ID)
	assert.True(t, ledger[8].Amount.Equal(decimal.NewFromInt(999999)))

	assert.Equal(t, "B-007", bank[6].ID)
	assert.Equal(t, domain.BankEntryDebit, bank[6].Type)
	assert.True(t, bank[6].Amount.Equal(decimal.NewFromInt(250000)))

	for _, tx := range ledger {
		assert.False(t, tx.IsReconciled, tx.ID)
	}
}

func TestImportTemplate(t *testing.T) {
	out, err := ImportTemplate()
	require.NoError(t, err)

	ledgerAt := strings.Index(out, "GENERAL LEDGER FORMAT:")
	bankAt := strings.Index(out, "BANK STATEMENT FORMAT:")
	require.NotEqual(t, -1, ledgerAt)
	require.Greater(t, bankAt, ledgerAt)

	ledgerPart, bankPart := out[ledgerAt:bankAt], out[bankAt:]
	assert.Contains(t, ledgerPart, `"L-001"`)
	assert.Contains(t, ledgerPart, `"L-002"`)
	assert.NotContains(t, ledgerPart, `"L-003"`)
	assert.Contains(t, bankPart, `"B-001"`)
	assert.Contains(t, bankPart, `"B-002"`)
	assert.NotContains(t, bankPart, `"B-003"`)

	// The template rows must be importable as-is.
	start := strings.Index(ledgerPart, "[")
	rows, err := DecodeLedger(strings.NewReader(ledgerPart[start:]))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
