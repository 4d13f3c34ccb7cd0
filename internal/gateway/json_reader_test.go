package gateway

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cash-audit/internal/domain"
)

func TestDecodeLedger(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantLen   int
		wantField string
	}{
		{
			name: "valid rows",
			payload: `[
				{"id": "L-001", "date": "2023-12-01", "description": "Saldo Awal", "amount": 500000000, "type": "Debit", "refNumber": "SA"},
				{"id": "L-003", "date": "2023-12-10", "description": "Pembayaran Vendor", "amount": "75000000.25", "type": "Credit", "refNumber": "CK-101", "isReconciled": true}
			]`,
			wantLen: 2,
		},
		{
			name:    "empty array",
			payload: `[]`,
			wantLen: 0,
		},
		{
			name:      "object instead of array",
			payload:   `{"id": "L-001"}`,
			wantField: "ledger",
		},
		{
			name:      "malformed JSON",
			payload:   `[{"id": "L-001",`,
			wantField: "ledger",
		},
		{
			name:      "unknown type",
			payload:   `[{"id": "L-001", "date": "2023-12-01", "amount": 1, "type": "DB"}]`,
			wantField: "ledger[0].type",
		},
		{
			name:      "negative amount",
			payload:   `[{"id": "L-001", "date": "2023-12-01", "amount": -1, "type": "Debit"}]`,
			wantField: "ledger[0].amount",
		},
		{
			name:      "missing amount",
			payload:   `[{"id": "L-001", "date": "2023-12-01", "type": "Debit"}]`,
			wantField: "ledger[0].amount",
		},
		{
			name:      "bad date",
			payload:   `[{"id": "L-001", "date": "31-12-2023", "amount": 1, "type": "Debit"}]`,
			wantField: "ledger[0].date",
		},
		{
			name:      "missing id",
			payload:   `[{"date": "2023-12-01", "amount": 1, "type": "Debit"}]`,
			wantField: "ledger[0].id",
		},
		{
			name: "duplicate id",
			payload: `[
				{"id": "L-001", "date": "2023-12-01", "amount": 1, "type": "Debit"},
				{"id": "L-001", "date": "2023-12-02", "amount": 2, "type": "Credit"}
			]`,
			wantField: "ledger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeLedger(strings.NewReader(tt.payload))
			if tt.wantField != "" {
				var verr *domain.ValidationError
				require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestDecodeLedger_Fields(t *testing.T) {
	got, err := DecodeLedger(strings.NewReader(`[
		{"id": "L-003", "date": "2023-12-10", "description": "Pembayaran Vendor", "amount": "75000000.25", "type": "Credit", "refNumber": "CK-101", "isReconciled": true}
	]`))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assertLedgerTransaction(t, domain.LedgerTransaction{
		ID:           "L-003",
		Date:         mustParseDate("2023-12-10"),
		Description:  "Pembayaran Vendor",
		Amount:       decimal.RequireFromString("75000000.25"),
		Type:         domain.TransactionTypeCredit,
		RefNumber:    "CK-101",
		IsReconciled: true,
	}, got[0])
}

func TestDecodeBank(t *testing.T) {
	t.Run("valid rows", func(t *testing.T) {
		got, err := DecodeBank(strings.NewReader(`[
			{"id": "B-007", "date": "2023-12-31", "description": "BIAYA ADM BANK", "amount": 250000, "type": "DB", "refNumber": "ADM"}
		]`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assertBankItem(t, domain.BankStatementItem{
			ID:          "B-007",
			Date:        mustParseDate("2023-12-31"),
			Description: "BIAYA ADM BANK",
			Amount:      decimal.NewFromInt(250000),
			Type:        domain.BankEntryDebit,
			RefNumber:   "ADM",
		}, got[0])
	})

	t.Run("ledger type is rejected", func(t *testing.T) {
		_, err := DecodeBank(strings.NewReader(`[{"id": "B-001", "date": "2023-12-01", "amount": 1, "type": "Debit"}]`))
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "bank[0].type", verr.Field)
	})

	t.Run("scalar payload is rejected", func(t *testing.T) {
		_, err := DecodeBank(strings.NewReader(`"not a list"`))
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Reason, "JSON array")
	})
}

func TestJSONTransactionRepository(t *testing.T) {
	dir := t.TempDir()
	ledgerPath := filepath.Join(dir, "ledger.json")
	bankPath := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(ledgerPath, []byte(`[{"id": "L-001", "date": "2023-12-01", "amount": 1, "type": "Debit"}]`), 0o600))
	require.NoError(t, os.WriteFile(bankPath, []byte(`[{"id": "B-001", "date": "2023-12-01", "amount": 1, "type": "CR"}]`), 0o600))

	repo := NewJSONTransactionRepository()
	ctx := context.Background()

	ledger, err := repo.GetLedgerTransactions(ctx, ledgerPath)
	require.NoError(t, err)
	assert.Len(t, ledger, 1)

	bank, err := repo.GetBankStatementItems(ctx, bankPath)
	require.NoError(t, err)
	assert.Len(t, bank, 1)

	_, err = repo.GetLedgerTransactions(ctx, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	// Swapped files fail validation.
	_, err = repo.GetLedgerTransactions(ctx, bankPath)
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
}
