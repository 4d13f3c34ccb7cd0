package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"cash-audit/internal/domain"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func day(d int) time.Time {
	return time.Date(2023, 12, d, 0, 0, 0, 0, time.UTC)
}

func assertDecimal(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

func ledgerTx(id string, d int, desc string, amount int64, typ domain.TransactionType, ref string) domain.LedgerTransaction {
	return domain.LedgerTransaction{ID: id, Date: day(d), Description: desc, Amount: dec(amount), Type: typ, RefNumber: ref}
}

func bankItem(id string, d int, desc string, amount int64, typ domain.BankEntryType, ref string) domain.BankStatementItem {
	return domain.BankStatementItem{ID: id, Date: day(d), Description: desc, Amount: dec(amount), Type: typ, RefNumber: ref}
}

// sampleLedger is the December cash book of the demo engagement.
func sampleLedger() []domain.LedgerTransaction {
	return []domain.LedgerTransaction{
		ledgerTx("L-001", 1, "Saldo Awal", 500000000, domain.TransactionTypeDebit, "SA"),
		ledgerTx("L-002", 5, "Penerimaan Piutang Customer A", 125000000, domain.TransactionTypeDebit, "CR-001"),
		ledgerTx("L-003", 10, "Pembayaran Vendor Bahan Baku", 75000000, domain.TransactionTypeCredit, "CK-101"),
		ledgerTx("L-004", 15, "Pembayaran Gaji Operasional", 45000000, domain.TransactionTypeCredit, "CK-102"),
		ledgerTx("L-005", 20, "Penerimaan Penjualan Tunai", 30000000, domain.TransactionTypeDebit, "CR-002"),
		ledgerTx("L-006", 28, "Pembayaran Listrik & Air", 15000000, domain.TransactionTypeCredit, "CK-103"),
		ledgerTx("L-007", 30, "Penerimaan Pelunasan Piutang B", 55000000, domain.TransactionTypeDebit, "CR-003"),
		ledgerTx("L-008", 31, "Pembayaran Bonus Tahunan", 25000000, domain.TransactionTypeCredit, "CK-104"),
		ledgerTx("L-009", 25, "Koreksi Pencatatan (Suspicious)", 999999, domain.TransactionTypeCredit, "JV-99"),
	}
}

// sampleBank is the matching December bank statement.
func sampleBank() []domain.BankStatementItem {
	return []domain.BankStatementItem{
		bankItem("B-001", 1, "SALDO AWAL", 500000000, domain.BankEntryCredit, ""),
		bankItem("B-002", 6, "TRF DARI CUSTOMER A", 125000000, domain.BankEntryCredit, "REF-123"),
		bankItem("B-003", 12, "CLRG CHQ CK-101", 75000000, domain.BankEntryDebit, "CK-101"),
		bankItem("B-004", 16, "CLRG CHQ CK-102", 45000000, domain.BankEntryDebit, "CK-102"),
		bankItem("B-005", 21, "SETORAN TUNAI", 30000000, domain.BankEntryCredit, "REF-456"),
		bankItem("B-006", 29, "CLRG CHQ CK-103", 15000000, domain.BankEntryDebit, "CK-103"),
		bankItem("B-007", 31, "BIAYA ADM BANK", 250000, domain.BankEntryDebit, "ADM"),
		bankItem("B-008", 31, "JASA GIRO", 1250000, domain.BankEntryCredit, "INT"),
	}
}

func ledgerIDs(txs []domain.LedgerTransaction) []string {
	ids := make([]string, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.ID)
	}
	return ids
}

func bankIDs(items []domain.BankStatementItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
