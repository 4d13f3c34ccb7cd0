package usecase

import (
	"github.com/shopspring/decimal"

	"cash-audit/internal/domain"
)

// EndingBookBalance is the opening balance plus receipts minus disbursements.
// The first opening-balance entry is the base. No opening-balance entry is summed as a
// receipt or a disbursement.
func EndingBookBalance(ledger []domain.LedgerTransaction) decimal.Decimal {
	opening, found := decimal.Zero, false
	debits, credits := decimal.Zero, decimal.Zero
	for _, tx := range ledger {
		if tx.IsOpeningBalance() {
			if !found {
				opening, found = tx.Amount, true
			}
			continue
		}
		switch tx.Type {
		case domain.TransactionTypeDebit:
			debits = debits.Add(tx.Amount)
		case domain.TransactionTypeCredit:
			credits = credits.Add(tx.Amount)
		}
	}
	return opening.Add(debits).Sub(credits)
}

// EndingBankBalance is deposits minus withdrawals over the whole statement, the statement's
// own opening line included.
func EndingBankBalance(bank []domain.BankStatementItem) decimal.Decimal {
	balance := decimal.Zero
	for _, item := range bank {
		switch item.Type {
		case domain.BankEntryCredit:
			balance = balance.Add(item.Amount)
		case domain.BankEntryDebit:
			balance = balance.Sub(item.Amount)
		}
	}
	return balance
}

func sumLedger(txs []domain.LedgerTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

func sumBank(items []domain.BankStatementItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
