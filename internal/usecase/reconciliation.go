package usecase

import (
	"github.com/shopspring/decimal"

	"cash-audit/internal/domain"
)

// Reconcile matches ledger entries against the bank statement and derives the adjusted
// balances. The bank-side ending balance is summed from the statement lines.
// Inputs are not mutated.
func Reconcile(ledger []domain.LedgerTransaction, bank []domain.BankStatementItem) (domain.ReconciliationResult, error) {
	return ReconcileWithStatementBalance(ledger, bank, decimal.NullDecimal{})
}

// ReconcileWithStatementBalance is Reconcile with the closing balance printed on the bank
// statement. When closing is not valid the balance is derived from the statement lines.
//
// The result is always populated. A *domain.DiscrepancyError is returned alongside it when
// the adjusted book and adjusted bank balances do not agree.
func ReconcileWithStatementBalance(ledger []domain.LedgerTransaction, bank []domain.BankStatementItem, closing decimal.NullDecimal) (domain.ReconciliationResult, error) {
	result := domain.ReconciliationResult{
		Matches:           make([]domain.Match, 0),
		OutstandingChecks: make([]domain.LedgerTransaction, 0),
		DepositsInTransit: make([]domain.LedgerTransaction, 0),
		BankCharges:       make([]domain.BankStatementItem, 0),
		UnknownDiffs:      make([]domain.BankStatementItem, 0),
	}

	// Step 1: Greedy single pass, ledger order drives, first eligible bank line wins.
	matchedLedger := make(map[int]bool)
	matchedBank := make(map[int]bool)

	for i, ledgerTx := range ledger {
		target := domain.CounterpartOf(ledgerTx.Type)
		for j, bankTx := range bank {
			if matchedBank[j] || bankTx.Type != target || !bankTx.Amount.Equal(ledgerTx.Amount) {
				continue
			}
			matchedLedger[i] = true
			matchedBank[j] = true
			result.Matches = append(result.Matches, domain.Match{
				LedgerID: ledgerTx.ID,
				BankID:   bankTx.ID,
				Amount:   ledgerTx.Amount,
			})
			break
		}
	}

	// Step 2: Partition everything left over into the four outstanding categories.
	for i, ledgerTx := range ledger {
		if matchedLedger[i] {
			continue
		}
		if ledgerTx.Type == domain.TransactionTypeCredit {
			result.OutstandingChecks = append(result.OutstandingChecks, ledgerTx)
		} else {
			result.DepositsInTransit = append(result.DepositsInTransit, ledgerTx)
		}
	}
	for j, bankTx := range bank {
		if matchedBank[j] {
			continue
		}
		if bankTx.Type == domain.BankEntryDebit {
			result.BankCharges = append(result.BankCharges, bankTx)
		} else {
			result.UnknownDiffs = append(result.UnknownDiffs, bankTx)
		}
	}

	// Step 3: Balances. Book side is adjusted for what only the bank knows about,
	// bank side for what only the book knows about.
	result.EndingBookBalance = EndingBookBalance(ledger)
	result.AdjustedBookBalance = result.EndingBookBalance.
		Sub(sumBank(result.BankCharges)).
		Add(sumBank(result.UnknownDiffs))

	if closing.Valid {
		result.EndingBankBalance = closing.Decimal
	} else {
		result.EndingBankBalance = EndingBankBalance(bank)
	}
	result.AdjustedBankBalance = result.EndingBankBalance.
		Add(sumLedger(result.DepositsInTransit)).
		Sub(sumLedger(result.OutstandingChecks))

	if !result.Reconciled() {
		return result, &domain.DiscrepancyError{
			AdjustedBook: result.AdjustedBookBalance,
			AdjustedBank: result.AdjustedBankBalance,
		}
	}
	return result, nil
}

// MarkReconciled returns copies of ledger and bank with IsReconciled set on every record
// that took part in a match.
func MarkReconciled(ledger []domain.LedgerTransaction, bank []domain.BankStatementItem, matches []domain.Match) ([]domain.LedgerTransaction, []domain.BankStatementItem) {
	ledgerIDs := make(map[string]bool, len(matches))
	bankIDs := make(map[string]bool, len(matches))
	for _, m := range matches {
		ledgerIDs[m.LedgerID] = true
		bankIDs[m.BankID] = true
	}

	outLedger := make([]domain.LedgerTransaction, len(ledger))
	for i, tx := range ledger {
		tx.IsReconciled = ledgerIDs[tx.ID]
		outLedger[i] = tx
	}
	outBank := make([]domain.BankStatementItem, len(bank))
	for i, item := range bank {
		item.IsReconciled = bankIDs[item.ID]
		outBank[i] = item
	}
	return outLedger, outBank
}
