package gateway

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cash-audit/internal/domain"
)

const dateLayout = "2006-01-02"

// record is the import shape shared by general ledger and bank statement rows.
// The meaning of Type depends on which side the row belongs to.
type record struct {
	ID           string           `json:"id"`
	Date         string           `json:"date"`
	Description  string           `json:"description"`
	Amount       *decimal.Decimal `json:"amount"`
	Type         string           `json:"type"`
	RefNumber    string           `json:"refNumber"`
	IsReconciled bool             `json:"isReconciled"`
}

func (r record) toLedger(field string) (domain.LedgerTransaction, error) {
	date, amount, err := validateCommon(field, r.ID, r.Date, r.Amount)
	if err != nil {
		return domain.LedgerTransaction{}, err
	}
	typ := domain.TransactionType(r.Type)
	if !typ.IsValid() {
		return domain.LedgerTransaction{}, domain.NewValidationError(field+".type", "%q is not one of Debit, Credit", r.Type)
	}
	return domain.LedgerTransaction{
		ID:           r.ID,
		Date:         date,
		Description:  r.Description,
		Amount:       amount,
		Type:         typ,
		RefNumber:    r.RefNumber,
		IsReconciled: r.IsReconciled,
	}, nil
}

func (r record) toBank(field string) (domain.BankStatementItem, error) {
	date, amount, err := validateCommon(field, r.ID, r.Date, r.Amount)
	if err != nil {
		return domain.BankStatementItem{}, err
	}
	typ := domain.BankEntryType(r.Type)
	if !typ.IsValid() {
		return domain.BankStatementItem{}, domain.NewValidationError(field+".type", "%q is not one of CR, DB", r.Type)
	}
	return domain.BankStatementItem{
		ID:           r.ID,
		Date:         date,
		Description:  r.Description,
		Amount:       amount,
		Type:         typ,
		RefNumber:    r.RefNumber,
		IsReconciled: r.IsReconciled,
	}, nil
}

func validateCommon(field, id, date string, amount *decimal.Decimal) (time.Time, decimal.Decimal, error) {
	if strings.TrimSpace(id) == "" {
		return time.Time{}, decimal.Zero, domain.NewValidationError(field+".id", "is required")
	}
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, decimal.Zero, domain.NewValidationError(field+".date", "%q is not a YYYY-MM-DD date", date)
	}
	if amount == nil {
		return time.Time{}, decimal.Zero, domain.NewValidationError(field+".amount", "is required")
	}
	if amount.IsNegative() {
		return time.Time{}, decimal.Zero, domain.NewValidationError(field+".amount", "must not be negative, got %s", amount)
	}
	return parsed, *amount, nil
}

// uniqueIDs rejects a batch in which two records share an identifier.
func uniqueIDs(kind string, ids []string) error {
	seen := make(map[string]int, len(ids))
	for i, id := range ids {
		if first, ok := seen[id]; ok {
			return domain.NewValidationError(kind, "records %d and %d share id %q", first, i, id)
		}
		seen[id] = i
	}
	return nil
}

func ledgerRecords(txs []domain.LedgerTransaction) []record {
	out := make([]record, 0, len(txs))
	for _, tx := range txs {
		amount := tx.Amount
		out = append(out, record{
			ID:           tx.ID,
			Date:         tx.Date.Format(dateLayout),
			Description:  tx.Description,
			Amount:       &amount,
			Type:         string(tx.Type),
			RefNumber:    tx.RefNumber,
			IsReconciled: tx.IsReconciled,
		})
	}
	return out
}

func bankRecords(items []domain.BankStatementItem) []record {
	out := make([]record, 0, len(items))
	for _, item := range items {
		amount := item.Amount
		out = append(out, record{
			ID:           item.ID,
			Date:         item.Date.Format(dateLayout),
			Description:  item.Description,
			Amount:       &amount,
			Type:         string(item.Type),
			RefNumber:    item.RefNumber,
			IsReconciled: item.IsReconciled,
		})
	}
	return out
}
