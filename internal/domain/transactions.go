package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a ledger entry from the company's perspective.
type TransactionType string

const (
	// TransactionTypeDebit is cash coming in (a receipt).
	TransactionTypeDebit TransactionType = "Debit"
	// TransactionTypeCredit is cash going out (a disbursement).
	TransactionTypeCredit TransactionType = "Credit"
)

// IsValid reports whether t is one of the known ledger directions.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeDebit || t == TransactionTypeCredit
}

// BankEntryType is the direction of a statement line from the bank's perspective,
// which is the opposite polarity of TransactionType.
type BankEntryType string

const (
	// BankEntryCredit is a deposit into the account.
	BankEntryCredit BankEntryType = "CR"
	// BankEntryDebit is a withdrawal from the account.
	BankEntryDebit BankEntryType = "DB"
)

func (t BankEntryType) IsValid() bool {
	return t == BankEntryCredit || t == BankEntryDebit
}

// CounterpartOf returns the bank direction a ledger entry of type t clears against.
func CounterpartOf(t TransactionType) BankEntryType {
	if t == TransactionTypeDebit {
		return BankEntryCredit
	}
	return BankEntryDebit
}

// LedgerTransaction is a cash entry in the company's general ledger.
type LedgerTransaction struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Type         TransactionType `json:"type"`
	RefNumber    string          `json:"refNumber"`
	IsReconciled bool            `json:"isReconciled"`
}

// openingMarkers are the description fragments that identify the opening balance entry.
var openingMarkers = []string{"saldo awal", "opening balance"}

// IsOpeningBalance reports whether the entry carries the period's starting cash position.
func (t LedgerTransaction) IsOpeningBalance() bool {
	desc := strings.ToLower(t.Description)
	for _, marker := range openingMarkers {
		if strings.Contains(desc, marker) {
			return true
		}
	}
	return false
}

// BankStatementItem is a single line of the bank statement.
type BankStatementItem struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Type         BankEntryType   `json:"type"`
	RefNumber    string          `json:"refNumber"`
	IsReconciled bool            `json:"isReconciled"`
}

// Anomaly is a suspicious ledger entry reported by the narrative service.
type Anomaly struct {
	ID    string `json:"id"`
	Issue string `json:"issue"`
}
