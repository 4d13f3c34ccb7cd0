package domain

import "github.com/shopspring/decimal"

type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// AdjustmentSide is the side of the cash account a proposed adjustment posts to.
type AdjustmentSide string

const (
	// AdjustmentDebit increases cash, e.g. unrecorded interest income.
	AdjustmentDebit AdjustmentSide = "Debit"
	// AdjustmentCredit decreases cash, e.g. unrecorded charges or shortages.
	AdjustmentCredit AdjustmentSide = "Credit"
)

func (s AdjustmentSide) IsValid() bool {
	return s == AdjustmentDebit || s == AdjustmentCredit
}

// Finding is an audit observation, optionally carrying a proposed adjustment.
type Finding struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Severity       Severity        `json:"severity"`
	Amount         decimal.Decimal `json:"amount"`
	Adjustment     AdjustmentSide  `json:"adjustment"`
	Recommendation string          `json:"recommendation"`
}

// IsAdjusting reports whether the finding proposes a journal entry against cash.
func (f Finding) IsAdjusting() bool {
	return f.Amount.IsPositive()
}

// Identifiers of findings raised by the engine itself.
const (
	FindingIDBankCharges = "F-AUTO-01"
	FindingIDAnomalies   = "F-AI-02"
	FindingIDSummary     = "SUMMARY"
)
