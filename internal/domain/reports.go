package domain

import "github.com/shopspring/decimal"

// MaterialityConfig holds the financial benchmarks and the thresholds derived from them.
type MaterialityConfig struct {
	TotalAssets            decimal.Decimal `json:"total_assets"`
	TotalRevenue           decimal.Decimal `json:"total_revenue"`
	NetIncome              decimal.Decimal `json:"net_income"`
	OverallMateriality     decimal.Decimal `json:"overall_materiality"`
	PerformanceMateriality decimal.Decimal `json:"performance_materiality"`
}

// Match pairs a ledger entry with the statement line it cleared against.
type Match struct {
	LedgerID string          `json:"ledger_id"`
	BankID   string          `json:"bank_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// ReconciliationResult is the outcome of matching the ledger against the bank statement.
type ReconciliationResult struct {
	EndingBookBalance   decimal.Decimal `json:"ending_book_balance"`
	EndingBankBalance   decimal.Decimal `json:"ending_bank_balance"`
	AdjustedBookBalance decimal.Decimal `json:"adjusted_book_balance"`
	AdjustedBankBalance decimal.Decimal `json:"adjusted_bank_balance"`

	Matches           []Match             `json:"matches"`
	OutstandingChecks []LedgerTransaction `json:"outstanding_checks"`
	DepositsInTransit []LedgerTransaction `json:"deposits_in_transit"`
	BankCharges       []BankStatementItem `json:"bank_charges"`
	UnknownDiffs      []BankStatementItem `json:"unknown_diffs"`
}

// Reconciled reports whether the adjusted book and bank balances agree.
func (r ReconciliationResult) Reconciled() bool {
	return r.AdjustedBookBalance.Equal(r.AdjustedBankBalance)
}

// CashCountClassification describes how the physical count compares to the fund.
type CashCountClassification string

const (
	CashCountShortage CashCountClassification = "shortage"
	CashCountOverage  CashCountClassification = "overage"
	CashCountExact    CashCountClassification = "exact"
)

// CashCountLine is one denomination row of the count sheet.
type CashCountLine struct {
	Denomination int64           `json:"denomination"`
	Quantity     int64           `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// CashCountResult compares counted cash with the imprest fund limit.
type CashCountResult struct {
	Lines          []CashCountLine         `json:"lines"`
	FundLimit      decimal.Decimal         `json:"fund_limit"`
	TotalPhysical  decimal.Decimal         `json:"total_physical"`
	Variance       decimal.Decimal         `json:"variance"`
	Magnitude      decimal.Decimal         `json:"magnitude"`
	Classification CashCountClassification `json:"classification"`
}

// LeadSchedule reconciles the client's book balance to the audited balance.
type LeadSchedule struct {
	BookBalance      decimal.Decimal `json:"book_balance"`
	AdjDebit         decimal.Decimal `json:"adj_debit"`
	AdjCredit        decimal.Decimal `json:"adj_credit"`
	AuditedBalance   decimal.Decimal `json:"audited_balance"`
	PriorYearBalance decimal.Decimal `json:"prior_year_balance"`
}

// SeverityCount is the number of findings at one severity, used for the report chart.
type SeverityCount struct {
	Severity Severity `json:"severity"`
	Count    int      `json:"count"`
}
