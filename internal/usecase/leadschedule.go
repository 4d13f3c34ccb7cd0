package usecase

import (
	"github.com/shopspring/decimal"

	"cash-audit/internal/domain"
)

// BuildLeadSchedule rolls the client's book balance forward to the audited balance using
// the adjustments proposed by findings. Findings without an amount do not adjust anything.
func BuildLeadSchedule(ledger []domain.LedgerTransaction, findings []domain.Finding, priorYear decimal.Decimal) domain.LeadSchedule {
	schedule := domain.LeadSchedule{
		BookBalance:      EndingBookBalance(ledger),
		AdjDebit:         decimal.Zero,
		AdjCredit:        decimal.Zero,
		PriorYearBalance: priorYear,
	}

	for _, f := range findings {
		if !f.IsAdjusting() {
			continue
		}
		if f.Adjustment == domain.AdjustmentDebit {
			schedule.AdjDebit = schedule.AdjDebit.Add(f.Amount)
		} else {
			schedule.AdjCredit = schedule.AdjCredit.Add(f.Amount)
		}
	}

	schedule.AuditedBalance = schedule.BookBalance.Add(schedule.AdjDebit).Sub(schedule.AdjCredit)
	return schedule
}

// CountBySeverity tallies findings per severity, highest first.
func CountBySeverity(findings []domain.Finding) []domain.SeverityCount {
	counts := []domain.SeverityCount{
		{Severity: domain.SeverityHigh},
		{Severity: domain.SeverityMedium},
		{Severity: domain.SeverityLow},
	}
	for _, f := range findings {
		for i := range counts {
			if counts[i].Severity == f.Severity {
				counts[i].Count++
			}
		}
	}
	return counts
}
