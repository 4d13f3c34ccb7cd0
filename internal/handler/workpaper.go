package handler

import (
	"cash-audit/internal/gateway"
	"cash-audit/internal/usecase"
)

// NewWorkpaper takes the working paper contents from a session report.
func NewWorkpaper(r usecase.Report) gateway.Workpaper {
	return gateway.Workpaper{
		CompanyName:    r.CompanyName,
		Schedule:       r.LeadSchedule,
		Materiality:    r.Materiality,
		Reconciliation: r.Reconciliation,
		Findings:       r.Findings,
		SeverityCounts: r.SeverityCounts,
		Opinion:        r.Opinion,
	}
}
