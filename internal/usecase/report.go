package usecase

import "cash-audit/internal/domain"

// Report is the state of a session as the final working paper presents it.
type Report struct {
	SessionView
	LeadSchedule   domain.LeadSchedule    `json:"lead_schedule"`
	SeverityCounts []domain.SeverityCount `json:"severity_counts"`
}

// Report snapshots s together with its lead schedule and findings per severity.
func (uc *AuditUseCase) Report(s *Session) Report {
	view := s.Snapshot()
	return Report{
		SessionView:    view,
		LeadSchedule:   BuildLeadSchedule(view.Ledger, view.Findings, uc.settings.PriorYearBalance),
		SeverityCounts: CountBySeverity(view.Findings),
	}
}
