package usecase

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cash-audit/internal/domain"
)

// Session holds the working state of one cash audit engagement. Everything except the
// findings and the imported records is derived and can be recomputed at any time.
type Session struct {
	ID          string
	CompanyName string
	Findings    *FindingsLedger

	mu             sync.RWMutex
	ledger         []domain.LedgerTransaction
	bank           []domain.BankStatementItem
	closingBalance decimal.NullDecimal
	icq            []domain.ICQQuestion
	materiality    *domain.MaterialityConfig
	reconciliation *domain.ReconciliationResult
	riskAnalysis   string
	anomalies      []domain.Anomaly
	opinion        string
}

// NewSession starts an engagement for company with a fresh copy of the questionnaire.
func NewSession(company string, questionnaire []domain.ICQQuestion) *Session {
	icq := make([]domain.ICQQuestion, len(questionnaire))
	copy(icq, questionnaire)
	for i := range icq {
		icq[i].Answer = domain.ICQUnanswered
	}
	return &Session{
		ID:          uuid.New().String(),
		CompanyName: company,
		Findings:    NewFindingsLedger(),
		icq:         icq,
	}
}

// SessionView is a point-in-time copy of a session, safe to hand to presentation code.
type SessionView struct {
	ID             string                       `json:"id"`
	CompanyName    string                       `json:"company_name"`
	Ledger         []domain.LedgerTransaction   `json:"ledger"`
	Bank           []domain.BankStatementItem   `json:"bank"`
	ICQ            []domain.ICQQuestion         `json:"icq"`
	Materiality    *domain.MaterialityConfig    `json:"materiality,omitempty"`
	Reconciliation *domain.ReconciliationResult `json:"reconciliation,omitempty"`
	RiskAnalysis   string                       `json:"risk_analysis,omitempty"`
	Anomalies      []domain.Anomaly             `json:"anomalies,omitempty"`
	Opinion        string                       `json:"opinion,omitempty"`
	Findings       []domain.Finding             `json:"findings"`
}

// Snapshot copies the session state.
func (s *Session) Snapshot() SessionView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := SessionView{
		ID:           s.ID,
		CompanyName:  s.CompanyName,
		Ledger:       append([]domain.LedgerTransaction(nil), s.ledger...),
		Bank:         append([]domain.BankStatementItem(nil), s.bank...),
		ICQ:          append([]domain.ICQQuestion(nil), s.icq...),
		RiskAnalysis: s.riskAnalysis,
		Anomalies:    append([]domain.Anomaly(nil), s.anomalies...),
		Opinion:      s.opinion,
		Findings:     s.Findings.List(),
	}
	if s.materiality != nil {
		m := *s.materiality
		view.Materiality = &m
	}
	if s.reconciliation != nil {
		r := *s.reconciliation
		view.Reconciliation = &r
	}
	return view
}

func (s *Session) records() ([]domain.LedgerTransaction, []domain.BankStatementItem) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger, s.bank
}
