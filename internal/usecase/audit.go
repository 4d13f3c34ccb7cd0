package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"cash-audit/internal/domain"
)

// Text shown in place of AI commentary when the narrative service cannot be reached.
const (
	RiskAnalysisUnavailable = "Risk analysis is unavailable: the narrative service could not be reached."
	OpinionUnavailable      = "The audit opinion draft could not be generated because the narrative service is unavailable."
)

// Settings are the engagement constants the workflow needs.
type Settings struct {
	PriorYearBalance decimal.Decimal
	FundLimit        decimal.Decimal
	Denominations    []int64
	AITimeout        time.Duration
}

// AuditUseCase drives the cash audit workflow over a Session.
type AuditUseCase struct {
	repo     TransactionRepository
	narrator NarrativeService
	settings Settings
}

// NewAuditUseCase creates a new instance of the usecase. narrator may be nil, in which
// case every AI-backed step degrades to its fallback.
func NewAuditUseCase(repo TransactionRepository, narrator NarrativeService, settings Settings) *AuditUseCase {
	return &AuditUseCase{repo: repo, narrator: narrator, settings: settings}
}

// Settings returns the engagement constants the usecase was built with.
func (uc *AuditUseCase) Settings() Settings {
	return uc.settings
}

// ImportFiles loads the ledger and bank statement through the repository into s.
func (uc *AuditUseCase) ImportFiles(ctx context.Context, s *Session, ledgerPath, bankPath string) error {
	ledger, err := uc.repo.GetLedgerTransactions(ctx, ledgerPath)
	if err != nil {
		return fmt.Errorf("could not get ledger transactions: %w", err)
	}

	bank, err := uc.repo.GetBankStatementItems(ctx, bankPath)
	if err != nil {
		return fmt.Errorf("could not get bank statement items: %w", err)
	}

	uc.Load(s, ledger, bank)
	return nil
}

// Load replaces the session's imported records and drops results derived from the old ones.
func (uc *AuditUseCase) Load(s *Session, ledger []domain.LedgerTransaction, bank []domain.BankStatementItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger = append([]domain.LedgerTransaction(nil), ledger...)
	s.bank = append([]domain.BankStatementItem(nil), bank...)
	s.reconciliation = nil
	s.anomalies = nil
	log.Infof("[Import] session %s: %d ledger transactions, %d bank statement items", s.ID, len(ledger), len(bank))
}

// SetClosingBalance records the closing balance printed on the bank statement.
func (uc *AuditUseCase) SetClosingBalance(s *Session, closing decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closingBalance = decimal.NewNullDecimal(closing)
}

// ComputeMateriality computes materiality and stores it on the session, replacing any prior result.
func (uc *AuditUseCase) ComputeMateriality(s *Session, assets, revenue, netIncome decimal.Decimal) (domain.MaterialityConfig, error) {
	m, err := ComputeMateriality(assets, revenue, netIncome)
	if err != nil {
		return domain.MaterialityConfig{}, err
	}

	s.mu.Lock()
	s.materiality = &m
	s.mu.Unlock()

	log.Infof("[Materiality] session %s: OM %s, PM %s", s.ID, m.OverallMateriality, m.PerformanceMateriality)
	return m, nil
}

// AnswerICQ records the answer to one questionnaire item.
func (uc *AuditUseCase) AnswerICQ(s *Session, questionID string, answer domain.ICQAnswer) error {
	if !answer.IsValid() {
		return domain.NewValidationError("answer", "%q is not one of Yes, No, N/A", answer)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.icq {
		if s.icq[i].ID == questionID {
			s.icq[i].Answer = answer
			return nil
		}
	}
	return domain.NewValidationError("question", "unknown question %q", questionID)
}

// AssessRisk asks the narrative service to judge control risk from the questionnaire.
// Every question must be answered first. A failing service yields RiskAnalysisUnavailable.
func (uc *AuditUseCase) AssessRisk(ctx context.Context, s *Session) (string, error) {
	s.mu.RLock()
	questions := append([]domain.ICQQuestion(nil), s.icq...)
	s.mu.RUnlock()

	var missing []string
	for _, q := range questions {
		if q.Answer == domain.ICQUnanswered {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return "", domain.NewValidationError("icq", "unanswered questions: %s", strings.Join(missing, ", "))
	}

	analysis := RiskAnalysisUnavailable
	if uc.narrator != nil {
		ctx, cancel := uc.aiContext(ctx)
		defer cancel()

		text, err := uc.narrator.AnalyzeInternalControls(ctx, questions)
		if err != nil {
			log.Warnf("[RiskAnalysis] session %s: %v", s.ID, &domain.CollaboratorError{Op: "risk analysis", Err: err})
		} else if strings.TrimSpace(text) != "" {
			analysis = text
		}
	}

	s.mu.Lock()
	s.riskAnalysis = analysis
	s.mu.Unlock()
	return analysis, nil
}

// Reconcile runs the bank reconciliation over the session's records, marks matched records
// as reconciled, and raises the bank charge finding when unrecorded charges exist.
// A *domain.DiscrepancyError is returned with a populated result when the views disagree.
func (uc *AuditUseCase) Reconcile(s *Session) (domain.ReconciliationResult, error) {
	s.mu.Lock()
	result, recErr := ReconcileWithStatementBalance(s.ledger, s.bank, s.closingBalance)
	s.ledger, s.bank = MarkReconciled(s.ledger, s.bank, result.Matches)
	s.reconciliation = &result
	s.mu.Unlock()

	log.Infof("[Reconcile] session %s: %d matched, %d outstanding checks, %d deposits in transit, %d bank charges, %d unknown differences",
		s.ID, len(result.Matches), len(result.OutstandingChecks), len(result.DepositsInTransit), len(result.BankCharges), len(result.UnknownDiffs))

	if len(result.BankCharges) > 0 {
		total := sumBank(result.BankCharges)
		added := s.Findings.Add(domain.Finding{
			ID:             domain.FindingIDBankCharges,
			Title:          "Unrecorded bank charges",
			Description:    fmt.Sprintf("Bank administration charges totalling %s have not been journaled in the cash book.", total),
			Severity:       domain.SeverityLow,
			Amount:         total,
			Adjustment:     domain.AdjustmentCredit,
			Recommendation: "Post an adjusting entry for the bank charges.",
		})
		if added {
			log.Infof("[Reconcile] session %s: raised finding %s", s.ID, domain.FindingIDBankCharges)
		}
	}

	var discrepancy *domain.DiscrepancyError
	if errors.As(recErr, &discrepancy) {
		log.Warnf("[Reconcile] session %s: %v", s.ID, discrepancy)
	}
	return result, recErr
}

// CountCash evaluates a petty cash count against the configured imprest fund. Every
// configured denomination appears on the sheet, uncounted ones with quantity 0.
func (uc *AuditUseCase) CountCash(counts map[int64]int64) domain.CashCountResult {
	result := EvaluateCashCount(CountSheet(uc.settings.Denominations, counts), uc.settings.FundLimit)
	log.Debugf("[CashCount] physical %s, %s of %s", result.TotalPhysical, result.Classification, result.Magnitude)
	return result
}

// DetectAnomalies sends the ledger, without the opening balance, to the narrative service.
// Service failures are logged and treated as no anomalies. When anomalies are found a
// single summary finding is raised.
func (uc *AuditUseCase) DetectAnomalies(ctx context.Context, s *Session) []domain.Anomaly {
	ledger, _ := s.records()
	candidates := make([]domain.LedgerTransaction, 0, len(ledger))
	for _, tx := range ledger {
		if !tx.IsOpeningBalance() {
			candidates = append(candidates, tx)
		}
	}

	anomalies := make([]domain.Anomaly, 0)
	if uc.narrator != nil {
		ctx, cancel := uc.aiContext(ctx)
		defer cancel()

		found, err := uc.narrator.DetectAnomalies(ctx, candidates)
		if err != nil {
			log.Warnf("[Anomalies] session %s: %v", s.ID, &domain.CollaboratorError{Op: "anomaly detection", Err: err})
		} else {
			anomalies = append(anomalies, found...)
		}
	}

	s.mu.Lock()
	s.anomalies = anomalies
	s.mu.Unlock()

	if len(anomalies) > 0 {
		s.Findings.Add(domain.Finding{
			ID:             domain.FindingIDAnomalies,
			Title:          "Potential anomalies or fraud detected",
			Description:    fmt.Sprintf("%d suspicious transactions were flagged. Example: %s", len(anomalies), anomalies[0].Issue),
			Severity:       domain.SeverityHigh,
			Amount:         decimal.Zero,
			Adjustment:     domain.AdjustmentCredit,
			Recommendation: "Investigate the supporting documents of the flagged transactions.",
		})
	}
	log.Infof("[Anomalies] session %s: %d flagged", s.ID, len(anomalies))
	return anomalies
}

// AddFinding records a manually entered finding. A missing id is generated, a missing
// adjustment side defaults to Credit. It reports whether the finding was inserted.
func (uc *AuditUseCase) AddFinding(s *Session, f domain.Finding) (domain.Finding, bool, error) {
	if strings.TrimSpace(f.Title) == "" {
		return f, false, domain.NewValidationError("title", "must not be empty")
	}
	if !f.Severity.IsValid() {
		return f, false, domain.NewValidationError("severity", "%q is not one of High, Medium, Low", f.Severity)
	}
	if f.Amount.IsNegative() {
		return f, false, domain.NewValidationError("amount", "must not be negative")
	}
	if f.Adjustment == "" {
		f.Adjustment = domain.AdjustmentCredit
	}
	if !f.Adjustment.IsValid() {
		return f, false, domain.NewValidationError("adjustment", "%q is not one of Debit, Credit", f.Adjustment)
	}
	if f.ID == "" {
		f.ID = "F-MAN-" + strings.ToUpper(uuid.New().String()[:8])
	}

	added := s.Findings.Add(f)
	if !added {
		log.Debugf("[Findings] session %s: %s already recorded", s.ID, f.ID)
	}
	return f, added, nil
}

// LeadSchedule recomputes the lead schedule from the current ledger and findings.
func (uc *AuditUseCase) LeadSchedule(s *Session) domain.LeadSchedule {
	ledger, _ := s.records()
	return BuildLeadSchedule(ledger, s.Findings.List(), uc.settings.PriorYearBalance)
}

// DraftOpinion asks the narrative service for the conclusion paragraph of the working paper.
// The findings are sent together with a summary record of the lead schedule totals.
func (uc *AuditUseCase) DraftOpinion(ctx context.Context, s *Session) string {
	findings := s.Findings.List()
	schedule := uc.LeadSchedule(s)
	findings = append(findings, summaryFinding(schedule))

	opinion := OpinionUnavailable
	if uc.narrator != nil {
		ctx, cancel := uc.aiContext(ctx)
		defer cancel()

		text, err := uc.narrator.DraftOpinion(ctx, findings)
		if err != nil {
			log.Warnf("[Opinion] session %s: %v", s.ID, &domain.CollaboratorError{Op: "opinion drafting", Err: err})
		} else if strings.TrimSpace(text) != "" {
			opinion = text
		}
	}

	s.mu.Lock()
	s.opinion = opinion
	s.mu.Unlock()
	return opinion
}

func summaryFinding(schedule domain.LeadSchedule) domain.Finding {
	return domain.Finding{
		ID:    domain.FindingIDSummary,
		Title: "Audit figures summary",
		Description: fmt.Sprintf("Book balance: %s, adjustments: -%s +%s, audited balance: %s",
			schedule.BookBalance, schedule.AdjCredit, schedule.AdjDebit, schedule.AuditedBalance),
		Severity: domain.SeverityHigh,
		Amount:   decimal.Zero,
	}
}

func (uc *AuditUseCase) aiContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.settings.AITimeout > 0 {
		return context.WithTimeout(ctx, uc.settings.AITimeout)
	}
	return context.WithCancel(ctx)
}
