package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"cash-audit/internal/domain"
	"cash-audit/internal/gateway"
	"cash-audit/internal/usecase"
)

// AuditHandler exposes the audit workflow over HTTP.
type AuditHandler struct {
	Usecase       *usecase.AuditUseCase
	Store         *SessionStore
	CompanyName   string
	Questionnaire []domain.ICQQuestion
}

func NewAuditHandler(uc *usecase.AuditUseCase, store *SessionStore, company string, questionnaire []domain.ICQQuestion) *AuditHandler {
	return &AuditHandler{Usecase: uc, Store: store, CompanyName: company, Questionnaire: questionnaire}
}

type CreateAuditRequest struct {
	CompanyName    string              `json:"company_name"`
	Ledger         json.RawMessage     `json:"ledger"`
	Bank           json.RawMessage     `json:"bank"`
	ClosingBalance decimal.NullDecimal `json:"closing_balance"`
}

type MaterialityRequest struct {
	TotalAssets  decimal.Decimal `json:"total_assets"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	NetIncome    decimal.Decimal `json:"net_income"`
}

type ICQAnswerRequest struct {
	Answer domain.ICQAnswer `json:"answer"`
}

type CashCountRequest struct {
	Counts map[int64]int64 `json:"counts"`
}

type ReconcileResponse struct {
	Result      domain.ReconciliationResult `json:"result"`
	Reconciled  bool                        `json:"reconciled"`
	Discrepancy *decimal.Decimal            `json:"discrepancy,omitempty"`
}

type FindingsResponse struct {
	Findings       []domain.Finding       `json:"findings"`
	SeverityCounts []domain.SeverityCount `json:"severity_counts"`
}

type OpinionResponse struct {
	Opinion string `json:"opinion"`
}

func (h *AuditHandler) session(r *http.Request) (*usecase.Session, error) {
	return h.Store.Get(mux.Vars(r)["id"])
}

// CreateAudit starts a session, optionally with imported ledger and bank statement records.
func (h *AuditHandler) CreateAudit(w http.ResponseWriter, r *http.Request) {
	var req CreateAuditRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var ledger []domain.LedgerTransaction
	var bank []domain.BankStatementItem
	var err error
	if len(req.Ledger) > 0 {
		if ledger, err = gateway.DecodeLedger(bytes.NewReader(req.Ledger)); err != nil {
			writeError(w, err)
			return
		}
	}
	if len(req.Bank) > 0 {
		if bank, err = gateway.DecodeBank(bytes.NewReader(req.Bank)); err != nil {
			writeError(w, err)
			return
		}
	}

	company := req.CompanyName
	if company == "" {
		company = h.CompanyName
	}
	s := usecase.NewSession(company, h.Questionnaire)
	h.Usecase.Load(s, ledger, bank)
	if req.ClosingBalance.Valid {
		h.Usecase.SetClosingBalance(s, req.ClosingBalance.Decimal)
	}
	h.Store.Put(s)

	log.Infof("[HTTP] created audit session %s for %s", s.ID, company)
	writeSuccess(w, http.StatusCreated, s.Snapshot())
}

// CreateDemoAudit starts a session loaded with the bundled demo data.
func (h *AuditHandler) CreateDemoAudit(w http.ResponseWriter, r *http.Request) {
	ledger, bank, err := gateway.DemoData()
	if err != nil {
		writeError(w, err)
		return
	}

	s := usecase.NewSession(gateway.DemoCompanyName, h.Questionnaire)
	h.Usecase.Load(s, ledger, bank)
	h.Store.Put(s)
	writeSuccess(w, http.StatusCreated, s.Snapshot())
}

func (h *AuditHandler) GetAudit(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, h.Usecase.Report(s))
}

func (h *AuditHandler) ComputeMateriality(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req MaterialityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	m, err := h.Usecase.ComputeMateriality(s, req.TotalAssets, req.TotalRevenue, req.NetIncome)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, m)
}

func (h *AuditHandler) AnswerICQ(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req ICQAnswerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.Usecase.AnswerICQ(s, mux.Vars(r)["qid"], req.Answer); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, s.Snapshot().ICQ)
}

func (h *AuditHandler) AssessRisk(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	analysis, err := h.Usecase.AssessRisk(r.Context(), s)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"risk_analysis": analysis})
}

// Reconcile runs the bank reconciliation. A balance discrepancy is not a request failure:
// the result is returned with status "warning" and the difference.
func (h *AuditHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.Usecase.Reconcile(s)
	resp := ReconcileResponse{Result: result, Reconciled: err == nil}

	var discrepancy *domain.DiscrepancyError
	switch {
	case err == nil:
		writeSuccess(w, http.StatusOK, resp)
	case errors.As(err, &discrepancy):
		diff := discrepancy.Difference()
		resp.Discrepancy = &diff
		writeJSON(w, http.StatusOK, APIResponse{Status: "warning", Message: discrepancy.Error(), Data: resp})
	default:
		writeError(w, err)
	}
}

func (h *AuditHandler) CountCash(w http.ResponseWriter, r *http.Request) {
	if _, err := h.session(r); err != nil {
		writeError(w, err)
		return
	}
	var req CashCountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	for denom := range req.Counts {
		if denom <= 0 {
			writeError(w, domain.NewValidationError("counts", "%d is not a positive denomination", denom))
			return
		}
	}
	writeSuccess(w, http.StatusOK, h.Usecase.CountCash(req.Counts))
}

func (h *AuditHandler) DetectAnomalies(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, h.Usecase.DetectAnomalies(r.Context(), s))
}

func (h *AuditHandler) ListFindings(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	findings := s.Findings.List()
	writeSuccess(w, http.StatusOK, FindingsResponse{
		Findings:       findings,
		SeverityCounts: usecase.CountBySeverity(findings),
	})
}

// AddFinding records a manual finding: 201 when inserted, 200 when the id was already recorded.
func (h *AuditHandler) AddFinding(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req domain.Finding
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	f, added, err := h.Usecase.AddFinding(s, req)
	if err != nil {
		writeError(w, err)
		return
	}
	if !added {
		writeJSON(w, http.StatusOK, APIResponse{Status: "success", Message: fmt.Sprintf("finding %s already recorded", f.ID), Data: f})
		return
	}
	writeSuccess(w, http.StatusCreated, f)
}

func (h *AuditHandler) LeadSchedule(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, h.Usecase.LeadSchedule(s))
}

func (h *AuditHandler) DraftOpinion(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, OpinionResponse{Opinion: h.Usecase.DraftOpinion(r.Context(), s)})
}

// Workpaper downloads the cash working paper as an XLSX workbook.
func (h *AuditHandler) Workpaper(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := gateway.WriteWorkpaperXLSX(&buf, NewWorkpaper(h.Usecase.Report(s))); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "kkp-kas-"+s.ID+".xlsx"))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Errorf("[HTTP] failed to send workpaper for session %s: %v", s.ID, err)
	}
}
