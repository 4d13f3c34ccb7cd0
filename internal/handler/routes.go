package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/labstack/gommon/log"
)

// NewRouter builds the HTTP API router.
func NewRouter(h *AuditHandler) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestLogger)
	RegisterAuditRoutes(router, h)
	return router
}

func RegisterAuditRoutes(router *mux.Router, h *AuditHandler) {
	router.HandleFunc("/audits", h.CreateAudit).Methods("POST")
	router.HandleFunc("/audits/demo", h.CreateDemoAudit).Methods("POST")
	router.HandleFunc("/audits/{id}", h.GetAudit).Methods("GET")
	router.HandleFunc("/audits/{id}/materiality", h.ComputeMateriality).Methods("POST")
	router.HandleFunc("/audits/{id}/icq/{qid}", h.AnswerICQ).Methods("PUT")
	router.HandleFunc("/audits/{id}/risk", h.AssessRisk).Methods("POST")
	router.HandleFunc("/audits/{id}/reconcile", h.Reconcile).Methods("POST")
	router.HandleFunc("/audits/{id}/cash-count", h.CountCash).Methods("POST")
	router.HandleFunc("/audits/{id}/anomalies", h.DetectAnomalies).Methods("POST")
	router.HandleFunc("/audits/{id}/findings", h.ListFindings).Methods("GET")
	router.HandleFunc("/audits/{id}/findings", h.AddFinding).Methods("POST")
	router.HandleFunc("/audits/{id}/lead-schedule", h.LeadSchedule).Methods("GET")
	router.HandleFunc("/audits/{id}/opinion", h.DraftOpinion).Methods("POST")
	router.HandleFunc("/audits/{id}/workpaper.xlsx", h.Workpaper).Methods("GET")
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debugf("[HTTP] %s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}
