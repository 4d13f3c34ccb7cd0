package usecase

import (
	"context"

	"cash-audit/internal/domain"
)

// TransactionRepository loads imported ledger and bank statement records.
// The usecase layer depends on this interface, not on a concrete file format.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type TransactionRepository interface {
	GetLedgerTransactions(ctx context.Context, path string) ([]domain.LedgerTransaction, error)
	GetBankStatementItems(ctx context.Context, path string) ([]domain.BankStatementItem, error)
}

// NarrativeService is the external AI collaborator that writes free-text commentary.
type NarrativeService interface {
	AnalyzeInternalControls(ctx context.Context, questions []domain.ICQQuestion) (string, error)
	DetectAnomalies(ctx context.Context, transactions []domain.LedgerTransaction) ([]domain.Anomaly, error)
	DraftOpinion(ctx context.Context, findings []domain.Finding) (string, error)
}
