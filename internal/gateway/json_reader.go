package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cash-audit/internal/domain"
)

// JSONTransactionRepository implements the TransactionRepository interface for JSON exports.
type JSONTransactionRepository struct{}

// NewJSONTransactionRepository creates a new repository instance.
func NewJSONTransactionRepository() *JSONTransactionRepository {
	return &JSONTransactionRepository{}
}

// GetLedgerTransactions reads and validates a general ledger JSON file.
func (r *JSONTransactionRepository) GetLedgerTransactions(ctx context.Context, path string) ([]domain.LedgerTransaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file %s: %w", path, err)
	}
	defer file.Close()

	txs, err := DecodeLedger(file)
	if err != nil {
		return nil, fmt.Errorf("failed to import ledger file %s: %w", path, err)
	}
	return txs, nil
}

// GetBankStatementItems reads and validates a bank statement JSON file.
func (r *JSONTransactionRepository) GetBankStatementItems(ctx context.Context, path string) ([]domain.BankStatementItem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bank statement file %s: %w", path, err)
	}
	defer file.Close()

	items, err := DecodeBank(file)
	if err != nil {
		return nil, fmt.Errorf("failed to import bank statement file %s: %w", path, err)
	}
	return items, nil
}

// DecodeLedger parses a JSON array of ledger rows. Every row is checked against the
// ledger shape; the first violation rejects the whole payload.
func DecodeLedger(r io.Reader) ([]domain.LedgerTransaction, error) {
	records, err := decodeArray(r, "ledger")
	if err != nil {
		return nil, err
	}

	txs := make([]domain.LedgerTransaction, 0, len(records))
	ids := make([]string, 0, len(records))
	for i, rec := range records {
		tx, err := rec.toLedger(fmt.Sprintf("ledger[%d]", i))
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
		ids = append(ids, tx.ID)
	}
	if err := uniqueIDs("ledger", ids); err != nil {
		return nil, err
	}
	return txs, nil
}

// DecodeBank parses a JSON array of bank statement rows.
func DecodeBank(r io.Reader) ([]domain.BankStatementItem, error) {
	records, err := decodeArray(r, "bank")
	if err != nil {
		return nil, err
	}

	items := make([]domain.BankStatementItem, 0, len(records))
	ids := make([]string, 0, len(records))
	for i, rec := range records {
		item, err := rec.toBank(fmt.Sprintf("bank[%d]", i))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		ids = append(ids, item.ID)
	}
	if err := uniqueIDs("bank", ids); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeArray(r io.Reader, kind string) ([]record, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, domain.NewValidationError(kind, "malformed JSON: %v", err)
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.NewValidationError(kind, "payload must be a JSON array")
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, domain.NewValidationError(kind, "records do not match the expected shape: %v", err)
	}
	return records, nil
}
