package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"cash-audit/internal/domain"
)

// Column order of both CSV layouts: id,date,description,amount,type,refNumber
const csvColumns = 6

// CSVTransactionRepository implements the TransactionRepository interface for CSV files.
type CSVTransactionRepository struct{}

// NewCSVTransactionRepository creates a new repository instance.
func NewCSVTransactionRepository() *CSVTransactionRepository {
	return &CSVTransactionRepository{}
}

// GetLedgerTransactions reads and parses the general ledger CSV file.
func (r *CSVTransactionRepository) GetLedgerTransactions(ctx context.Context, path string) ([]domain.LedgerTransaction, error) {
	records, err := readCSVRecords(path)
	if err != nil {
		return nil, err
	}

	var transactions []domain.LedgerTransaction
	var ids []string
	for i, rec := range records {
		tx, err := rec.toLedger(fmt.Sprintf("%s row %d", path, i+2))
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
		ids = append(ids, tx.ID)
	}
	if err := uniqueIDs("ledger", ids); err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetBankStatementItems reads and parses a bank statement CSV file. Rows with an empty type
// column carry a signed amount instead: negative is a withdrawal, positive a deposit.
func (r *CSVTransactionRepository) GetBankStatementItems(ctx context.Context, path string) ([]domain.BankStatementItem, error) {
	records, err := readCSVRecords(path)
	if err != nil {
		return nil, err
	}

	var items []domain.BankStatementItem
	var ids []string
	for i, rec := range records {
		// Normalize signed statements for easier matching
		if rec.Type == "" && rec.Amount != nil {
			if rec.Amount.IsNegative() {
				rec.Type = string(domain.BankEntryDebit)
				abs := rec.Amount.Abs()
				rec.Amount = &abs
			} else {
				rec.Type = string(domain.BankEntryCredit)
			}
		}

		item, err := rec.toBank(fmt.Sprintf("%s row %d", path, i+2))
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

func readCSVRecords(path string) ([]record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var records []record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		line := len(records) + 2
		if len(row) < csvColumns-1 {
			return nil, domain.NewValidationError(path, "row %d has %d columns, want at least %d", line, len(row), csvColumns-1)
		}

		amount, err := decimal.NewFromString(row[3])
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("%s row %d.amount", path, line), "%q is not a number", row[3])
		}

		rec := record{
			ID:          row[0],
			Date:        row[1],
			Description: row[2],
			Amount:      &amount,
			Type:        row[4],
		}
		if len(row) >= csvColumns {
			rec.RefNumber = row[5]
		}
		records = append(records, rec)
	}
	return records, nil
}
