package gateway

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"cash-audit/internal/domain"
)

// DemoCompanyName is the client of the bundled demo engagement.
const DemoCompanyName = "PT Manufaktur Maju Tbk"

//go:embed demo/ledger.json demo/bank.json
var demoFS embed.FS

// DemoData returns the bundled December cash book and bank statement.
func DemoData() ([]domain.LedgerTransaction, []domain.BankStatementItem, error) {
	ledgerJSON, err := demoFS.ReadFile("demo/ledger.json")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read demo ledger: %w", err)
	}
	bankJSON, err := demoFS.ReadFile("demo/bank.json")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read demo bank statement: %w", err)
	}

	ledger, err := DecodeLedger(bytes.NewReader(ledgerJSON))
	if err != nil {
		return nil, nil, fmt.Errorf("demo ledger: %w", err)
	}
	bank, err := DecodeBank(bytes.NewReader(bankJSON))
	if err != nil {
		return nil, nil, fmt.Errorf("demo bank statement: %w", err)
	}
	return ledger, bank, nil
}

// ImportTemplate returns the first two rows of each demo file as a format example.
func ImportTemplate() (string, error) {
	ledger, bank, err := DemoData()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("GENERAL LEDGER FORMAT:\n")
	if err := writeTemplateRows(&buf, ledgerRecords(ledger[:2])); err != nil {
		return "", err
	}
	buf.WriteString("\n\nBANK STATEMENT FORMAT:\n")
	if err := writeTemplateRows(&buf, bankRecords(bank[:2])); err != nil {
		return "", err
	}
	buf.WriteString("\n")
	return buf.String(), nil
}

func writeTemplateRows(buf *bytes.Buffer, rows []record) error {
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	buf.Write(out)
	return nil
}
