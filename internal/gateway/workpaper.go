package gateway

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"github.com/yuin/goldmark"

	"cash-audit/internal/domain"
)

// Sheet names of the exported working paper.
const (
	SheetLeadSchedule   = "Lead Schedule"
	SheetAdjustments    = "Adjustments"
	SheetReconciliation = "Bank Reconciliation"
	SheetFindings       = "Findings"
)

// Workpaper is everything the final cash working paper shows.
type Workpaper struct {
	CompanyName    string
	Schedule       domain.LeadSchedule
	Materiality    *domain.MaterialityConfig
	Reconciliation *domain.ReconciliationResult
	Findings       []domain.Finding
	SeverityCounts []domain.SeverityCount
	Opinion        string
}

// WriteWorkpaperXLSX renders the working paper as a spreadsheet.
func WriteWorkpaperXLSX(w io.Writer, wp Workpaper) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetLeadSchedule); err != nil {
		return fmt.Errorf("failed to name lead schedule sheet: %w", err)
	}
	for _, name := range []string{SheetAdjustments, SheetReconciliation, SheetFindings} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	if err := writeLeadSchedule(f, wp); err != nil {
		return err
	}
	if err := writeAdjustments(f, wp.Findings); err != nil {
		return err
	}
	if err := writeReconciliation(f, wp.Reconciliation); err != nil {
		return err
	}
	if err := writeFindings(f, wp.Findings, wp.SeverityCounts); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeLeadSchedule(f *excelize.File, wp Workpaper) error {
	rows := [][]interface{}{
		{"Cash and Cash Equivalents - Lead Schedule"},
		{"Client", wp.CompanyName},
		{},
		{"Description", "Prior year (audited)", "Per client", "Adj. debit", "Adj. credit", "Per audit"},
		{"Cash in bank", money(wp.Schedule.PriorYearBalance), money(wp.Schedule.BookBalance),
			money(wp.Schedule.AdjDebit), money(wp.Schedule.AdjCredit), money(wp.Schedule.AuditedBalance)},
	}
	if wp.Materiality != nil {
		rows = append(rows,
			[]interface{}{},
			[]interface{}{"Overall materiality", money(wp.Materiality.OverallMateriality)},
			[]interface{}{"Performance materiality", money(wp.Materiality.PerformanceMateriality)},
		)
	}
	if wp.Opinion != "" {
		rows = append(rows, []interface{}{}, []interface{}{"Conclusion", wp.Opinion})
	}
	return writeRows(f, SheetLeadSchedule, rows)
}

func writeAdjustments(f *excelize.File, findings []domain.Finding) error {
	rows := [][]interface{}{{"Ref", "Account", "Debit", "Credit"}}
	for i, finding := range findings {
		if !finding.IsAdjusting() {
			continue
		}
		ref := fmt.Sprintf("AJE-%d", i+1)
		rows = append(rows, []interface{}{ref, finding.Title})
		if finding.Adjustment == domain.AdjustmentDebit {
			rows = append(rows,
				[]interface{}{"", "Cash in bank", money(finding.Amount), nil},
				[]interface{}{"", "    " + finding.Title, nil, money(finding.Amount)},
			)
		} else {
			rows = append(rows,
				[]interface{}{"", finding.Title, money(finding.Amount), nil},
				[]interface{}{"", "    Cash in bank", nil, money(finding.Amount)},
			)
		}
	}
	return writeRows(f, SheetAdjustments, rows)
}

func writeReconciliation(f *excelize.File, rec *domain.ReconciliationResult) error {
	if rec == nil {
		return writeRows(f, SheetReconciliation, [][]interface{}{{"Bank reconciliation has not been run."}})
	}

	rows := [][]interface{}{
		{"Balance per book", money(rec.EndingBookBalance)},
	}
	for _, item := range rec.BankCharges {
		rows = append(rows, []interface{}{"Less: bank charge " + item.Description, money(item.Amount.Neg())})
	}
	for _, item := range rec.UnknownDiffs {
		rows = append(rows, []interface{}{"Add: bank credit " + item.Description, money(item.Amount)})
	}
	rows = append(rows,
		[]interface{}{"Adjusted book balance", money(rec.AdjustedBookBalance)},
		[]interface{}{},
		[]interface{}{"Balance per bank", money(rec.EndingBankBalance)},
	)
	for _, tx := range rec.DepositsInTransit {
		rows = append(rows, []interface{}{"Add: deposit in transit " + tx.RefNumber, money(tx.Amount)})
	}
	for _, tx := range rec.OutstandingChecks {
		rows = append(rows, []interface{}{"Less: outstanding check " + tx.RefNumber, money(tx.Amount.Neg())})
	}
	rows = append(rows, []interface{}{"Adjusted bank balance", money(rec.AdjustedBankBalance)})
	return writeRows(f, SheetReconciliation, rows)
}

func writeFindings(f *excelize.File, findings []domain.Finding, counts []domain.SeverityCount) error {
	rows := [][]interface{}{{"ID", "Title", "Severity", "Amount", "Adjustment", "Description", "Recommendation"}}
	for _, finding := range findings {
		rows = append(rows, []interface{}{
			finding.ID, finding.Title, string(finding.Severity), money(finding.Amount),
			string(finding.Adjustment), finding.Description, finding.Recommendation,
		})
	}
	if len(counts) > 0 {
		rows = append(rows, []interface{}{}, []interface{}{"Severity", "Count"})
		for _, c := range counts {
			rows = append(rows, []interface{}{string(c.Severity), c.Count})
		}
	}
	return writeRows(f, SheetFindings, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

var opinionPage = template.Must(template.New("opinion").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Audit conclusion - {{.Company}}</title></head>
<body>
<h1>Cash and Cash Equivalents</h1>
<p>{{.Company}}</p>
<table>
<tr><th>Per client</th><th>Adj. debit</th><th>Adj. credit</th><th>Per audit</th><th>Prior year</th></tr>
<tr><td>{{.Schedule.BookBalance}}</td><td>{{.Schedule.AdjDebit}}</td><td>{{.Schedule.AdjCredit}}</td><td>{{.Schedule.AuditedBalance}}</td><td>{{.Schedule.PriorYearBalance}}</td></tr>
</table>
<section class="opinion">
{{.Opinion}}
</section>
</body>
</html>
`))

// RenderOpinionHTML renders the lead schedule totals and the Markdown opinion draft as HTML.
func RenderOpinionHTML(w io.Writer, wp Workpaper) error {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(wp.Opinion), &body); err != nil {
		return fmt.Errorf("failed to render opinion markdown: %w", err)
	}

	return opinionPage.Execute(w, struct {
		Company  string
		Schedule domain.LeadSchedule
		Opinion  template.HTML
	}{
		Company:  wp.CompanyName,
		Schedule: wp.Schedule,
		Opinion:  template.HTML(body.String()),
	})
}
