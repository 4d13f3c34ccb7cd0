package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"cash-audit/internal/domain"
	"cash-audit/internal/gateway"
	"cash-audit/internal/handler"
	"cash-audit/internal/usecase"
)

type runOptions struct {
	ledger, bank   string
	demo           bool
	format         string
	company        string
	totalAssets    string
	revenue        string
	netIncome      string
	closingBalance string
	answers        []string
	counts         []string
	ai             bool
	out            string
	opinionHTML    string
}

// runOutput is what the run command prints.
type runOutput struct {
	usecase.Report
	RunWarnings []string                `json:"warnings,omitempty"`
	CashCount   *domain.CashCountResult `json:"cash_count,omitempty"`
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full cash audit workflow and print the report as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.ledger, "ledger", "", "General ledger (cash book) file")
	f.StringVar(&opts.bank, "bank", "", "Bank statement file")
	f.BoolVar(&opts.demo, "demo", false, "Use the bundled demo data instead of files")
	f.StringVar(&opts.format, "format", "json", "Input file format: json or csv")
	f.StringVar(&opts.company, "company", "", "Audited company name (defaults to the configured one)")
	f.StringVar(&opts.totalAssets, "total-assets", "", "Total assets for materiality")
	f.StringVar(&opts.revenue, "revenue", "", "Total revenue for materiality")
	f.StringVar(&opts.netIncome, "net-income", "", "Net income for materiality")
	f.StringVar(&opts.closingBalance, "closing-balance", "", "Closing balance printed on the bank statement")
	f.StringArrayVar(&opts.answers, "answer", nil, "Questionnaire answer as ID=Yes|No|N/A (repeatable)")
	f.StringArrayVar(&opts.counts, "count", nil, "Petty cash count as denomination=quantity (repeatable)")
	f.BoolVar(&opts.ai, "ai", false, "Use the Gemini narrative service even if disabled in config")
	f.StringVar(&opts.out, "out", "", "Write the working paper to this XLSX file")
	f.StringVar(&opts.opinionHTML, "opinion-html", "", "Write the opinion draft to this HTML file")
	return cmd
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func runAudit(ctx context.Context, w io.Writer, opts *runOptions) error {
	if !opts.demo && (opts.ledger == "" || opts.bank == "") {
		return errors.New("--ledger and --bank are required unless --demo is set")
	}

	repo, err := repositoryFor(opts.format)
	if err != nil {
		return err
	}
	uc := usecase.NewAuditUseCase(repo, narratorFor(ctx, opts.ai), cfg.Settings())

	company := opts.company
	if company == "" {
		company = cfg.CompanyName
	}
	if opts.demo && opts.company == "" {
		company = gateway.DemoCompanyName
	}
	s := usecase.NewSession(company, cfg.ICQ)

	if opts.demo {
		ledger, bank, err := gateway.DemoData()
		if err != nil {
			return err
		}
		uc.Load(s, ledger, bank)
	} else if err := uc.ImportFiles(ctx, s, opts.ledger, opts.bank); err != nil {
		return err
	}

	closing, err := parseAmount("closing-balance", opts.closingBalance)
	if err != nil {
		return err
	}
	if closing.Valid {
		uc.SetClosingBalance(s, closing.Decimal)
	}

	out := runOutput{}
	if err := runMateriality(uc, s, opts); err != nil {
		return err
	}
	warning, err := runQuestionnaire(ctx, uc, s, opts.answers)
	if err != nil {
		return err
	}
	if warning != "" {
		out.RunWarnings = append(out.RunWarnings, warning)
	}

	var discrepancy *domain.DiscrepancyError
	if _, err := uc.Reconcile(s); errors.As(err, &discrepancy) {
		out.RunWarnings = append(out.RunWarnings, discrepancy.Error())
	} else if err != nil {
		return err
	}

	uc.DetectAnomalies(ctx, s)
	uc.DraftOpinion(ctx, s)

	if len(opts.counts) > 0 {
		counts, err := parseCounts(opts.counts)
		if err != nil {
			return err
		}
		result := uc.CountCash(counts)
		out.CashCount = &result
	}

	out.Report = uc.Report(s)
	if err := writeExports(out.Report, opts); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func repositoryFor(format string) (usecase.TransactionRepository, error) {
	switch format {
	case "json":
		return gateway.NewJSONTransactionRepository(), nil
	case "csv":
		return gateway.NewCSVTransactionRepository(), nil
	default:
		return nil, domain.NewValidationError("--format", "%q is not one of json, csv", format)
	}
}

// narratorFor returns the Gemini narrator when AI is enabled and configured, nil otherwise.
func narratorFor(ctx context.Context, force bool) usecase.NarrativeService {
	if !force && !cfg.AI.Enabled {
		return nil
	}
	n, err := gateway.NewGeminiNarrator(ctx, cfg.APIKey(), cfg.AI.Model)
	if err != nil {
		log.Warnf("[AI] narrative service disabled: %v", err)
		return nil
	}
	return n
}

func runMateriality(uc *usecase.AuditUseCase, s *usecase.Session, opts *runOptions) error {
	if opts.revenue == "" && opts.netIncome == "" {
		return nil
	}
	assets, err := parseAmount("total-assets", opts.totalAssets)
	if err != nil {
		return err
	}
	revenue, err := parseAmount("revenue", opts.revenue)
	if err != nil {
		return err
	}
	netIncome, err := parseAmount("net-income", opts.netIncome)
	if err != nil {
		return err
	}
	_, err = uc.ComputeMateriality(s, assets.Decimal, revenue.Decimal, netIncome.Decimal)
	return err
}

// runQuestionnaire applies the answers and, once every question is answered, assesses
// control risk. An incomplete questionnaire is reported as a warning.
func runQuestionnaire(ctx context.Context, uc *usecase.AuditUseCase, s *usecase.Session, pairs []string) (string, error) {
	answers, err := parseAnswers(pairs)
	if err != nil {
		return "", err
	}
	for id, answer := range answers {
		if err := uc.AnswerICQ(s, id, answer); err != nil {
			return "", err
		}
	}

	_, err = uc.AssessRisk(ctx, s)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("risk assessment skipped: %s", verr.Reason), nil
	}
	return "", err
}

func writeExports(report usecase.Report, opts *runOptions) error {
	wp := handler.NewWorkpaper(report)
	if opts.out != "" {
		if err := writeFile(opts.out, func(w io.Writer) error { return gateway.WriteWorkpaperXLSX(w, wp) }); err != nil {
			return err
		}
		log.Infof("[Export] working paper written to %s", opts.out)
	}
	if opts.opinionHTML != "" {
		if err := writeFile(opts.opinionHTML, func(w io.Writer) error { return gateway.RenderOpinionHTML(w, wp) }); err != nil {
			return err
		}
		log.Infof("[Export] opinion written to %s", opts.opinionHTML)
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
