package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"cash-audit/internal/domain"
	"cash-audit/internal/gateway"
	"cash-audit/internal/usecase"
)

func newMaterialityCmd() *cobra.Command {
	var assets, revenue, netIncome string
	cmd := &cobra.Command{
		Use:   "materiality",
		Short: "Compute overall and performance materiality",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]decimal.Decimal, 0, 3)
			for _, f := range []struct{ name, value string }{
				{"total-assets", assets}, {"revenue", revenue}, {"net-income", netIncome},
			} {
				d, err := parseAmount(f.name, f.value)
				if err != nil {
					return err
				}
				values = append(values, d.Decimal)
			}

			m, err := usecase.ComputeMateriality(values[0], values[1], values[2])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Overall materiality (OM):     %s\n", formatRupiah(m.OverallMateriality))
			fmt.Fprintf(out, "Performance materiality (PM): %s\n", formatRupiah(m.PerformanceMateriality))
			return nil
		},
	}
	cmd.Flags().StringVar(&assets, "total-assets", "", "Total assets")
	cmd.Flags().StringVar(&revenue, "revenue", "", "Total revenue")
	cmd.Flags().StringVar(&netIncome, "net-income", "", "Net income")
	return cmd
}

func newCashCountCmd() *cobra.Command {
	var pairs []string
	var fundLimit string
	cmd := &cobra.Command{
		Use:   "cashcount",
		Short: "Evaluate a petty cash count against the imprest fund",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := parseCounts(pairs)
			if err != nil {
				return err
			}
			limit := cfg.Settings().FundLimit
			if override, err := parseAmount("fund-limit", fundLimit); err != nil {
				return err
			} else if override.Valid {
				limit = override.Decimal
			}

			result := usecase.EvaluateCashCount(usecase.CountSheet(cfg.PettyCash.Denominations, counts), limit)
			return printCashCount(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringArrayVar(&pairs, "count", nil, "Counted quantity as denomination=quantity (repeatable)")
	cmd.Flags().StringVar(&fundLimit, "fund-limit", "", "Imprest fund limit (defaults to the configured one)")
	return cmd
}

func printCashCount(w io.Writer, result domain.CashCountResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Denomination\tQuantity\tSubtotal\t")
	for _, line := range result.Lines {
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", formatRupiah(decimal.NewFromInt(line.Denomination)), line.Quantity, formatRupiah(line.Subtotal))
	}
	fmt.Fprintf(tw, "Total physical\t\t%s\t\n", formatRupiah(result.TotalPhysical))
	fmt.Fprintf(tw, "Fund limit\t\t%s\t\n", formatRupiah(result.FundLimit))
	if err := tw.Flush(); err != nil {
		return err
	}

	switch result.Classification {
	case domain.CashCountExact:
		fmt.Fprintln(w, "Cash count agrees with the fund.")
	default:
		fmt.Fprintf(w, "Cash count %s of %s.\n", result.Classification, formatRupiah(result.Magnitude))
	}
	return nil
}

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print sample ledger and bank statement records in the import format",
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := gateway.ImportTemplate()
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), tmpl)
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(newMaterialityCmd(), newCashCountCmd(), newTemplateCmd())
}
