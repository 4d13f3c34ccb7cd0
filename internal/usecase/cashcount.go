package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"cash-audit/internal/domain"
)

// CountSheet lays the counted quantities over the given denominations so every row of
// the count sheet is present, counted or not.
func CountSheet(denominations []int64, counts map[int64]int64) map[int64]int64 {
	sheet := make(map[int64]int64, len(denominations)+len(counts))
	for _, d := range denominations {
		sheet[d] = 0
	}
	for d, q := range counts {
		sheet[d] = q
	}
	return sheet
}

// EvaluateCashCount totals a petty cash count and compares it to the imprest fund limit.
// Negative quantities are counted as zero. Lines are ordered from the largest denomination down.
func EvaluateCashCount(counts map[int64]int64, fundLimit decimal.Decimal) domain.CashCountResult {
	denominations := make([]int64, 0, len(counts))
	for denom := range counts {
		denominations = append(denominations, denom)
	}
	sort.Slice(denominations, func(i, j int) bool { return denominations[i] > denominations[j] })

	result := domain.CashCountResult{
		Lines:         make([]domain.CashCountLine, 0, len(denominations)),
		FundLimit:     fundLimit,
		TotalPhysical: decimal.Zero,
	}
	for _, denom := range denominations {
		qty := counts[denom]
		if qty < 0 {
			qty = 0
		}
		subtotal := decimal.NewFromInt(denom).Mul(decimal.NewFromInt(qty))
		result.Lines = append(result.Lines, domain.CashCountLine{
			Denomination: denom,
			Quantity:     qty,
			Subtotal:     subtotal,
		})
		result.TotalPhysical = result.TotalPhysical.Add(subtotal)
	}

	result.Variance = fundLimit.Sub(result.TotalPhysical)
	result.Magnitude = result.Variance.Abs()
	switch result.Variance.Sign() {
	case 1:
		result.Classification = domain.CashCountShortage
	case -1:
		result.Classification = domain.CashCountOverage
	default:
		result.Classification = domain.CashCountExact
	}
	return result
}
