package usecase

import (
	"github.com/shopspring/decimal"

	"cash-audit/internal/domain"
)

var (
	// overallMaterialityRate is half a percent of revenue.
	overallMaterialityRate = decimal.RequireFromString("0.005")
	// performanceMaterialityRate is three quarters of overall materiality.
	performanceMaterialityRate = decimal.RequireFromString("0.75")
)

// ComputeMateriality derives overall and performance materiality from the client's financials.
func ComputeMateriality(assets, revenue, netIncome decimal.Decimal) (domain.MaterialityConfig, error) {
	if revenue.IsZero() && netIncome.IsZero() {
		return domain.MaterialityConfig{}, domain.NewValidationError("financials", "revenue and net income are both zero, no benchmark to compute materiality from")
	}

	om := revenue.Mul(overallMaterialityRate)
	return domain.MaterialityConfig{
		TotalAssets:            assets,
		TotalRevenue:           revenue,
		NetIncome:              netIncome,
		OverallMateriality:     om,
		PerformanceMateriality: om.Mul(performanceMaterialityRate),
	}, nil
}
