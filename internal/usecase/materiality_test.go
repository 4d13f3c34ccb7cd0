package usecase_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cash-audit/internal/domain"
	"cash-audit/internal/usecase"
)

func TestComputeMateriality(t *testing.T) {
	tests := []struct {
		name      string
		assets    decimal.Decimal
		revenue   decimal.Decimal
		netIncome decimal.Decimal
		wantOM    string
		wantPM    string
		wantErr   bool
	}{
		{
			name:      "demo financials",
			assets:    dec(50000000000),
			revenue:   dec(120000000000),
			netIncome: dec(8500000000),
			wantOM:    "600000000",
			wantPM:    "450000000",
		},
		{
			name:      "fractional result keeps full precision",
			revenue:   dec(1001),
			netIncome: dec(1),
			wantOM:    "5.005",
			wantPM:    "3.75375",
		},
		{
			name:      "net income only gives zero thresholds",
			netIncome: dec(1000),
			wantOM:    "0",
			wantPM:    "0",
		},
		{
			name:    "no benchmark",
			assets:  dec(1000),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.ComputeMateriality(tt.assets, tt.revenue, tt.netIncome)
			if tt.wantErr {
				var verr *domain.ValidationError
				assert.True(t, errors.As(err, &verr))
				assert.Equal(t, domain.MaterialityConfig{}, got)
				return
			}
			require.NoError(t, err)
			assertDecimal(t, decimal.RequireFromString(tt.wantOM), got.OverallMateriality)
			assertDecimal(t, decimal.RequireFromString(tt.wantPM), got.PerformanceMateriality)
			assertDecimal(t, tt.revenue, got.TotalRevenue)
			assertDecimal(t, tt.assets, got.TotalAssets)
		})
	}
}

func TestComputeMateriality_Repeatable(t *testing.T) {
	revenue := decimal.RequireFromString("987654321.123")
	first, err := usecase.ComputeMateriality(decimal.Zero, revenue, decimal.Zero)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		got, err := usecase.ComputeMateriality(decimal.Zero, revenue, decimal.Zero)
		require.NoError(t, err)
		assertDecimal(t, first.OverallMateriality, got.OverallMateriality)
		assertDecimal(t, first.PerformanceMateriality, got.PerformanceMateriality)
	}
	assertDecimal(t, first.OverallMateriality.Mul(decimal.RequireFromString("0.75")), first.PerformanceMateriality)
}
