package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cash-audit/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "auditkas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, int64(480_000_000), c.PriorYearBalance)
	assert.Equal(t, int64(5_000_000), c.PettyCash.FundLimit)
	assert.Equal(t, []int64{100_000, 50_000, 20_000, 10_000}, c.PettyCash.Denominations)
	assert.Equal(t, "gemini-2.5-flash", c.AI.Model)
	assert.Equal(t, "GEMINI_API_KEY", c.AI.APIKeyEnv)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, log.INFO, c.Level())
	require.Len(t, c.ICQ, 5)
	assert.Equal(t, domain.SeverityHigh, c.ICQ[0].RiskWeight)
	assert.Equal(t, domain.SeverityLow, c.ICQ[4].RiskWeight)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
company_name: PT Contoh
prior_year_balance: 100000000
log_level: debug
petty_cash:
  fund_limit: 2000000
  denominations: [50000, 10000]
ai:
  enabled: true
  model: gemini-2.5-pro
  api_key_env: AUDITKAS_TEST_KEY
  timeout: 5s
server:
  port: 9090
icq:
  - id: C1
    question: Are cash counts performed by surprise?
    risk_weight: Medium
`)
	t.Setenv("AUDITKAS_TEST_KEY", "secret")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "PT Contoh", c.CompanyName)
	assert.Equal(t, []int64{50000, 10000}, c.PettyCash.Denominations)
	assert.True(t, c.AI.Enabled)
	assert.Equal(t, "gemini-2.5-pro", c.AI.Model)
	assert.Equal(t, "secret", c.APIKey())
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, log.DEBUG, c.Level())
	assert.Equal(t, []domain.ICQQuestion{
		{ID: "C1", Question: "Are cash counts performed by surprise?", RiskWeight: domain.SeverityMedium},
	}, c.ICQ)

	settings := c.Settings()
	assert.Equal(t, "100000000", settings.PriorYearBalance.String())
	assert.Equal(t, "2000000", settings.FundLimit.String())
	assert.Equal(t, []int64{50000, 10000}, settings.Denominations)
	assert.Equal(t, 5*time.Second, settings.AITimeout)
}

func TestLoad_ExplicitZeroAmounts(t *testing.T) {
	c, err := Load(writeConfig(t, "prior_year_balance: 0\npetty_cash:\n  fund_limit: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, int64(0), c.PriorYearBalance)
	assert.Equal(t, int64(0), c.PettyCash.FundLimit)
	assert.Equal(t, []int64{100_000, 50_000, 20_000, 10_000}, c.PettyCash.Denominations)
	assert.True(t, c.Settings().PriorYearBalance.IsZero())
}

func TestLoad_PartialFileKeepsDefaultAmounts(t *testing.T) {
	c, err := Load(writeConfig(t, "company_name: PT Contoh\n"))
	require.NoError(t, err)

	assert.Equal(t, "PT Contoh", c.CompanyName)
	assert.Equal(t, int64(480_000_000), c.PriorYearBalance)
	assert.Equal(t, int64(5_000_000), c.PettyCash.FundLimit)
	require.Len(t, c.ICQ, 5)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "negative fund", body: "petty_cash:\n  fund_limit: -1\n", wantField: "petty_cash.fund_limit"},
		{name: "bad denomination", body: "petty_cash:\n  denominations: [100000, 0]\n", wantField: "petty_cash.denominations"},
		{name: "bad timeout", body: "ai:\n  timeout: soon\n", wantField: "ai.timeout"},
		{name: "bad port", body: "server:\n  port: 70000\n", wantField: "server.port"},
		{name: "bad log level", body: "log_level: chatty\n", wantField: "log_level"},
		{name: "bad risk weight", body: "icq:\n  - id: C1\n    question: x\n    risk_weight: Severe\n", wantField: "icq[0].risk_weight"},
		{name: "duplicate question", body: "icq:\n  - {id: C1, question: x, risk_weight: Low}\n  - {id: C1, question: y, risk_weight: Low}\n", wantField: "icq[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "company_name: [unterminated\n"))
	assert.Error(t, err)
}
