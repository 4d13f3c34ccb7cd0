package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"cash-audit/internal/domain"
)

type recordedCall struct {
	prompt string
	config *genai.GenerateContentConfig
}

func fakeNarrator(reply string, err error) (*GeminiNarrator, *[]recordedCall) {
	var calls []recordedCall
	n := &GeminiNarrator{
		model: DefaultGeminiModel,
		generate: func(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
			calls = append(calls, recordedCall{prompt: prompt, config: config})
			return reply, err
		},
	}
	return n, &calls
}

func TestNewGeminiNarrator_RequiresKey(t *testing.T) {
	n, err := NewGeminiNarrator(context.Background(), "", "")
	assert.Error(t, err)
	assert.Nil(t, n)
}

func TestGeminiNarrator_AnalyzeInternalControls(t *testing.T) {
	n, calls := fakeNarrator("Risiko pengendalian: Tinggi.", nil)

	got, err := n.AnalyzeInternalControls(context.Background(), []domain.ICQQuestion{
		{ID: "q1", Question: "Are cash duties segregated?", Answer: domain.ICQNo, RiskWeight: domain.SeverityHigh},
	})
	require.NoError(t, err)
	assert.Equal(t, "Risiko pengendalian: Tinggi.", got)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Contains(t, call.prompt, "Are cash duties segregated?")
	assert.Contains(t, call.prompt, "Internal Control Questionnaire")
	assert.Empty(t, call.config.ResponseMIMEType)
}

func TestGeminiNarrator_DetectAnomalies(t *testing.T) {
	n, calls := fakeNarrator(`[{"id": "L-009", "issue": "Odd amount 999999"}]`, nil)

	got, err := n.DetectAnomalies(context.Background(), []domain.LedgerTransaction{
		{
			ID:          "L-009",
			Date:        mustParseDate("2023-12-25"),
			Description: "Koreksi Pencatatan (Suspicious)",
			Amount:      decimal.NewFromInt(999999),
			Type:        domain.TransactionTypeCredit,
			RefNumber:   "JV-99",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Anomaly{{ID: "L-009", Issue: "Odd amount 999999"}}, got)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Contains(t, call.prompt, `"id": "L-009"`)
	assert.Contains(t, call.prompt, `"date": "2023-12-25"`)
	assert.Equal(t, "application/json", call.config.ResponseMIMEType)
	require.NotNil(t, call.config.ResponseSchema)
	assert.Equal(t, genai.TypeArray, call.config.ResponseSchema.Type)
}

func TestGeminiNarrator_DetectAnomalies_Errors(t *testing.T) {
	t.Run("generation failure", func(t *testing.T) {
		boom := errors.New("quota exceeded")
		n, _ := fakeNarrator("", boom)

		got, err := n.DetectAnomalies(context.Background(), nil)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, got)
	})

	t.Run("unparseable answer", func(t *testing.T) {
		n, _ := fakeNarrator("I could not find anything unusual.", nil)

		_, err := n.DetectAnomalies(context.Background(), nil)
		assert.ErrorIs(t, err, errUnparseableAnomalies)
	})
}

func TestGeminiNarrator_DraftOpinion(t *testing.T) {
	n, calls := fakeNarrator("Saldo kas disajikan secara wajar.", nil)

	got, err := n.DraftOpinion(context.Background(), []domain.Finding{
		{ID: domain.FindingIDBankCharges, Title: "Unrecorded bank charges", Severity: domain.SeverityLow,
			Amount: decimal.NewFromInt(250000), Adjustment: domain.AdjustmentCredit},
	})
	require.NoError(t, err)
	assert.Equal(t, "Saldo kas disajikan secara wajar.", got)
	assert.Contains(t, (*calls)[0].prompt, "Unrecorded bank charges")
}
