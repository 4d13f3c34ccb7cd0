package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"cash-audit/internal/domain"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// generateFunc sends one prompt to the model and returns the response text.
type generateFunc func(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)

// GeminiNarrator implements the NarrativeService interface with Google's Gemini models.
type GeminiNarrator struct {
	model    string
	generate generateFunc
}

// NewGeminiNarrator creates a narrator backed by the Gemini API.
func NewGeminiNarrator(ctx context.Context, apiKey, model string) (*GeminiNarrator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is not set")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	n := &GeminiNarrator{model: model}
	n.generate = func(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
		result, err := client.Models.GenerateContent(ctx, n.model, genai.Text(prompt), config)
		if err != nil {
			return "", fmt.Errorf("gemini generation failed: %w", err)
		}
		return result.Text(), nil
	}
	return n, nil
}

// AnalyzeInternalControls asks for a one-paragraph control risk assessment of the cash cycle.
func (n *GeminiNarrator) AnalyzeInternalControls(ctx context.Context, questions []domain.ICQQuestion) (string, error) {
	payload, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode questionnaire: %w", err)
	}

	prompt := fmt.Sprintf(`You are a senior auditor. Review the answers to this Internal Control Questionnaire (ICQ) for the cash cycle.

ICQ data:
%s

Give a short assessment (one paragraph at most) of control risk. State whether it is High, Medium or Low and explain why, focusing on "No" answers to high-weight questions. Write in formal Indonesian.`, payload)

	return n.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.2)),
	})
}

// DetectAnomalies asks the model to flag suspicious ledger entries and parses its JSON list.
func (n *GeminiNarrator) DetectAnomalies(ctx context.Context, transactions []domain.LedgerTransaction) ([]domain.Anomaly, error) {
	payload, err := json.MarshalIndent(ledgerRecords(transactions), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode transactions: %w", err)
	}

	prompt := fmt.Sprintf(`Analyse the following cash ledger transactions for possible anomalies or fraud.
Focus on:
1. Unusual values (repeated round numbers or odd figures such as 999999).
2. Suspicious transactions on holidays or at year end (window dressing).
3. Vague descriptions.

Transactions:
%s

Answer with a JSON list of findings: [{"id": "transaction id", "issue": "short explanation"}]`, payload)

	text, err := n.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":    {Type: genai.TypeString},
					"issue": {Type: genai.TypeString},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}
	return parseAnomalies(text)
}

// DraftOpinion asks for the concluding paragraph of the cash working paper.
func (n *GeminiNarrator) DraftOpinion(ctx context.Context, findings []domain.Finding) (string, error) {
	payload, err := json.MarshalIndent(findings, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode findings: %w", err)
	}

	prompt := fmt.Sprintf(`Based on the following audit findings on Cash and Cash Equivalents:
%s

Draft the conclusion paragraph for the audit working paper. State whether the cash balance is presented fairly in all material respects. Use formal Indonesian following audit reporting standards.`, payload)

	return n.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.2)),
	})
}
