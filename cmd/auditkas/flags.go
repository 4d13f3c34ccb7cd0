package main

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cash-audit/internal/domain"
)

// parseAmount reads an optional monetary flag. Thousands separators are ignored.
func parseAmount(name, value string) (decimal.NullDecimal, error) {
	value = strings.NewReplacer(",", "", "_", "").Replace(strings.TrimSpace(value))
	if value == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}, domain.NewValidationError("--"+name, "%q is not an amount", value)
	}
	return decimal.NewNullDecimal(d), nil
}

// parseCounts reads denomination=quantity pairs.
func parseCounts(pairs []string) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(pairs))
	for _, pair := range pairs {
		denomStr, qtyStr, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, domain.NewValidationError("--count", "%q is not denomination=quantity", pair)
		}
		denom, err := strconv.ParseInt(strings.TrimSpace(denomStr), 10, 64)
		if err != nil || denom <= 0 {
			return nil, domain.NewValidationError("--count", "%q is not a positive denomination", denomStr)
		}
		qty, err := strconv.ParseInt(strings.TrimSpace(qtyStr), 10, 64)
		if err != nil {
			return nil, domain.NewValidationError("--count", "%q is not a quantity", qtyStr)
		}
		counts[denom] += qty
	}
	return counts, nil
}

// parseAnswers reads questionID=answer pairs for the questionnaire.
func parseAnswers(pairs []string) (map[string]domain.ICQAnswer, error) {
	answers := make(map[string]domain.ICQAnswer, len(pairs))
	for _, pair := range pairs {
		id, answer, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, domain.NewValidationError("--answer", "%q is not question=answer", pair)
		}
		answers[strings.TrimSpace(id)] = domain.ICQAnswer(strings.TrimSpace(answer))
	}
	return answers, nil
}

var idPrinter = message.NewPrinter(language.Indonesian)

// formatRupiah prints a whole-rupiah amount with Indonesian digit grouping.
func formatRupiah(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	if n < 0 {
		return idPrinter.Sprintf("-Rp %d", -n)
	}
	return idPrinter.Sprintf("Rp %d", n)
}
