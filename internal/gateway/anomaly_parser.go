package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"cash-audit/internal/domain"
)

var errUnparseableAnomalies = errors.New("anomaly list could not be parsed")

// parseAnomalies reads the model's anomaly list. Strategies are tried from strictest to
// most lenient: standard JSON, repaired JSON, then Hjson. Records without an id are dropped.
func parseAnomalies(text string) ([]domain.Anomaly, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.Anomaly{}, nil
	}

	var anomalies []domain.Anomaly
	if err := json.Unmarshal([]byte(text), &anomalies); err == nil {
		return keepIdentified(anomalies), nil
	}

	if repaired, err := jsonrepair.RepairJSON(text); err == nil {
		anomalies = nil
		if err := json.Unmarshal([]byte(repaired), &anomalies); err == nil {
			return keepIdentified(anomalies), nil
		}
	}

	var generic interface{}
	if err := hjson.Unmarshal([]byte(text), &generic); err == nil {
		if normalized, err := json.Marshal(generic); err == nil {
			anomalies = nil
			if err := json.Unmarshal(normalized, &anomalies); err == nil {
				return keepIdentified(anomalies), nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %.80q", errUnparseableAnomalies, text)
}

func keepIdentified(anomalies []domain.Anomaly) []domain.Anomaly {
	out := make([]domain.Anomaly, 0, len(anomalies))
	for _, a := range anomalies {
		if strings.TrimSpace(a.ID) == "" {
			continue
		}
		out = append(out, a)
	}
	return out
}
