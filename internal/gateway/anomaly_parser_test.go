package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cash-audit/internal/domain"
)

func TestParseAnomalies(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []domain.Anomaly
		wantErr  bool
	}{
		{
			name:     "plain JSON",
			text:     `[{"id": "L-009", "issue": "Odd amount 999999"}]`,
			expected: []domain.Anomaly{{ID: "L-009", Issue: "Odd amount 999999"}},
		},
		{
			name:     "trailing comma",
			text:     `[{"id": "L-009", "issue": "Odd amount"},]`,
			expected: []domain.Anomaly{{ID: "L-009", Issue: "Odd amount"}},
		},
		{
			name: "unquoted keys",
			text: `[
				{id: "L-008", issue: "Year end payment"}
			]`,
			expected: []domain.Anomaly{{ID: "L-008", Issue: "Year end payment"}},
		},
		{
			name:     "records without id are dropped",
			text:     `[{"id": "", "issue": "nothing"}, {"id": "L-009", "issue": "Odd amount"}]`,
			expected: []domain.Anomaly{{ID: "L-009", Issue: "Odd amount"}},
		},
		{
			name:     "empty answer",
			text:     "  \n",
			expected: []domain.Anomaly{},
		},
		{
			name:     "empty list",
			text:     `[]`,
			expected: []domain.Anomaly{},
		},
		{
			name:    "object instead of list",
			text:    `{"id": "L-009", "issue": "Odd amount"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnomalies(tt.text)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errUnparseableAnomalies), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
