package usecase_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"cash-audit/internal/domain"
	"cash-audit/internal/usecase"
)

func TestFindingsLedger_Add(t *testing.T) {
	ledger := usecase.NewFindingsLedger()

	first := domain.Finding{ID: "F-1", Title: "Unrecorded bank charges", Severity: domain.SeverityLow, Amount: dec(250000)}
	assert.True(t, ledger.Add(first))
	assert.True(t, ledger.Add(domain.Finding{ID: "F-2", Title: "Cash shortage", Severity: domain.SeverityMedium}))

	// same id, different content: ignored, not overwritten
	assert.False(t, ledger.Add(domain.Finding{ID: "F-1", Title: "Something else", Severity: domain.SeverityHigh, Amount: dec(1)}))

	got := ledger.List()
	assert.Len(t, got, 2)
	assert.Equal(t, 2, ledger.Len())
	assert.Equal(t, "F-1", got[0].ID)
	assert.Equal(t, "Unrecorded bank charges", got[0].Title)
	assertDecimal(t, dec(250000), got[0].Amount)
	assert.Equal(t, "F-2", got[1].ID)
}

func TestFindingsLedger_ListIsACopy(t *testing.T) {
	ledger := usecase.NewFindingsLedger()
	ledger.Add(domain.Finding{ID: "F-1", Title: "original"})

	list := ledger.List()
	list[0].Title = "changed"

	assert.Equal(t, "original", ledger.List()[0].Title)
}

func TestFindingsLedger_ConcurrentAdd(t *testing.T) {
	ledger := usecase.NewFindingsLedger()

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				ledger.Add(domain.Finding{ID: fmt.Sprintf("F-%d", i%25)})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, ledger.Len())
	seen := make(map[string]bool)
	for _, f := range ledger.List() {
		assert.False(t, seen[f.ID], "duplicate %s", f.ID)
		seen[f.ID] = true
	}
}
