package usecase

import (
	"sync"

	"cash-audit/internal/domain"
)

// FindingsLedger is an append-only, id-deduplicated collection of findings.
// It is safe for concurrent use.
type FindingsLedger struct {
	mu       sync.Mutex
	findings []domain.Finding
	seen     map[string]struct{}
}

// NewFindingsLedger creates an empty ledger.
func NewFindingsLedger() *FindingsLedger {
	return &FindingsLedger{seen: make(map[string]struct{})}
}

// Add appends f unless a finding with the same id is already present, in which case the
// existing entry is kept untouched. It reports whether f was inserted.
func (l *FindingsLedger) Add(f domain.Finding) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[f.ID]; ok {
		return false
	}
	l.seen[f.ID] = struct{}{}
	l.findings = append(l.findings, f)
	return true
}

// List returns the findings in insertion order.
func (l *FindingsLedger) List() []domain.Finding {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Finding, len(l.findings))
	copy(out, l.findings)
	return out
}

func (l *FindingsLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.findings)
}
