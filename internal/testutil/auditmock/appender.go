package auditmock

import (
	"context"
	"sync"

	domain "ministry-budget-api/internal/domain/audit"
)

var _ domain.Log = (*Appender)(nil)

// Appender records every appended entry so tests can assert on the trail.
// Set Err to simulate a failing audit sink.
type Appender struct {
	mu      sync.Mutex
	Err     error
	Entries []domain.Entry
}

func (m *Appender) Append(ctx context.Context, e *domain.Entry) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.Entries = append(m.Entries, *e)
	m.mu.Unlock()
	return nil
}

func (m *Appender) ListByForm(ctx context.Context, formID uint64) ([]domain.Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Entry
	for _, e := range m.Entries {
		if e.FormID != nil && *e.FormID == formID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Last returns the most recent entry, or nil when nothing was appended.
func (m *Appender) Last() *domain.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Entries) == 0 {
		return nil
	}
	e := m.Entries[len(m.Entries)-1]
	return &e
}
