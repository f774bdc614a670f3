package engine

import (
	"testing"
	"time"
)

// manualTimeProvider is a controllable time source for loop tests
type manualTimeProvider struct {
	now time.Time
}

func newManualTimeProvider() *manualTimeProvider {
	return &manualTimeProvider{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *manualTimeProvider) Now() time.Time { return m.now }

func (m *manualTimeProvider) Advance(d time.Duration) { m.now = m.now.Add(d) }

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}
