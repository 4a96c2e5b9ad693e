package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a hand-driven clock for session and controller tests
// Like the monotonic source it never runs backwards
type MockTimeProvider struct {
	mu    sync.RWMutex
	start time.Time
	now   time.Time
}

// NewMockTimeProvider starts the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

// Now implements TimeProvider
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps to t, ignored when t is before the current time
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.After(m.now) {
		m.now = t
	}
}

// Advance moves the clock forward by d, negative durations are ignored
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.Step(d)
}

// Step advances by d and returns the applied delta, so a frame tick and the clock stay in step
//
//	s.Tick(clock.Step(16 * time.Millisecond))
func (m *MockTimeProvider) Step(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return d
}

// Elapsed returns the time advanced since construction
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now.Sub(m.start)
}
