package testing

import (
	"sync"
	"testing"
	"time"

	"github.com/go-drift/carousel/pkg/dom"
)

// InstallFakeClock replaces the dom package clock with a FakeClock for
// the duration of the test and returns it. The previous clock is
// restored via t.Cleanup.
func InstallFakeClock(t *testing.T) *FakeClock {
	clk := NewFakeClock()
	prev := dom.SetClock(clk)
	t.Cleanup(func() { dom.SetClock(prev) })
	return clk
}

// FakeClock provides controllable time for deterministic timer and
// animation tests. All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
