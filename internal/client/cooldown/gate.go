// Package cooldown implements the resend gate shown after a password reset
// request: once armed, resending is refused until the window elapses.
package cooldown

import (
	"fmt"
	"sync"
	"time"
)

// DefaultWindow is the resend cooldown of the forgot-password flow.
const DefaultWindow = 60 * time.Second

// Gate is safe for concurrent use. The zero value is not usable; call New.
type Gate struct {
	mu      sync.Mutex
	window  time.Duration
	now     func() time.Time
	readyAt time.Time
}

// New returns an unarmed gate. A nil clock means time.Now.
func New(window time.Duration, now func() time.Time) *Gate {
	if now == nil {
		now = time.Now
	}
	return &Gate{window: window, now: now}
}

// Start arms (or re-arms) the gate for a full window from now.
func (g *Gate) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.readyAt = g.now().Add(g.window)
}

func (g *Gate) Ready() bool {
	return g.Remaining() == 0
}

// Remaining is rounded up to whole seconds and never negative.
func (g *Gate) Remaining() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	left := g.readyAt.Sub(g.now())
	if left <= 0 {
		return 0
	}
	if r := left % time.Second; r != 0 {
		left += time.Second - r
	}
	return left
}

// Format renders the remaining time as m:ss, e.g. "0:59".
func (g *Gate) Format() string {
	return FormatDuration(g.Remaining())
}

// FormatDuration renders d as m:ss, rounding up to whole seconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
