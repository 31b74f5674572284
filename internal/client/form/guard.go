// Package form holds the client-side form rules: a guard that keeps a form
// from being submitted twice at once, and the field validators.
package form

import "sync/atomic"

// Guard is the "submitting" flag of one form.
type Guard struct {
	busy atomic.Bool
}

// TryAcquire marks the form as submitting. It reports false when a
// submission is already in flight.
func (g *Guard) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

func (g *Guard) Release() {
	g.busy.Store(false)
}

func (g *Guard) Busy() bool {
	return g.busy.Load()
}
