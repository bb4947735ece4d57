package token

import "sync/atomic"

// swapLock is held while a distribution cycle trades through the router.
// Transfers made while it is held are untaxed and cannot start another cycle.
type swapLock struct {
	held atomic.Bool
}

// acquire takes the lock and returns its release. ok is false when the lock
// is already held.
func (l *swapLock) acquire() (release func(), ok bool) {
	if !l.held.CompareAndSwap(false, true) {
		return nil, false
	}

	return func() { l.held.Store(false) }, true
}

func (l *swapLock) isHeld() bool {
	return l.held.Load()
}
