// File: actor/trylock.go
package actor

import "sync/atomic"

// TryLock is a non-reentrant, try-only mutual-exclusion primitive. It is
// the per-actor "currently processing" guard referenced throughout spec
// §3-§5: acquisition never blocks, so a worker that cannot acquire a lock
// simply moves on (to find a thief) instead of waiting.
type TryLock struct {
	held atomic.Bool
}

// TryAcquire attempts to take the lock without blocking. Returns true if
// this call acquired it.
func (l *TryLock) TryAcquire() bool {
	return l.held.CompareAndSwap(false, true)
}

// Release frees the lock. Calling Release without a matching successful
// TryAcquire is a caller bug; TryLock does not detect it.
func (l *TryLock) Release() {
	l.held.Store(false)
}

// Locked reports whether the lock is currently held, for diagnostics only.
func (l *TryLock) Locked() bool {
	return l.held.Load()
}
