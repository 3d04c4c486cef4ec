// File: dispatch/errors.go
package dispatch

import "errors"

// Error kinds recognized by the dispatcher (spec §7, items 1-3 — the
// "programmer error" class the dispatcher surfaces to its caller rather
// than absorbing).

// ErrDispatcherNotStarted is returned by Dispatch when called before Start
// or after Shutdown.
var ErrDispatcherNotStarted = errors.New("dispatch: dispatcher not started")

// ErrExecutorAlreadyBuilt is returned by Start when called on a dispatcher
// that has already been started.
var ErrExecutorAlreadyBuilt = errors.New("dispatch: executor already built")

// ErrHeterogeneousPoolMember is returned by Register when the actor's
// concrete type does not match the type pinned by the first registrant.
var ErrHeterogeneousPoolMember = errors.New("dispatch: actor type does not match pool's pinned member type")
