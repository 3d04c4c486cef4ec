// File: actor/pid.go
package actor

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// pidCounter assigns short, human-readable PID strings. Uniqueness across
// process restarts is not required: the uuid on Ref is what the dispatcher
// and router use for identity comparison.
var pidCounter uint64

// PID (Process ID) is a human-readable reference to an actor instance,
// used for logging and for addressing a sender in an Envelope.
type PID struct {
	ID string
}

// String returns the string representation of the PID.
func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}

// NewPID mints a PID with a sequential, process-local ID.
func NewPID(prefix string) *PID {
	n := atomic.AddUint64(&pidCounter, 1)
	return &PID{ID: fmt.Sprintf("%s-%d", prefix, n)}
}

// UUID is the stable identity used for equality in member sets, separate
// from the human-readable PID so logs stay short while set membership
// stays collision-free.
type UUID = uuid.UUID

// NewUUID mints a fresh actor identity.
func NewUUID() UUID {
	return uuid.New()
}
