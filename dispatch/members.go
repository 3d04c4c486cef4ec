// File: dispatch/members.go
package dispatch

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/lguibr/bollywood/actor"
)

// memberSet is the copy-on-write container behind Dispatcher.members (spec
// §3/§9): register/unregister mutate under a mutex, but Snapshot returns a
// stable slice that findThief (and any other reader) can scan without
// holding any lock and without racing a concurrent mutation.
type memberSet struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[[]*actor.Ref]

	memberType atomic.Pointer[reflect.Type]
}

func newMemberSet() *memberSet {
	ms := &memberSet{}
	empty := make([]*actor.Ref, 0)
	ms.snapshot.Store(&empty)
	return ms
}

// Snapshot returns the current member slice. The returned slice must not be
// mutated by the caller; register/unregister always install a fresh slice
// rather than mutating the one readers may still hold.
func (ms *memberSet) Snapshot() []*actor.Ref {
	return *ms.snapshot.Load()
}

// Register appends ref, pinning memberType on first registration. Returns
// ErrHeterogeneousPoolMember if ref's concrete type does not match an
// already-pinned memberType.
func (ms *memberSet) Register(ref *actor.Ref) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ty := ref.ConcreteType()
	if pinned := ms.memberType.Load(); pinned != nil {
		if *pinned != ty {
			return ErrHeterogeneousPoolMember
		}
	} else {
		ms.memberType.Store(&ty)
	}

	cur := ms.Snapshot()
	for _, m := range cur {
		if m.UUID() == ref.UUID() {
			return nil
		}
	}
	next := make([]*actor.Ref, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, ref)
	ms.snapshot.Store(&next)
	return nil
}

// Unregister removes ref by uuid, if present.
func (ms *memberSet) Unregister(ref *actor.Ref) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	cur := ms.Snapshot()
	idx := -1
	for i, m := range cur {
		if m.UUID() == ref.UUID() {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	next := make([]*actor.Ref, 0, len(cur)-1)
	next = append(next, cur[:idx]...)
	next = append(next, cur[idx+1:]...)
	ms.snapshot.Store(&next)
}

// Clear drops every member, used by Shutdown.
func (ms *memberSet) Clear() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	empty := make([]*actor.Ref, 0)
	ms.snapshot.Store(&empty)
}
