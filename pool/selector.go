// File: pool/selector.go
package pool

import (
	"sort"
	"sync"

	"github.com/lguibr/bollywood/actor"
)

// Selector picks the subset of delegates that should receive the current
// message (spec §4.2's "select" extension point). Implementations may be
// stateful (RoundRobin's cursor persists across calls); the router invokes
// Select once per message on its own goroutine, so no internal locking is
// required for state that only the router touches — but RoundRobin and
// SmallestMailbox both guard their own state in case a Selector is shared
// across routers.
type Selector interface {
	// Select returns the chosen delegates and their count. On an empty
	// pool it returns a nil slice and count 0.
	Select(delegates []*actor.Ref) ([]*actor.Ref, int)
}

// effectiveCount resolves how many delegates a selection should return
// given k requested, partialFill, and the pool size n — the sizing rule
// shared by SmallestMailbox and RoundRobin (spec §4.2).
func effectiveCount(k, n int, partialFill bool) int {
	if n == 0 {
		return 0
	}
	if partialFill {
		if k < n {
			return k
		}
		return n
	}
	return k
}

// SmallestMailboxSelector routes to the k delegates with the smallest
// mailbox, breaking ties by pool position for determinism.
type SmallestMailboxSelector struct {
	K           int
	PartialFill bool

	mu sync.Mutex
}

// NewSmallestMailbox builds a SmallestMailboxSelector.
func NewSmallestMailbox(k int, partialFill bool) *SmallestMailboxSelector {
	return &SmallestMailboxSelector{K: k, PartialFill: partialFill}
}

func (s *SmallestMailboxSelector) Select(delegates []*actor.Ref) ([]*actor.Ref, int) {
	n := len(delegates)
	count := effectiveCount(s.K, n, s.PartialFill)
	if count == 0 {
		return nil, 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ordered := make([]*actor.Ref, n)
	copy(ordered, delegates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].MailboxSize() < ordered[j].MailboxSize()
	})

	chosen := make([]*actor.Ref, count)
	for i := 0; i < count; i++ {
		chosen[i] = ordered[i%n]
	}
	return chosen, count
}

// RoundRobinSelector advances a persistent cursor across calls so
// successive selections rotate evenly across the delegate pool (spec §4.2,
// §8's round-robin fairness property).
type RoundRobinSelector struct {
	K           int
	PartialFill bool

	mu   sync.Mutex
	last int
}

// NewRoundRobin builds a RoundRobinSelector with the cursor initialized
// before the first delegate (spec §4.2: "initially -1").
func NewRoundRobin(k int, partialFill bool) *RoundRobinSelector {
	return &RoundRobinSelector{K: k, PartialFill: partialFill, last: -1}
}

func (s *RoundRobinSelector) Select(delegates []*actor.Ref) ([]*actor.Ref, int) {
	n := len(delegates)
	count := effectiveCount(s.K, n, s.PartialFill)
	if count == 0 {
		return nil, 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	chosen := make([]*actor.Ref, count)
	for i := 0; i < count; i++ {
		s.last = (s.last + 1) % n
		chosen[i] = delegates[s.last]
	}
	return chosen, count
}
