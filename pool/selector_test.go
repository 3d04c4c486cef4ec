package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lguibr/bollywood/actor"
)

func refWithMailbox(depth int) *actor.Ref {
	ref := actor.NewRef(actor.NewPID("member"), nil)
	for i := 0; i < depth; i++ {
		ref.Mailbox().Push(&actor.Envelope{Message: i})
	}
	return ref
}

func TestSmallestMailboxSelector_PicksLeastLoaded(t *testing.T) {
	busy := refWithMailbox(5)
	idle := refWithMailbox(0)
	middling := refWithMailbox(2)

	sel := NewSmallestMailbox(1, false)
	chosen, count := sel.Select([]*actor.Ref{busy, middling, idle})
	assert.Equal(t, 1, count)
	assert.Same(t, idle, chosen[0])
}

func TestSmallestMailboxSelector_EmptyPool(t *testing.T) {
	sel := NewSmallestMailbox(1, false)
	chosen, count := sel.Select(nil)
	assert.Equal(t, 0, count)
	assert.Nil(t, chosen)
}

func TestRoundRobinSelector_RotatesAcrossCalls(t *testing.T) {
	a := refWithMailbox(0)
	b := refWithMailbox(0)
	c := refWithMailbox(0)
	members := []*actor.Ref{a, b, c}

	sel := NewRoundRobin(1, false)
	first, _ := sel.Select(members)
	second, _ := sel.Select(members)
	third, _ := sel.Select(members)
	fourth, _ := sel.Select(members)

	assert.Same(t, a, first[0])
	assert.Same(t, b, second[0])
	assert.Same(t, c, third[0])
	assert.Same(t, a, fourth[0])
}

func TestRoundRobinSelector_PartialFillClampsToPoolSize(t *testing.T) {
	a := refWithMailbox(0)
	b := refWithMailbox(0)
	sel := NewRoundRobin(5, true)

	chosen, count := sel.Select([]*actor.Ref{a, b})
	assert.Equal(t, 2, count)
	assert.Len(t, chosen, 2)
}

func TestRoundRobinSelector_NoPartialFillWrapsToSatisfyK(t *testing.T) {
	a := refWithMailbox(0)
	b := refWithMailbox(0)
	sel := NewRoundRobin(5, false)

	chosen, count := sel.Select([]*actor.Ref{a, b})
	assert.Equal(t, 5, count)
	assert.Len(t, chosen, 5)
}
