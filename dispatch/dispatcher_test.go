package dispatch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/bollywood/actor"
)

// countingActor records every message it receives and, when told to, blocks
// until released — the hook used to force the owner-lock-held situation
// that drives a peer into the donation path.
type countingActor struct {
	mu       sync.Mutex
	received []interface{}
	block    chan struct{}
}

func (c *countingActor) Receive(ctx actor.Context) {
	c.mu.Lock()
	c.received = append(c.received, ctx.Message())
	c.mu.Unlock()

	if ctx.Message() == "block" {
		<-c.block
	}
	if ctx.RequestID() != "" {
		ctx.Reply("ok")
	}
}

func (c *countingActor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.received)
}

func newDispatcher(t *testing.T, name string) *Dispatcher {
	t.Helper()
	d := New(DefaultConfig(name), nil)
	require.NoError(t, d.Start())
	t.Cleanup(d.Shutdown)
	return d
}

func TestDispatcher_SendAndDrain(t *testing.T) {
	d := newDispatcher(t, "send")
	behavior := &countingActor{}
	ref, err := d.Spawn(actor.NewProps(func() actor.Actor { return behavior }).WithName("worker"))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, d.Send(ref, i, nil))
	}

	assert.Eventually(t, func() bool {
		return behavior.count() == 6 // Started + 5 sends
	}, time.Second, time.Millisecond)
}

func TestDispatcher_Ask(t *testing.T) {
	d := newDispatcher(t, "ask")
	ref, err := d.Spawn(actor.NewProps(func() actor.Actor { return &countingActor{} }).WithName("worker"))
	require.NoError(t, err)

	reply, err := d.Ask(ref, "ping", nil, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
}

func TestDispatcher_AskTimeout(t *testing.T) {
	d := newDispatcher(t, "timeout")
	behavior := &countingActor{block: make(chan struct{})}
	ref, err := d.Spawn(actor.NewProps(func() actor.Actor { return behavior }).WithName("worker"))
	require.NoError(t, err)

	require.NoError(t, d.Send(ref, "block", nil))
	assert.Eventually(t, func() bool { return ref.Lock.Locked() }, time.Second, time.Millisecond)

	_, err = d.Ask(ref, "ping", nil, 20*time.Millisecond)
	assert.ErrorIs(t, err, actor.ErrTimeout)

	close(behavior.block)
}

// TestDispatcher_DonatesUnderContention exercises the work-stealing path:
// one actor is kept busy (its lock held), a second, idle actor is
// registered as a candidate thief, and messages sent to the busy actor
// while it's blocked should end up processed by the thief instead of
// piling up untouched.
func TestDispatcher_DonatesUnderContention(t *testing.T) {
	d := newDispatcher(t, "donate")

	owner := &countingActor{block: make(chan struct{})}
	ownerRef, err := d.Spawn(actor.NewProps(func() actor.Actor { return owner }).WithName("owner"))
	require.NoError(t, err)

	thief := &countingActor{}
	_, err = d.Spawn(actor.NewProps(func() actor.Actor { return thief }).WithName("thief"))
	require.NoError(t, err)

	require.NoError(t, d.Send(ownerRef, "block", nil))
	assert.Eventually(t, func() bool { return ownerRef.Lock.Locked() }, time.Second, time.Millisecond)

	require.NoError(t, d.Send(ownerRef, "donated-1", nil))
	require.NoError(t, d.Send(ownerRef, "donated-2", nil))

	// The thief starts with one message already processed (its own
	// Started), so two donated messages bring it to three.
	assert.Eventually(t, func() bool {
		return thief.count() >= 3
	}, time.Second, time.Millisecond)

	close(owner.block)

	// Started + "block" only: the two donated messages are tail-polled off
	// the owner's mailbox and never processed by the owner.
	assert.Eventually(t, func() bool { return owner.count() == 2 }, time.Second, time.Millisecond)
}

func TestDispatcher_NoThiefFallsBackToOwner(t *testing.T) {
	d := newDispatcher(t, "solo")
	owner := &countingActor{block: make(chan struct{})}
	ownerRef, err := d.Spawn(actor.NewProps(func() actor.Actor { return owner }).WithName("solo-owner"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return owner.count() == 1 }, time.Second, time.Millisecond) // Started
	require.NoError(t, d.Send(ownerRef, "block", nil))
	assert.Eventually(t, func() bool { return ownerRef.Lock.Locked() }, time.Second, time.Millisecond)

	require.NoError(t, d.Send(ownerRef, "queued", nil))
	assert.Eventually(t, func() bool { return ownerRef.MailboxSize() == 1 }, time.Second, time.Millisecond)

	close(owner.block)
	assert.Eventually(t, func() bool { return owner.count() == 3 }, time.Second, time.Millisecond)
}

func TestDispatcher_UnregisteredMemberIsNeverAThief(t *testing.T) {
	d := newDispatcher(t, "unreg")
	ref, err := d.Spawn(actor.NewProps(func() actor.Actor { return &countingActor{} }).WithName("solo"))
	require.NoError(t, err)
	d.Unregister(ref)
	assert.Empty(t, d.Members())
}
