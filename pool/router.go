// File: pool/router.go
package pool

import (
	"github.com/lguibr/bollywood/actor"
)

// PoolRouter is the spec's PoolRouter (§4.2): an ordinary Actor whose
// Receive implements the three-step algorithm on every non-control
// message — adjust capacity, select recipients, forward — while Stat and
// DelegateTerminated get handled directly instead of forwarded.
//
// A PoolRouter is itself spawned like any other actor (via NewPoolRouter
// bound into actor.Props), so its own mailbox is drained one message at a
// time by whatever dispatcher hosts it; that serialization is what lets it
// mutate delegates without a lock of its own.
type PoolRouter struct {
	cfg RouterConfig

	delegates []*actor.Ref

	lastCapacityDelta  int
	lastSelectionCount int
}

var _ actor.Actor = (*PoolRouter)(nil)

func (p *PoolRouter) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case actor.Started:
		p.growTo(p.cfg.Capacity.Capacity(p.delegates))

	case Stat:
		ctx.Reply(Stats{Count: len(p.delegates)})

	case DelegateTerminated:
		p.removeByUUID(msg.Victim.UUID())

	case actor.Stopping, actor.Stopped:
		// Nothing to do: the host dispatcher handles our own mailbox
		// teardown. Delegates are left running; an operator that wants
		// them torn down too should stop them explicitly before stopping
		// the router.

	default:
		p.adjustCapacity()
		p.forward(ctx, msg)
	}
}

func (p *PoolRouter) adjustCapacity() {
	delta := p.cfg.Capacity.Capacity(p.delegates)
	p.lastCapacityDelta = delta
	if delta == 0 {
		return
	}
	if delta > 0 {
		p.growTo(delta)
		return
	}
	p.shrinkBy(-delta)
}

func (p *PoolRouter) growTo(n int) {
	for i := 0; i < n; i++ {
		props := actor.NewProps(p.cfg.Instance).WithName(p.cfg.Name)
		ref, err := p.cfg.Delegates.Spawn(props)
		if err != nil {
			p.cfg.Log.Errorw("failed to spawn delegate", "error", err)
			return
		}
		p.delegates = append(p.delegates, ref)
	}
	if n != 0 {
		p.cfg.Log.Debugw("pool grew", "by", n, "size", len(p.delegates))
	}
}

func (p *PoolRouter) shrinkBy(n int) {
	if n > len(p.delegates) {
		n = len(p.delegates)
	}
	if n <= 0 {
		return
	}
	cut := p.delegates[len(p.delegates)-n:]
	p.delegates = p.delegates[:len(p.delegates)-n]
	for _, ref := range cut {
		p.cfg.Delegates.Stop(ref)
	}
	p.cfg.Log.Debugw("pool shrank", "by", n, "size", len(p.delegates))
}

func (p *PoolRouter) removeByUUID(victim actor.UUID) {
	for i, d := range p.delegates {
		if d.UUID() == victim {
			p.delegates = append(p.delegates[:i], p.delegates[i+1:]...)
			p.cfg.Log.Errorw("delegate terminated, removed from pool",
				"delegate", d.PID().String(), "size", len(p.delegates))
			return
		}
	}
}

// forward selects recipients via the configured Selector and relays msg to
// each. A plain send is relayed with Dispatcher.Send; an ask is relayed
// on a detached goroutine that awaits the delegate's reply and completes
// the router's own reply slot with it, so the original caller sees the
// delegate's answer as if it had asked the delegate directly.
func (p *PoolRouter) forward(ctx actor.Context, msg interface{}) {
	chosen, count := p.cfg.Selector.Select(p.delegates)
	p.lastSelectionCount = count
	if count == 0 {
		if ctx.RequestID() != "" {
			ctx.Reply(ErrNoDelegates)
		}
		return
	}

	for _, d := range chosen {
		if ctx.RequestID() == "" {
			if err := p.cfg.Delegates.Send(d, msg, ctx.Self()); err != nil {
				p.cfg.Log.Errorw("failed to forward to delegate", "error", err)
			}
			continue
		}

		delegate := d
		delegate.MarkPendingReply()
		go func() {
			defer delegate.ClearPendingReply()
			reply, err := p.cfg.Delegates.Ask(delegate, msg, ctx.Self(), p.cfg.AskTimeout)
			if err != nil {
				ctx.Reply(err)
				return
			}
			ctx.Reply(reply)
		}()
	}
}
