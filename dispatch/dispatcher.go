// File: dispatch/dispatcher.go
package dispatch

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lguibr/bollywood/actor"
)

// Dispatcher is the spec's WorkStealingDispatcher (§4.1): it owns a worker
// thread pool and a registry of homogeneous pool members, and schedules a
// task per incoming message that either drains the receiver's mailbox or
// donates the receiver's queued work to an idle peer.
//
// This replaces the teacher's per-actor goroutine model (bollywood.process
// ran its own `for { select }` loop). Here an actor.Ref is a passive
// mailbox+lock pair; the Dispatcher's executor is what drives Receive
// calls, which is what makes stealing and donation possible in the first
// place — two actors can only trade work if neither one owns a dedicated
// thread.
type Dispatcher struct {
	cfg      Config
	log      *zap.SugaredLogger
	members  *memberSet
	executor *executor

	active atomic.Bool

	lastThiefIndex atomic.Uint64
}

// New builds a Dispatcher. It must be started with Start before Dispatch
// will accept work.
func New(cfg Config, log *zap.SugaredLogger) *Dispatcher {
	if log == nil {
		log = newNopLogger()
	}
	if cfg.Name == "" {
		cfg.Name = "dispatcher"
	}
	return &Dispatcher{
		cfg:      cfg,
		log:      log.With("dispatcher", cfg.Name),
		members:  newMemberSet(),
		executor: newExecutor(cfg.CoreSize, cfg.MaxSize, cfg.KeepAlive),
	}
}

// Start flips the dispatcher active and launches its worker pool. Returns
// ErrExecutorAlreadyBuilt if called more than once.
func (d *Dispatcher) Start() error {
	d.executor.mu.Lock()
	stopped := d.executor.closed
	d.executor.mu.Unlock()
	if stopped || !d.active.CompareAndSwap(false, true) {
		return ErrExecutorAlreadyBuilt
	}
	d.executor.start()
	d.log.Debugw("dispatcher started", "core_size", d.cfg.CoreSize, "max_size", d.cfg.MaxSize)
	return nil
}

// Register adds ref to the pool, pinning the member type on first
// registration (spec §4.1's register operation).
func (d *Dispatcher) Register(ref *actor.Ref) error {
	return d.members.Register(ref)
}

// Unregister removes ref from the pool.
func (d *Dispatcher) Unregister(ref *actor.Ref) {
	d.members.Unregister(ref)
}

// Spawn produces a new actor from props, registers it, and delivers
// Started — the Dispatcher-owned equivalent of the teacher's
// Engine.Spawn, minus the dedicated goroutine.
func (d *Dispatcher) Spawn(props *actor.Props) (*actor.Ref, error) {
	name := props.Name
	if name == "" {
		name = "actor"
	}
	behavior := props.Producer()
	ref := actor.NewRefWithMailboxHint(actor.NewPID(name), behavior, props.MailboxHint)

	if err := d.Register(ref); err != nil {
		return nil, err
	}

	d.Deliver(ref, actor.Started{}, nil, nil)
	return ref, nil
}

// Deliver implements actor.Sender: it enqueues msg on target's mailbox and
// schedules a dispatch task, exactly as Send/Ask do. Context.Tell uses
// this so actor behaviors can message peers without importing dispatch.
func (d *Dispatcher) Deliver(target *actor.Ref, msg interface{}, sender *actor.PID, reply *actor.Future) {
	target.Mailbox().Push(&actor.Envelope{Message: msg, Sender: sender, Reply: reply})
	_ = d.Dispatch(target)
}

// Send enqueues msg on receiver's mailbox with no reply slot and schedules
// a dispatch task.
func (d *Dispatcher) Send(receiver *actor.Ref, msg interface{}, sender *actor.PID) error {
	if !d.active.Load() {
		return ErrDispatcherNotStarted
	}
	receiver.Mailbox().Push(&actor.Envelope{Message: msg, Sender: sender})
	return d.Dispatch(receiver)
}

// Ask enqueues msg on receiver's mailbox with a reply slot, schedules a
// dispatch task, and blocks until the reply arrives or timeout elapses.
func (d *Dispatcher) Ask(receiver *actor.Ref, msg interface{}, sender *actor.PID, timeout time.Duration) (interface{}, error) {
	if !d.active.Load() {
		return nil, ErrDispatcherNotStarted
	}
	fut := actor.NewFuture()
	receiver.Mailbox().Push(&actor.Envelope{Message: msg, Sender: sender, Reply: fut})
	if err := d.Dispatch(receiver); err != nil {
		return nil, err
	}
	return fut.Await(timeout)
}

// Dispatch schedules exactly one executor task for receiver (spec §4.1).
// The task tries to drain receiver's own mailbox; if receiver is already
// being drained by another worker, it looks for an idle thief and donates
// receiver's queued tail messages to it instead.
func (d *Dispatcher) Dispatch(receiver *actor.Ref) error {
	if !d.active.Load() {
		return ErrDispatcherNotStarted
	}
	d.executor.submit(func() {
		d.runDispatchTask(receiver)
	})
	return nil
}

func (d *Dispatcher) runDispatchTask(receiver *actor.Ref) {
	if d.tryProcessMailbox(receiver) {
		return
	}

	thief := d.findThief(receiver)
	if thief == nil {
		// Owner's lock is held by another worker; that worker will pick up
		// whatever is left in the mailbox. Nothing more to do here.
		return
	}

	d.tryDonateAndProcessMessages(receiver, thief)
}

// tryProcessMailbox implements spec §4.1's algorithm of the same name: it
// loops acquiring receiver's lock and draining until the mailbox is
// observed empty immediately after a successful drain, closing the race
// between the last poll and a concurrent producer's append.
func (d *Dispatcher) tryProcessMailbox(receiver *actor.Ref) bool {
	drained := false
	for {
		if !receiver.Lock.TryAcquire() {
			return drained
		}
		d.drain(receiver)
		receiver.Lock.Release()
		drained = true

		if receiver.Mailbox().IsEmpty() {
			return drained
		}
	}
}

// drain repeatedly polls receiver's mailbox head and invokes its behavior.
// A panic inside Receive is caught and reported (spec §4.1: "failures
// inside the receive function ... do not abort the drain loop"); it does
// not propagate to the dispatcher's worker goroutine.
func (d *Dispatcher) drain(receiver *actor.Ref) {
	for {
		env := receiver.Mailbox().PollHead()
		if env == nil {
			return
		}
		d.invoke(receiver, env)
	}
}

func (d *Dispatcher) invoke(receiver *actor.Ref, env *actor.Envelope) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Errorw("actor panicked while processing message",
				"actor", receiver.PID().String(),
				"panic", r,
				"stack", string(debug.Stack()),
			)
			if env.Reply != nil {
				env.Reply.CompleteError(fmt.Errorf("dispatch: actor %s panicked: %v", receiver.PID(), r))
			}
		}
	}()

	requestID := ""
	if env.Reply != nil {
		requestID = receiver.PID().String() + "-ask"
	}
	ctx := actor.NewContext(receiver.PID(), env.Sender, env.Message, env.Reply, requestID, d)
	receiver.Behavior().Receive(ctx)
}

// findThief scans a snapshot of members starting at lastThiefIndex and
// returns the first actor other than receiver with an empty mailbox (spec
// §4.1). It advances lastThiefIndex past whatever it finds for round-robin
// fairness across victims, and leaves the index untouched when nothing is
// found. The modulus uses max(1, len) rather than the source's off-by-one
// `> size` bound (spec §9 open question).
func (d *Dispatcher) findThief(receiver *actor.Ref) *actor.Ref {
	members := d.members.Snapshot()
	n := len(members)
	if n == 0 {
		return nil
	}

	start := int(d.lastThiefIndex.Load() % uint64(n))
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		candidate := members[idx]
		if candidate.UUID() == receiver.UUID() {
			continue
		}
		if candidate.Mailbox().IsEmpty() {
			d.lastThiefIndex.Store(uint64((idx + 1) % n))
			return candidate
		}
	}
	return nil
}

// tryDonateAndProcessMessages implements spec §4.1: acquire the thief's
// lock (non-blocking); if unavailable, give up. Otherwise repeatedly
// tail-poll receiver's mailbox, re-enqueue each message on the thief (the
// reply slot, if any, is not carried over — see spec §9's open question
// and DESIGN.md), then drain the thief.
func (d *Dispatcher) tryDonateAndProcessMessages(receiver, thief *actor.Ref) {
	if !thief.Lock.TryAcquire() {
		return
	}
	defer thief.Lock.Release()

	for {
		env := receiver.Mailbox().PollTail()
		if env == nil {
			break
		}
		thief.Mailbox().Push(&actor.Envelope{Message: env.Message, Sender: env.Sender})
		d.drain(thief)
	}
}

// Stop delivers the Stopping/Stopped lifecycle messages to ref, then
// unregisters it from the pool. Unlike the teacher's Engine.Stop, there is
// no dedicated goroutine to join: the lifecycle messages are simply queued
// through the normal Send path like any other message, and ref is dropped
// from the member set immediately afterward so findThief and future
// selections stop considering it.
func (d *Dispatcher) Stop(ref *actor.Ref) {
	ref.Stop()
	_ = d.Send(ref, actor.Stopping{}, nil)
	_ = d.Send(ref, actor.Stopped{}, nil)
	d.Unregister(ref)
}

// Shutdown stops the executor, preventing any further task from running,
// flips active false, and drops every member reference (spec §4.1's
// "Termination"). Messages left in mailboxes after Shutdown are not
// drained.
func (d *Dispatcher) Shutdown() {
	if !d.active.CompareAndSwap(true, false) {
		return
	}
	d.executor.stop()
	d.members.Clear()
	d.log.Debugw("dispatcher shut down")
}

// Active reports whether Start has run and Shutdown has not.
func (d *Dispatcher) Active() bool { return d.active.Load() }

// Members returns a stable snapshot of the registered pool.
func (d *Dispatcher) Members() []*actor.Ref { return d.members.Snapshot() }
