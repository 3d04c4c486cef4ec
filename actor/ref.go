// File: actor/ref.go
package actor

import (
	"reflect"
	"sync/atomic"
)

// Ref is the concrete ActorRef described in spec §3: a stable identity plus
// the mailbox, lock, and lifecycle hooks the dispatcher and router rely on.
// It generalizes the teacher's bollywood.process — the process that used to
// own a private goroutine and channel now owns a Mailbox and a TryLock
// instead, because message processing is driven by the dispatcher's shared
// worker pool rather than a dedicated goroutine per actor.
type Ref struct {
	pid  *PID
	uuid UUID

	behavior   Actor
	behaviorTy reflect.Type

	mailbox *Mailbox
	Lock    TryLock

	pendingReply atomic.Bool
	stopped      atomic.Bool

	parent *Ref
}

// NewRef wires a freshly produced Actor behavior into a Ref with no
// mailbox sizing hint. Dispatcher.Spawn uses NewRefWithMailboxHint instead.
func NewRef(pid *PID, behavior Actor) *Ref {
	return NewRefWithMailboxHint(pid, behavior, 0)
}

// NewRefWithMailboxHint is NewRef plus a mailbox pre-sizing hint, wired
// from Props.MailboxHint by Dispatcher.Spawn.
func NewRefWithMailboxHint(pid *PID, behavior Actor, mailboxHint int) *Ref {
	return &Ref{
		pid:        pid,
		uuid:       NewUUID(),
		behavior:   behavior,
		behaviorTy: reflect.TypeOf(behavior),
		mailbox:    NewMailboxWithHint(mailboxHint),
	}
}

// PID returns the actor's human-readable identity.
func (r *Ref) PID() *PID { return r.pid }

// UUID returns the actor's stable, collision-free identity.
func (r *Ref) UUID() UUID { return r.uuid }

// ConcreteType is the type token used for pool-member homogeneity checks
// (spec §3: "all members satisfy concreteType() == memberType").
func (r *Ref) ConcreteType() reflect.Type { return r.behaviorTy }

// Behavior returns the wrapped Actor so the dispatcher can invoke Receive.
func (r *Ref) Behavior() Actor { return r.behavior }

// Mailbox exposes the actor's mailbox for poll/push operations.
func (r *Ref) Mailbox() *Mailbox { return r.mailbox }

// MailboxSize reports the actor's current queue depth.
func (r *Ref) MailboxSize() int { return r.mailbox.Size() }

// Send enqueues msg at the mailbox tail with no reply slot. Scheduling the
// resulting drain is the caller's (dispatcher's) responsibility — this
// method only performs the enqueue half of spec §3's ActorRef.send.
func (r *Ref) Send(msg interface{}, sender *PID) *Envelope {
	env := &Envelope{Message: msg, Sender: sender}
	r.mailbox.Push(env)
	return env
}

// Ask enqueues msg with a fresh reply slot and returns the Future the
// caller awaits. It does not touch the pending-reply flag; callers that
// want HasPendingReply to reflect the ask set it with MarkPendingReply and
// clear it with ClearPendingReply.
func (r *Ref) Ask(msg interface{}, sender *PID) (*Envelope, *Future) {
	fut := NewFuture()
	env := &Envelope{Message: msg, Sender: sender, Reply: fut}
	r.mailbox.Push(env)
	return env, fut
}

// HasPendingReply reports whether this actor is currently the target of an
// outstanding ask whose reply has not yet been observed. The router's
// ActiveFuturesPressure strategy reads this per delegate.
func (r *Ref) HasPendingReply() bool {
	return r.pendingReply.Load()
}

// MarkPendingReply flags the actor as the target of an ask whose reply is
// still outstanding. Callers (typically the router, forwarding an ask on a
// detached task) clear it once the reply arrives.
func (r *Ref) MarkPendingReply() { r.pendingReply.Store(true) }

// ClearPendingReply undoes MarkPendingReply.
func (r *Ref) ClearPendingReply() { r.pendingReply.Store(false) }

// Stopped reports whether Stop has been called on this actor.
func (r *Ref) Stopped() bool { return r.stopped.Load() }

// Stop marks the actor as stopped. It does not itself drain or deliver the
// Stopping/Stopped lifecycle messages; Dispatcher.Stop queues those, the
// same way the teacher's Engine.Stop sends Stopping before tearing the
// process down. Dispatcher.Shutdown and Dispatcher.Unregister send neither.
func (r *Ref) Stop() {
	r.stopped.Store(true)
}

// StartLinkedTo records parent as this actor's supervisor, so a Failure
// can be routed to it. Restart policy itself is an external collaborator
// (spec §1 Non-goals) — this only wires the link.
func (r *Ref) StartLinkedTo(parent *Ref) {
	r.parent = parent
}

// Parent returns the actor this Ref was linked to via StartLinkedTo, or nil.
func (r *Ref) Parent() *Ref { return r.parent }
