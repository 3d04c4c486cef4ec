// File: actor/context.go
package actor

// Sender is the minimal capability a Context needs in order to let a
// Receive implementation talk back to other actors: enqueue a message on
// an arbitrary Ref. The dispatcher that owns the receiving actor supplies
// the concrete implementation (it is the only thing that knows how to
// schedule a task for the target).
type Sender interface {
	// Deliver enqueues msg on target's mailbox, optionally with a reply
	// slot, and schedules it for processing.
	Deliver(target *Ref, msg interface{}, sender *PID, reply *Future)
}

// Context is passed to Actor.Receive for each message. It mirrors the
// teacher's bollywood.Context (Self/Sender/Message) and adds Reply/
// RequestID so an actor can answer an ask-style send, the way
// room_manager.go and ball_actor.go use ctx.RequestID()/ctx.Reply() in the
// teacher's application code (backed there by a newer bollywood than the
// vendored snapshot; this package implements that contract directly).
type Context interface {
	// Self returns the PID of the actor processing the message.
	Self() *PID

	// SenderPID returns the PID of the actor that sent the message, if any.
	SenderPID() *PID

	// Message returns the message being processed.
	Message() interface{}

	// RequestID returns a non-empty opaque string when the in-flight
	// message was sent via an ask and expects a reply; empty for a plain
	// send.
	RequestID() string

	// Reply completes the in-flight ask's reply slot. v may be any value
	// intended as the successful reply, or an error to fail the ask. Reply
	// is a no-op if RequestID() is empty or the slot is already completed.
	Reply(v interface{})

	// Tell sends msg to target without waiting for a reply.
	Tell(target *Ref, msg interface{})

	// Dispatcher exposes the Sender capability for advanced use (e.g.
	// delivering with an explicit sender or reply slot); most Receive
	// implementations only need Tell.
	Dispatcher() Sender
}

type context struct {
	self       *PID
	sender     *PID
	message    interface{}
	replySlot  *Future
	requestID  string
	dispatcher Sender
}

// NewContext builds a Context. Dispatchers construct one per invoked
// Receive call; actor implementations never construct their own.
func NewContext(self, sender *PID, message interface{}, reply *Future, requestID string, dispatcher Sender) Context {
	return &context{
		self:       self,
		sender:     sender,
		message:    message,
		replySlot:  reply,
		requestID:  requestID,
		dispatcher: dispatcher,
	}
}

func (c *context) Self() *PID            { return c.self }
func (c *context) SenderPID() *PID       { return c.sender }
func (c *context) Message() interface{}  { return c.message }
func (c *context) RequestID() string     { return c.requestID }
func (c *context) Dispatcher() Sender    { return c.dispatcher }

func (c *context) Reply(v interface{}) {
	if c.replySlot == nil {
		return
	}
	if err, ok := v.(error); ok {
		c.replySlot.CompleteError(err)
		return
	}
	c.replySlot.CompleteValue(v)
}

func (c *context) Tell(target *Ref, msg interface{}) {
	if c.dispatcher == nil || target == nil {
		return
	}
	c.dispatcher.Deliver(target, msg, c.self, nil)
}
