// File: actor/actor.go
package actor

// Actor is the interface actor behaviors implement. Receive is invoked at
// most once at a time for a given actor — enforced by the dispatcher via
// the actor's Ref.Lock, never by Actor implementations themselves.
type Actor interface {
	// Receive processes a single incoming message using ctx to learn the
	// sender, the message itself, and (if the send was an ask) to reply.
	Receive(ctx Context)
}

// Producer creates a new Actor instance. Dispatchers call Producer exactly
// once per spawned Ref.
type Producer func() Actor
