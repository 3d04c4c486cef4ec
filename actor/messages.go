// File: actor/messages.go
package actor

// --- System Messages ---

// Started is delivered to an actor once it has been registered with a
// dispatcher and is eligible to receive user messages.
type Started struct{}

// Stopping is queued for an actor by Dispatcher.Stop to signal it should
// release resources. Messages sent to the actor after it are not refused.
type Stopping struct{}

// Stopped is queued right after Stopping by Dispatcher.Stop. The actor is
// dropped from the dispatcher's member set as soon as both are queued, so
// Stopped is usually delivered after that removal.
type Stopped struct{}

// Failure is sent to a parent when a linked child actor terminates
// abnormally. The supervisor/restart policy that decides what to do with
// a Failure lives outside this package (see spec §1, "out of scope").
type Failure struct {
	Who    *PID
	Reason interface{}
}
