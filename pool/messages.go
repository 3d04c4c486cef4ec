// File: pool/messages.go
package pool

import "github.com/lguibr/bollywood/actor"

// Stat is the router's control message: reply with the current delegate
// count (spec §4.2).
type Stat struct{}

// Stats is the reply to Stat.
type Stats struct {
	Count int
}

// DelegateTerminated is the supervision notification the router reacts to
// by removing the named delegate (spec §4.2, §7 DelegateTerminal). The
// supervisor/restart machinery that decides a delegate has exceeded its
// restart budget lives outside this package (spec §1, out of scope); this
// message is how that external collaborator tells the router about it.
// Victim is matched by uuid, per spec §4.2 ("remove X from delegates by
// uuid match").
type DelegateTerminated struct {
	Victim *actor.Ref
}
