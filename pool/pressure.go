// File: pool/pressure.go
package pool

import "github.com/lguibr/bollywood/actor"

// Pressure measures a scalar load reading over the current delegate set
// (spec §4.2's "pressure functions used by eval").
type Pressure func(delegates []*actor.Ref) int

// MailboxPressure counts delegates whose mailbox depth exceeds threshold.
func MailboxPressure(threshold int) Pressure {
	return func(delegates []*actor.Ref) int {
		count := 0
		for _, d := range delegates {
			if d.MailboxSize() > threshold {
				count++
			}
		}
		return count
	}
}

// ActiveFuturesPressure counts delegates currently holding an unresolved
// reply slot — i.e. the router is mid-ask to them (spec §4.2).
func ActiveFuturesPressure(delegates []*actor.Ref) int {
	count := 0
	for _, d := range delegates {
		if d.HasPendingReply() {
			count++
		}
	}
	return count
}
