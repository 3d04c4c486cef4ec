// File: actor/props.go
package actor

// Props configures how a new actor is created and registered. It is the
// generalization of the teacher's bollywood.Props, carrying a Producer plus
// the homogeneity/naming metadata the dispatcher needs at registration.
type Props struct {
	// Producer builds the behavior instance. Required.
	Producer Producer

	// Name is used as the PID prefix; defaults to "actor" when empty.
	Name string

	// MailboxHint is an optional sizing hint; the mailbox itself is
	// unbounded (spec §1 Non-goals: no producer back-pressure), so this
	// only pre-sizes the backing slice.
	MailboxHint int
}

// NewProps builds a Props from a producer, panicking if producer is nil —
// matching the teacher's bollywood.NewProps fail-fast contract.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("actor: producer cannot be nil")
	}
	return &Props{Producer: producer}
}

// WithName sets the PID prefix and returns the same Props for chaining.
func (p *Props) WithName(name string) *Props {
	p.Name = name
	return p
}
