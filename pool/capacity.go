// File: pool/capacity.go
package pool

import "github.com/lguibr/bollywood/actor"

// CapacityStrategy decides the requested change (Δ) in delegate count
// given the current set (spec §4.2's "capacity" extension point).
type CapacityStrategy interface {
	Capacity(delegates []*actor.Ref) int
}

// Evaluator composes a Pressure reading with a Filter into the single
// function Bounded needs: current delegates in, Δ out.
type Evaluator func(delegates []*actor.Ref) int

// ComposeEvaluator builds an Evaluator from a Pressure reading and a
// Filter, the glue spec §4.2 calls "eval".
func ComposeEvaluator(pressure Pressure, filter Filter) Evaluator {
	return func(delegates []*actor.Ref) int {
		return filter(pressure(delegates), len(delegates))
	}
}

// FixedSizeStrategy only ever grows, up to Limit, and never shrinks.
type FixedSizeStrategy struct {
	Limit int
}

// NewFixedSize builds a FixedSizeStrategy.
func NewFixedSize(limit int) *FixedSizeStrategy {
	return &FixedSizeStrategy{Limit: limit}
}

func (f *FixedSizeStrategy) Capacity(delegates []*actor.Ref) int {
	delta := f.Limit - len(delegates)
	if delta < 0 {
		return 0
	}
	return delta
}

// BoundedStrategy clamps eval's raw delta so the resulting pool size never
// leaves [Lower, Upper] (spec §4.2, §8's bounded-capacity invariant).
type BoundedStrategy struct {
	Lower int
	Upper int
	Eval  Evaluator
}

// NewBounded builds a BoundedStrategy.
func NewBounded(lower, upper int, eval Evaluator) *BoundedStrategy {
	return &BoundedStrategy{Lower: lower, Upper: upper, Eval: eval}
}

func (b *BoundedStrategy) Capacity(delegates []*actor.Ref) int {
	delta := b.Eval(delegates)
	n := len(delegates)
	target := n + delta

	if target < b.Lower {
		target = b.Lower
	}
	if target > b.Upper {
		target = b.Upper
	}
	return target - n
}
