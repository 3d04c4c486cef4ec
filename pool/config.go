// File: pool/config.go
package pool

import (
	"time"

	"go.uber.org/zap"

	"github.com/lguibr/bollywood/actor"
	"github.com/lguibr/bollywood/dispatch"
)

// RouterConfig bundles the three extension points spec §4.2 calls out —
// instance factory, selector, capacity strategy — plus the dispatcher the
// delegates are spawned onto and the timeout used when a forwarded message
// is ask-style.
type RouterConfig struct {
	// Instance builds one new delegate's behavior. Required.
	Instance actor.Producer

	// Selector picks which delegates see a given message. Required.
	Selector Selector

	// Capacity decides how the pool grows or shrinks. Required.
	Capacity CapacityStrategy

	// Delegates is the dispatcher delegates are spawned on and forwarded
	// to. A Dispatcher pins one member type on first registration, so a
	// dispatcher already hosting the router rejects delegates of another
	// behavior type; use a dedicated one. Required.
	Delegates *dispatch.Dispatcher

	// AskTimeout bounds a forwarded ask-style message. Defaults to 5s.
	AskTimeout time.Duration

	// Name prefixes spawned delegates' PIDs. Defaults to "delegate".
	Name string

	Log *zap.SugaredLogger
}

// NewPoolRouter returns a Producer that builds a PoolRouter from cfg — the
// value application code passes to a host Dispatcher's Spawn, the same way
// any other actor.Props.Producer is used.
func NewPoolRouter(cfg RouterConfig) actor.Producer {
	if cfg.AskTimeout <= 0 {
		cfg.AskTimeout = 5 * time.Second
	}
	if cfg.Name == "" {
		cfg.Name = "delegate"
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop().Sugar()
	}
	cfg.Log = cfg.Log.With("router", cfg.Name)
	return func() actor.Actor {
		return &PoolRouter{cfg: cfg}
	}
}
