// File: examplesys/system.go
package examplesys

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lguibr/bollywood/actor"
	"github.com/lguibr/bollywood/dispatch"
	"github.com/lguibr/bollywood/pool"
)

// System wires one host dispatcher, one delegate dispatcher, and a
// PoolRouter spawned on the host and backed by delegates spawned on the
// delegate dispatcher — the minimal end-to-end shape spec §4 describes,
// assembled the way application code is expected to.
type System struct {
	Host      *dispatch.Dispatcher
	Delegates *dispatch.Dispatcher
	Router    *actor.Ref
}

// New builds and starts a System with lower/upper delegate bounds governed
// by mailbox pressure, matching the bounded-capacity example from spec
// §4.2.
func New(log *zap.SugaredLogger) (*System, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	host := dispatch.New(dispatch.DefaultConfig("host"), log)
	delegates := dispatch.New(dispatch.DefaultConfig("delegates"), log)

	if err := host.Start(); err != nil {
		return nil, err
	}
	if err := delegates.Start(); err != nil {
		return nil, err
	}

	eval := pool.ComposeEvaluator(
		pool.MailboxPressure(4),
		pool.BasicFilter(pool.BasicRampup(0.5), pool.BasicBackoff(0.25, 0.25)),
	)

	cfg := pool.RouterConfig{
		Instance:   NewEcho,
		Selector:   pool.NewRoundRobin(1, true),
		Capacity:   pool.NewBounded(2, 8, eval),
		Delegates:  delegates,
		AskTimeout: 2 * time.Second,
		Name:       "echo",
		Log:        log,
	}

	router, err := host.Spawn(actor.NewProps(pool.NewPoolRouter(cfg)).WithName("echo-router"))
	if err != nil {
		return nil, err
	}

	return &System{Host: host, Delegates: delegates, Router: router}, nil
}

// Echo asks the router to process text and returns the delegate's reply.
func (s *System) Echo(text string, timeout time.Duration) (Result, error) {
	reply, err := s.Host.Ask(s.Router, Work{Text: text}, nil, timeout)
	if err != nil {
		return Result{}, err
	}
	res, ok := reply.(Result)
	if !ok {
		return Result{}, actor.ErrNoValue
	}
	return res, nil
}

// EchoAll fans texts out across the pool concurrently and returns results in
// the same order as texts, or the first error encountered. Callers that
// want to push many requests through the router at once — the scenario the
// work-stealing dispatcher and the router's selector are built for — use
// this instead of calling Echo in a loop.
func (s *System) EchoAll(ctx context.Context, texts []string, timeout time.Duration) ([]Result, error) {
	results := make([]Result, len(texts))
	g, _ := errgroup.WithContext(ctx)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			res, err := s.Echo(text, timeout)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Shutdown stops both dispatchers.
func (s *System) Shutdown() {
	s.Host.Shutdown()
	s.Delegates.Shutdown()
}
