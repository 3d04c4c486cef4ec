// File: dispatch/config.go
package dispatch

import "time"

// Config is the dispatcher's configuration surface (spec §6): a name used
// for logging, plus the thread pool's core/max size and keep-alive. The
// task queue itself has no bound — mailboxes and the executor's backlog
// are both unbounded, matching spec §1's "no back-pressure to producers".
//
// Mirrors the teacher's utils.Config/DefaultConfig shape: a plain struct
// with a constructor supplying sensible defaults, rather than a
// flags/env-parsed configuration object (this is a library, not a CLI).
type Config struct {
	// Name identifies the dispatcher in logs.
	Name string

	// CoreSize is the number of worker goroutines kept running for the
	// dispatcher's lifetime.
	CoreSize int

	// MaxSize is the ceiling on worker goroutines, including overflow
	// workers spun up under backlog.
	MaxSize int

	// KeepAlive is how long an idle overflow worker waits for new work
	// before retiring.
	KeepAlive time.Duration
}

// DefaultConfig returns a Config sized for a modest, general-purpose
// dispatcher.
func DefaultConfig(name string) Config {
	return Config{
		Name:      name,
		CoreSize:  4,
		MaxSize:   16,
		KeepAlive: 10 * time.Second,
	}
}
