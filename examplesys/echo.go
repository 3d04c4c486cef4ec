// File: examplesys/echo.go
package examplesys

import "github.com/lguibr/bollywood/actor"

// Work is the payload examplesys's delegates process: echo the text back
// upper-cased, simulating a small unit of real work worth distributing
// across a pool.
type Work struct {
	Text string
}

// Result is the delegate's reply to a Work ask.
type Result struct {
	Text string
	By   string
}

// echoActor is the pool's delegate behavior. It is deliberately trivial —
// the point of this package is to exercise the dispatcher and router, not
// to demonstrate interesting business logic.
type echoActor struct {
	self string
}

// NewEcho is the Producer bound into the pool's RouterConfig.Instance.
func NewEcho() actor.Actor {
	return &echoActor{}
}

func (e *echoActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case actor.Started:
		e.self = ctx.Self().String()
	case Work:
		ctx.Reply(Result{Text: upper(msg.Text), By: e.self})
	}
}

func upper(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'z' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}
