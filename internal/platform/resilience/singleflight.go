package resilience

import (
	"context"
	"fmt"
	"sync"
)

// SingleFlight collapses concurrent loads of the same key into one call.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*flightCall
}

type flightCall struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn once per key among concurrent callers. shared reports whether the caller waited
// on another caller's run. A waiter whose ctx ends returns ctx.Err() while the running call
// continues for the others. A panic in fn reaches every caller as an error.
func (g *SingleFlight) Do(ctx context.Context, key string, fn func() (any, error)) (val any, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flightCall)
	}
	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		select {
		case <-c.done:
			return c.val, c.err, true
		case <-ctx.Done():
			return nil, ctx.Err(), true
		}
	}

	c := &flightCall{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	g.run(c, fn)

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()

	return c.val, c.err, false
}

func (g *SingleFlight) run(c *flightCall, fn func() (any, error)) {
	defer close(c.done)
	defer func() {
		if r := recover(); r != nil {
			c.val, c.err = nil, fmt.Errorf("singleflight: load panicked: %v", r)
		}
	}()
	c.val, c.err = fn()
}
