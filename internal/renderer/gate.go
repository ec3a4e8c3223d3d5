package renderer

import "context"

// renderGate admits one render at a time. A waiter gives up when its context ends.
type renderGate struct {
	token chan struct{}
}

func newRenderGate() *renderGate {
	g := &renderGate{token: make(chan struct{}, 1)}
	g.token <- struct{}{}
	return g
}

// tryEnter takes the gate without blocking.
func (g *renderGate) tryEnter() bool {
	select {
	case <-g.token:
		return true
	default:
		return false
	}
}

func (g *renderGate) enter(ctx context.Context) error {
	select {
	case <-g.token:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *renderGate) leave() {
	g.token <- struct{}{}
}
