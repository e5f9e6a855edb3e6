package bfs

import (
	"context"
	"fmt"
)

// Option configures one BFS call. Invalid values do not panic; they are
// recorded and BFS returns ErrOptionViolation before touching the graph.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of a search. Hooks are never nil
// after DefaultOptions; a nil fn passed to a With* option keeps the default.
type BFSOptions struct {
	Ctx context.Context

	// OnEnqueue fires when v is discovered at depth, before any later
	// FilterNeighbor call. Aggregation claims rows here.
	OnEnqueue func(v int, depth int)
	// OnDequeue fires when v leaves the queue.
	OnDequeue func(v int, depth int)
	// OnVisit fires after OnDequeue; a non-nil error stops the search.
	OnVisit func(v int, depth int) error

	// MaxDepth > 0 keeps the search within that many edges of the start;
	// 0 means unlimited.
	MaxDepth int

	// FilterNeighbor decides whether the unseen neighbor of curr is
	// enqueued. It runs in adjacency order, so a decision may depend on
	// what OnEnqueue recorded for earlier neighbors.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions: background context, no depth limit, all neighbors
// admitted, no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(int, int) bool { return true },
	}
}

// WithContext lets ctx cancel the search between dequeues.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func WithOnEnqueue(fn func(v int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

func WithOnDequeue(fn func(v int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs a visit hook whose error aborts the search.
func WithOnVisit(fn func(v int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to d edges (d > 0), or lifts the limit
// (d == 0). Negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("WithMaxDepth(%d): %w", d, ErrOptionViolation)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor admits a neighbor only when fn returns true.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
