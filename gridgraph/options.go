package gridgraph

import "fmt"

// Option configures Distances via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for Distances.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this many steps.
	// Zero disables the limit.
	MaxDepth int

	// OnVisit is called for each cell as it is dequeued, with its depth.
	// Returning an error aborts the search and propagates the error.
	OnVisit func(i, depth int) error

	err error
}

// DefaultOptions returns Options with no depth limit and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		OnVisit:  func(int, int) error { return nil },
	}
}

// WithMaxDepth limits the search to cells at most d steps from the start.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run when a cell is visited.
func WithOnVisit(fn func(i, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
