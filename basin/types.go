package basin

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/basins/heightmap"
)

// Sentinel errors for basin exploration.
var (
	// ErrNilMap is returned when a nil *heightmap.HeightMap is passed.
	ErrNilMap = errors.New("basin: height map is nil")

	// ErrStartOutOfBounds is returned when a start cell lies outside the map.
	ErrStartOutOfBounds = errors.New("basin: start point outside the map")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("basin: invalid option supplied")
)

// Frontier selects the worklist discipline used by the flood fill.
type Frontier int

const (
	// Stack pops the most recently discovered cell first (depth-first).
	Stack Frontier = iota
	// Queue pops the oldest discovered cell first (breadth-first).
	Queue
)

// String returns "stack" or "queue".
func (f Frontier) String() string {
	switch f {
	case Stack:
		return "stack"
	case Queue:
		return "queue"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// ParseFrontier maps "stack" or "queue" to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch s {
	case "stack", "":
		return Stack, nil
	case "queue":
		return Queue, nil
	default:
		return Stack, fmt.Errorf("%w: unknown frontier %q", ErrOptionViolation, s)
	}
}

// Option configures exploration via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of an exploration.
type Options struct {
	// Frontier selects Stack or Queue processing order.
	Frontier Frontier

	// Ridge is the lowest elevation that blocks the fill.
	Ridge int

	// Workers bounds ExploreAll concurrency; 0 means runtime.GOMAXPROCS(0).
	Workers int

	// OnVisit is called once for every member cell as it leaves the frontier.
	OnVisit func(p heightmap.Point)

	err error
}

// DefaultOptions returns Options with Stack frontier, Ridge 9,
// automatic worker count and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Frontier: Stack,
		Ridge:    heightmap.Ridge,
		Workers:  0,
		OnVisit:  func(heightmap.Point) {},
	}
}

// WithFrontier selects the worklist discipline.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		if f != Stack && f != Queue {
			o.err = fmt.Errorf("%w: unknown frontier %d", ErrOptionViolation, int(f))
			return
		}
		o.Frontier = f
	}
}

// WithRidge treats every elevation >= h as impassable.
// h must lie in [1,9]; a ridge of 0 would block every cell.
func WithRidge(h int) Option {
	return func(o *Options) {
		if h <= heightmap.MinElevation || h > heightmap.MaxElevation {
			o.err = fmt.Errorf("%w: ridge must be in [1,%d] (%d)", ErrOptionViolation, heightmap.MaxElevation, h)
			return
		}
		o.Ridge = h
	}
}

// WithWorkers bounds the number of concurrent explorations in ExploreAll.
//
//	n > 0: at most n goroutines
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnVisit registers a callback run for every member cell.
func WithOnVisit(fn func(p heightmap.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Basin is the set of cells draining to Origin.
// The zero value is an empty basin.
type Basin struct {
	// Origin is the cell the exploration started from.
	Origin heightmap.Point

	rows, cols int
	cells      []int // row-major indices, ascending
}

// Size returns the number of cells in the basin.
func (b Basin) Size() int { return len(b.cells) }

// Points returns the member cells in row-major order.
func (b Basin) Points() []heightmap.Point {
	out := make([]heightmap.Point, len(b.cells))
	for i, idx := range b.cells {
		out[i] = heightmap.Point{X: idx % b.cols, Y: idx / b.cols}
	}

	return out
}

// Contains reports whether p is a member of the basin.
func (b Basin) Contains(p heightmap.Point) bool {
	if p.X < 0 || p.X >= b.cols || p.Y < 0 || p.Y >= b.rows {
		return false
	}
	_, found := slices.BinarySearch(b.cells, p.Y*b.cols+p.X)

	return found
}

// Equal reports whether b and other hold the same cells of same-sized maps.
// Origins are not compared.
func (b Basin) Equal(other Basin) bool {
	return b.rows == other.rows && b.cols == other.cols && slices.Equal(b.cells, other.cells)
}
