package basin

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/basins/heightmap"
)

// Explore flood-fills the basin containing start.
//
// Behavior:
//  1. Seed the visited set and the frontier with start.
//  2. Pop a cell; for each of its 4 neighbors skip it when already visited,
//     outside the map, or at/above the ridge; otherwise mark it visited and
//     push it.
//  3. Stop when the frontier is empty; the visited set is the basin.
//
// start itself is never checked against the ridge, so a ridge start is a
// member of its own basin; walled in by other ridges it is the only one.
// Low points of a map with more than one cell are never ridges.
//
// Returns ErrNilMap, ErrStartOutOfBounds or ErrOptionViolation.
func Explore(hm *heightmap.HeightMap, start heightmap.Point, opts ...Option) (Basin, error) {
	if hm == nil {
		return Basin{}, ErrNilMap
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Basin{}, err
	}
	if !hm.InBounds(start.X, start.Y) {
		return Basin{}, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	return explore(hm, start, o), nil
}

// explore runs the fill; inputs are already validated.
func explore(hm *heightmap.HeightMap, start heightmap.Point, o Options) Basin {
	i0 := hm.Index(start)
	seen := map[int]struct{}{i0: {}}
	frontier := []int{i0}
	head := 0 // next Queue slot; unused for Stack

	for head < len(frontier) {
		var u int
		if o.Frontier == Queue {
			u = frontier[head]
			head++
		} else {
			last := len(frontier) - 1
			u = frontier[last]
			frontier = frontier[:last]
		}

		p := hm.Coordinate(u)
		o.OnVisit(p)
		for _, d := range heightmap.Offsets {
			q := p.Add(d[0], d[1])
			h, ok := hm.At(q)
			if !ok || h >= o.Ridge {
				continue
			}
			v := hm.Index(q)
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			frontier = append(frontier, v)
		}
	}

	cells := make([]int, 0, len(seen))
	for idx := range seen {
		cells = append(cells, idx)
	}
	slices.Sort(cells)
	rows, cols := hm.Dimensions()

	return Basin{Origin: start, rows: rows, cols: cols, cells: cells}
}

// ExploreAll explores one basin per start cell, concurrently, and returns
// them in the order of starts. Every start is validated before any work
// begins. Cancelling ctx stops scheduling and returns ctx.Err().
func ExploreAll(ctx context.Context, hm *heightmap.HeightMap, starts []heightmap.Point, opts ...Option) ([]Basin, error) {
	if hm == nil {
		return nil, ErrNilMap
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	for _, s := range starts {
		if !hm.InBounds(s.X, s.Y) {
			return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, s)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Basin, len(starts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range starts {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = explore(hm, s, o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
