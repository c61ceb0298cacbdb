// Package bounds folds many bounding boxes into one, sequentially or
// across goroutines.
//
// A geometry.AABB is a plain value and Expand mutates it without locking.
// MergeParallel therefore gives every goroutine its own partial box and
// combines the partials once all workers are done; Accumulator serialises
// callers that want to share a single box.
package bounds

import (
	"context"
	"errors"

	"github.com/philipparndt/gobounds/pkg/geometry"
	"golang.org/x/sync/errgroup"
)

// ErrNoWorkers is returned when a parallel merge is asked to run with fewer
// than one worker.
var ErrNoWorkers = errors.New("bounds: worker count must be at least 1")

// minChunk is the smallest slice handed to a single worker. Below this the
// goroutine overhead outweighs the fold.
const minChunk = 1024

// Merge folds boxes into a single box starting from the empty box.
func Merge(boxes ...geometry.AABB) geometry.AABB {
	merged := geometry.NewAABB()
	for _, b := range boxes {
		merged.Expand(b)
	}
	return merged
}

// MergeParallel folds boxes using up to workers goroutines. The result is
// identical to Merge(boxes...) since Expand only selects existing
// coordinates and never rounds.
func MergeParallel(ctx context.Context, boxes []geometry.AABB, workers int) (geometry.AABB, error) {
	if workers < 1 {
		return geometry.AABB{}, ErrNoWorkers
	}
	if err := ctx.Err(); err != nil {
		return geometry.AABB{}, err
	}

	chunks := chunkCount(len(boxes), workers)
	if chunks <= 1 {
		return Merge(boxes...), nil
	}

	partials := make([]geometry.AABB, chunks)
	size := (len(boxes) + chunks - 1) / chunks

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < chunks; i++ {
		i := i // per-iteration copy (go 1.21 loopvar semantics)
		lo := min(i*size, len(boxes))
		hi := min(lo+size, len(boxes))
		g.Go(func() error {
			partial := geometry.NewAABB()
			for j, b := range boxes[lo:hi] {
				if j%minChunk == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				partial.Expand(b)
			}
			partials[i] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return geometry.AABB{}, err
	}

	return Merge(partials...), nil
}

// MergeTriangles bounds every triangle and folds the results in parallel.
func MergeTriangles(ctx context.Context, triangles []geometry.Triangle, workers int) (geometry.AABB, error) {
	boxes := make([]geometry.AABB, len(triangles))
	for i, tri := range triangles {
		boxes[i] = tri.Bounds()
	}
	return MergeParallel(ctx, boxes, workers)
}

func chunkCount(n, workers int) int {
	chunks := n / minChunk
	if chunks > workers {
		chunks = workers
	}
	return chunks
}
