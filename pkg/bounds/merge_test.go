package bounds_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/philipparndt/gobounds/pkg/bounds"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/stretchr/testify/require"
)

func randomVertex(r *rand.Rand) geometry.Vector3 {
	return geometry.NewVector3(r.NormFloat64()*1e3, r.NormFloat64()*1e-2, r.Float64()*7-3)
}

// randomTriangles builds a deterministic soup of n triangles.
func randomTriangles(n int, seed int64) []geometry.Triangle {
	r := rand.New(rand.NewSource(seed))
	tris := make([]geometry.Triangle, n)
	for i := range tris {
		tris[i] = geometry.NewTriangle(geometry.Vector3{}, randomVertex(r), randomVertex(r), randomVertex(r))
	}
	return tris
}

func triangleBoxes(tris []geometry.Triangle) []geometry.AABB {
	boxes := make([]geometry.AABB, len(tris))
	for i, tri := range tris {
		boxes[i] = tri.Bounds()
	}
	return boxes
}

func TestMerge(t *testing.T) {
	t.Run("no boxes gives the empty box", func(t *testing.T) {
		require.Equal(t, geometry.NewAABB(), bounds.Merge())
	})

	t.Run("scenario", func(t *testing.T) {
		merged := bounds.Merge(
			geometry.AABBFromMinMax(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 1)),
			geometry.AABBFromMinMax(geometry.NewVector3(2, 2, 2), geometry.NewVector3(3, 3, 3)),
		)
		require.Equal(t, geometry.NewVector3(0, 0, 0), merged.Min)
		require.Equal(t, geometry.NewVector3(3, 3, 3), merged.Max)
		require.InDelta(t, 54.0, merged.SurfaceArea(), 1e-10)
	})
}

func TestMergeParallelMatchesSequential(t *testing.T) {
	boxes := triangleBoxes(randomTriangles(50_000, 42))
	want := bounds.Merge(boxes...)

	for _, workers := range []int{1, 2, 3, 8, 64, 1000} {
		got, err := bounds.MergeParallel(context.Background(), boxes, workers)
		require.NoError(t, err)
		require.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestMergeParallelSmallInputs(t *testing.T) {
	got, err := bounds.MergeParallel(context.Background(), nil, 4)
	require.NoError(t, err)
	require.Equal(t, geometry.NewAABB(), got)

	boxes := triangleBoxes(randomTriangles(10, 1))
	got, err = bounds.MergeParallel(context.Background(), boxes, 4)
	require.NoError(t, err)
	require.Equal(t, bounds.Merge(boxes...), got)
}

func TestMergeParallelErrors(t *testing.T) {
	boxes := triangleBoxes(randomTriangles(5000, 3))

	_, err := bounds.MergeParallel(context.Background(), boxes, 0)
	require.ErrorIs(t, err, bounds.ErrNoWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bounds.MergeParallel(ctx, boxes, 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMergeTriangles(t *testing.T) {
	tris := randomTriangles(20_000, 9)

	got, err := bounds.MergeTriangles(context.Background(), tris, 4)
	require.NoError(t, err)

	want := geometry.NewAABB()
	for _, tri := range tris {
		want.ExpandPoint(tri.V1)
		want.ExpandPoint(tri.V2)
		want.ExpandPoint(tri.V3)
	}
	require.Equal(t, want, got)
}

func TestAccumulatorConcurrentAdd(t *testing.T) {
	boxes := triangleBoxes(randomTriangles(8000, 5))
	acc := bounds.NewAccumulator()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		part := boxes[w*1000 : (w+1)*1000]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, b := range part {
				acc.Add(b)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, bounds.Merge(boxes...), acc.Box())
	require.Equal(t, 8000, acc.Count())
}

func TestAccumulatorPointsAndReset(t *testing.T) {
	acc := bounds.NewAccumulator()
	require.True(t, acc.Box().IsEmpty())

	acc.AddPoint(geometry.NewVector3(1, 2, 3))
	acc.AddPoint(geometry.NewVector3(-1, 5, 0))
	require.Equal(t, geometry.NewVector3(-1, 2, 0), acc.Box().Min)
	require.Equal(t, geometry.NewVector3(1, 5, 3), acc.Box().Max)
	require.Equal(t, 2, acc.Count())

	acc.Reset()
	require.Equal(t, geometry.NewAABB(), acc.Box())
	require.Zero(t, acc.Count())
}
