package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmind/pathgo/model"
)

func TestArena_GetNode(t *testing.T) {
	t.Run("deduplicates by state", func(t *testing.T) {
		a := New(16, 4)

		n1 := a.GetNode(1, model.State(42), 0, 1, nil)
		n2 := a.GetNode(1, model.State(42), 99, 99, n1)

		assert.Same(t, n1, n2)
		// Find-existing semantics win: the second call's arguments are ignored.
		assert.Equal(t, float32(0), n2.CostFromStart)
		assert.Nil(t, n2.Parent)
	})

	t.Run("stale frame reinitializes in place", func(t *testing.T) {
		a := New(16, 4)

		n1 := a.GetNode(1, model.State(42), 0, 1, nil)
		n1.InOpen = true
		n1.NumAdjacent = 3

		n2 := a.GetNode(2, model.State(42), 5, 7, nil)
		require.Same(t, n1, n2)
		assert.Equal(t, uint32(2), n2.Frame)
		assert.Equal(t, float32(5), n2.CostFromStart)
		assert.Equal(t, float32(7), n2.EstToGoal)
		assert.Equal(t, float32(12), n2.TotalCost)
		assert.False(t, n2.InOpen)
		assert.False(t, n2.InClosed)
		// Adjacency bookkeeping survives the frame change.
		assert.Equal(t, 3, n2.NumAdjacent)
	})

	t.Run("fresh node is cleared", func(t *testing.T) {
		a := New(16, 4)

		n := a.GetNode(1, model.State(7), 2, 3, nil)
		assert.Equal(t, -1, n.NumAdjacent)
		assert.Equal(t, -1, n.CacheIndex)
		assert.Equal(t, float32(5), n.TotalCost)
	})

	t.Run("infinite inputs give infinite total", func(t *testing.T) {
		a := New(16, 4)

		n := a.GetNode(1, model.State(7), model.InfiniteCost, 3, nil)
		assert.Equal(t, model.InfiniteCost, n.TotalCost)
	})
}

func TestArena_BlockGrowth(t *testing.T) {
	// A tiny block size must still accommodate a large graph by chaining
	// blocks, never failing allocation.
	a := New(2, 2)

	nodes := make(map[model.State]*Node, 100)
	for i := 0; i < 100; i++ {
		nodes[model.State(i)] = a.GetNode(1, model.State(i), 0, 0, nil)
	}

	assert.GreaterOrEqual(t, a.Stats().BlocksAllocated, uint64(50))

	// Earlier nodes keep their identity after growth.
	for s, n := range nodes {
		assert.Same(t, n, a.FetchNode(s))
	}
}

func TestArena_FetchNode(t *testing.T) {
	a := New(16, 4)
	n := a.GetNode(1, model.State(42), 0, 0, nil)

	assert.Same(t, n, a.FetchNode(model.State(42)))
	assert.Panics(t, func() { a.FetchNode(model.State(1234)) })
}

func TestArena_Clear(t *testing.T) {
	t.Run("releases extra blocks and forgets states", func(t *testing.T) {
		a := New(2, 2)
		for i := 0; i < 10; i++ {
			a.GetNode(1, model.State(i), 0, 0, nil)
		}
		require.Greater(t, a.Stats().BlocksAllocated, uint64(1))

		a.Clear()

		stats := a.Stats()
		assert.Equal(t, uint64(1), stats.BlocksAllocated)
		assert.Equal(t, uint64(0), stats.NodesAllocated)
		assert.Panics(t, func() { a.FetchNode(model.State(3)) })
	})

	t.Run("reusable after clear", func(t *testing.T) {
		a := New(4, 2)
		a.GetNode(1, model.State(1), 0, 0, nil)
		a.Clear()

		n := a.GetNode(1, model.State(1), 0, 0, nil)
		assert.Equal(t, -1, n.NumAdjacent)
		assert.Equal(t, uint64(1), a.Stats().NodesAllocated)
	})

	t.Run("repeated clears are no-ops", func(t *testing.T) {
		a := New(4, 2)
		a.Clear()
		a.Clear()
		assert.Equal(t, uint64(0), a.Stats().NodesAllocated)

		n := a.GetNode(1, model.State(9), 0, 0, nil)
		assert.NotNil(t, n)
	})
}

func TestArena_AdjacencyCache(t *testing.T) {
	t.Run("store and read back", func(t *testing.T) {
		a := New(8, 2) // capacity 16 entries

		n1 := a.GetNode(1, model.State(1), 0, 0, nil)
		n2 := a.GetNode(1, model.State(2), 0, 0, nil)

		start, ok := a.PushCache([]NodeCost{{Node: n1, Cost: 1.5}, {Node: n2, Cost: 2.5}})
		require.True(t, ok)

		got := a.ReadCache(start, 2, nil)
		require.Len(t, got, 2)
		assert.Same(t, n1, got[0].Node)
		assert.Equal(t, float32(1.5), got[0].Cost)
		assert.Same(t, n2, got[1].Node)
	})

	t.Run("graceful degradation when full", func(t *testing.T) {
		a := New(2, 1) // capacity 2 entries
		n := a.GetNode(1, model.State(1), 0, 0, nil)

		_, ok := a.PushCache([]NodeCost{{Node: n, Cost: 1}, {Node: n, Cost: 2}})
		require.True(t, ok)

		_, ok = a.PushCache([]NodeCost{{Node: n, Cost: 3}})
		assert.False(t, ok)
	})

	t.Run("cleared with the arena", func(t *testing.T) {
		a := New(2, 2)
		n := a.GetNode(1, model.State(1), 0, 0, nil)
		_, ok := a.PushCache([]NodeCost{{Node: n, Cost: 1}})
		require.True(t, ok)

		a.Clear()
		assert.Equal(t, uint64(0), a.Stats().CacheUsedBytes)
	})

	t.Run("out of range read panics", func(t *testing.T) {
		a := New(4, 2)
		assert.Panics(t, func() { a.ReadCache(0, 1, nil) })
	})
}

func TestArena_AllStates(t *testing.T) {
	a := New(16, 4)

	a.GetNode(1, model.State(10), 0, 0, nil)
	a.GetNode(1, model.State(20), 0, 0, nil)
	a.GetNode(2, model.State(30), 0, 0, nil)

	assert.ElementsMatch(t,
		[]model.State{10, 20},
		a.AllStates(1, nil),
	)
	assert.Equal(t, []model.State{30}, a.AllStates(2, nil))
}

func TestArena_HashCollisions(t *testing.T) {
	// With more states than buckets, the identity-ordered bucket trees must
	// keep every state findable.
	a := New(4, 2) // minBuckets buckets

	const n = 10 * minBuckets
	for i := 0; i < n; i++ {
		a.GetNode(1, model.State(i), float32(i), 0, nil)
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, float32(i), a.FetchNode(model.State(i)).CostFromStart)
	}
	assert.Greater(t, a.Stats().HashCollisions, uint64(0))
}
