package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmind/pathgo/model"
)

func newTestNode(state model.State, cost float32) *Node {
	n := &Node{}
	n.Clear()
	n.Init(1, state, cost, 0, nil)
	return n
}

func TestOpenList_PushPop(t *testing.T) {
	l := NewOpenList()
	assert.True(t, l.Empty())

	l.Push(newTestNode(1, 5))
	l.Push(newTestNode(2, 1))
	l.Push(newTestNode(3, 3))
	assert.False(t, l.Empty())

	// Pops come out sorted ascending by total cost.
	assert.Equal(t, model.State(2), l.Pop().State)
	assert.Equal(t, model.State(3), l.Pop().State)
	assert.Equal(t, model.State(1), l.Pop().State)
	assert.True(t, l.Empty())
}

func TestOpenList_EqualCostsStable(t *testing.T) {
	l := NewOpenList()
	l.Push(newTestNode(1, 2))
	l.Push(newTestNode(2, 2))
	l.Push(newTestNode(3, 2))

	// Equal-cost nodes keep insertion order.
	assert.Equal(t, model.State(1), l.Pop().State)
	assert.Equal(t, model.State(2), l.Pop().State)
	assert.Equal(t, model.State(3), l.Pop().State)
}

func TestOpenList_MembershipFlags(t *testing.T) {
	l := NewOpenList()
	n := newTestNode(1, 5)

	l.Push(n)
	assert.True(t, n.InOpen)

	got := l.Pop()
	require.Same(t, n, got)
	assert.False(t, n.InOpen)
}

func TestOpenList_Update(t *testing.T) {
	t.Run("decrease moves toward head", func(t *testing.T) {
		l := NewOpenList()
		a := newTestNode(1, 1)
		b := newTestNode(2, 5)
		c := newTestNode(3, 9)
		l.Push(a)
		l.Push(b)
		l.Push(c)

		c.CostFromStart = 0.5
		c.CalcTotalCost()
		l.Update(c)

		assert.Equal(t, model.State(3), l.Pop().State)
		assert.Equal(t, model.State(1), l.Pop().State)
		assert.Equal(t, model.State(2), l.Pop().State)
	})

	t.Run("decrease within position is kept sorted", func(t *testing.T) {
		l := NewOpenList()
		a := newTestNode(1, 1)
		b := newTestNode(2, 5)
		c := newTestNode(3, 9)
		l.Push(a)
		l.Push(b)
		l.Push(c)

		// b drops below a but a rescan from the head must still order it
		// after a.
		b.CostFromStart = 3
		b.CalcTotalCost()
		l.Update(b)

		assert.Equal(t, model.State(1), l.Pop().State)
		assert.Equal(t, model.State(2), l.Pop().State)
		assert.Equal(t, model.State(3), l.Pop().State)
	})
}

func TestOpenList_Clear(t *testing.T) {
	l := NewOpenList()
	l.Push(newTestNode(1, 1))
	l.Clear()
	assert.True(t, l.Empty())
}

func TestOpenList_ContractViolations(t *testing.T) {
	l := NewOpenList()

	assert.Panics(t, func() { l.Pop() }, "pop of empty list")

	n := newTestNode(1, 1)
	l.Push(n)
	assert.Panics(t, func() { l.Push(n) }, "double push")

	inf := newTestNode(2, model.InfiniteCost)
	assert.Panics(t, func() { l.Push(inf) }, "infinite cost push")

	closed := newTestNode(3, 1)
	closed.MarkClosed()
	assert.Panics(t, func() { l.Push(closed) }, "push of closed node")

	loose := newTestNode(4, 1)
	assert.Panics(t, func() { l.Update(loose) }, "update of non-open node")
}

func TestNode_ClosedSet(t *testing.T) {
	n := newTestNode(1, 1)

	n.MarkClosed()
	assert.True(t, n.InClosed)

	n.UnmarkClosed()
	assert.False(t, n.InClosed)

	assert.Panics(t, func() { n.UnmarkClosed() })

	n.InOpen = true
	assert.Panics(t, func() { n.MarkClosed() })
}

func TestNode_SentinelChainTraversal(t *testing.T) {
	var sentinel Node
	sentinel.InitSentinel()

	// Empty chain: the walk terminates immediately.
	assert.Equal(t, &sentinel, sentinel.Next())

	a := newTestNode(1, 1)
	b := newTestNode(2, 2)
	c := newTestNode(3, 3)
	sentinel.AddBefore(a)
	sentinel.AddBefore(b)
	sentinel.AddBefore(c)

	var visited []model.State
	for n := sentinel.Next(); n != &sentinel; n = n.Next() {
		visited = append(visited, n.State)
	}
	assert.Equal(t, []model.State{1, 2, 3}, visited)
}

func TestNode_CalcTotalCost(t *testing.T) {
	n := &Node{CostFromStart: 2, EstToGoal: 3}
	n.CalcTotalCost()
	assert.Equal(t, float32(5), n.TotalCost)

	n.EstToGoal = model.InfiniteCost
	n.CalcTotalCost()
	assert.Equal(t, model.InfiniteCost, n.TotalCost)

	n.CostFromStart = model.InfiniteCost
	n.EstToGoal = 0
	n.CalcTotalCost()
	assert.Equal(t, model.InfiniteCost, n.TotalCost)
}
