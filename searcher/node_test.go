package searcher

import (
	"strconv"
	"sync/atomic"

	"gametree/game"

	"golang.org/x/exp/rand"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return strconv.Itoa(m.id)
}

// mockState is a node of an explicit game tree. Nodes are compared by identity, and share a
// hash unless one is set, so lookups must fall back to Equal.
type mockState struct {
	value      float64
	maximizing bool
	terminal   bool
	hash       game.StateHash
	children   []*mockState
	onEvaluate func()

	evaluations atomic.Int64
}

func (m *mockState) Maximizing() bool {
	return m.maximizing
}

func (m *mockState) IsTerminal() bool {
	return m.terminal
}

func (m *mockState) Successors() []game.Successor {
	successors := make([]game.Successor, len(m.children))
	for i, child := range m.children {
		successors[i] = game.Successor{Move: mockMove{id: i}, State: child}
	}
	return successors
}

func (m *mockState) Evaluate() float64 {
	m.evaluations.Add(1)
	if m.onEvaluate != nil {
		m.onEvaluate()
	}
	return m.value
}

func (m *mockState) Outcome() game.Outcome {
	if m.terminal && m.value >= game.DefaultWinScore {
		return game.MaximizerWins
	}
	return game.Ongoing
}

func (m *mockState) Hash() game.StateHash {
	return m.hash
}

func (m *mockState) Equal(other game.State) bool {
	o, ok := other.(*mockState)
	return ok && o == m
}

func leaf(value float64) *mockState {
	return &mockState{value: value, terminal: true}
}

func maxNode(children ...*mockState) *mockState {
	return &mockState{maximizing: true, children: children}
}

func minNode(children ...*mockState) *mockState {
	return &mockState{children: children}
}

// textbookTree is the usual three-ply example where pruning skips several leaves
func textbookTree() *mockState {
	return maxNode(
		minNode(maxNode(leaf(3), leaf(5)), maxNode(leaf(6), leaf(9))),
		minNode(maxNode(leaf(1), leaf(2)), maxNode(leaf(0), leaf(-1))),
		minNode(maxNode(leaf(7), leaf(4)), maxNode(leaf(8), leaf(2))),
	)
}

// randomTree builds a tree with small integer values, so ties between siblings are common.
// Inner nodes carry a value too and are scored when the depth limit cuts them off.
func randomTree(r *rand.Rand, depth int, maximizing bool) *mockState {
	if depth == 0 || r.Intn(8) == 0 {
		return leaf(float64(r.Intn(11) - 5))
	}

	node := &mockState{maximizing: maximizing, value: float64(r.Intn(11) - 5)}
	width := 1 + r.Intn(4)
	for i := 0; i < width; i++ {
		node.children = append(node.children, randomTree(r, depth-1, !maximizing))
	}
	return node
}

func walk(node *mockState, visit func(*mockState)) {
	visit(node)
	for _, child := range node.children {
		walk(child, visit)
	}
}

func totalEvaluations(root *mockState) int64 {
	total := int64(0)
	walk(root, func(node *mockState) {
		total += node.evaluations.Load()
	})
	return total
}
