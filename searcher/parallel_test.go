package searcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestParallelSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("matching the sequential score on random trees", func(t *testing.T) {
		r := rand.New(rand.NewSource(99))
		for i := 0; i < 100; i++ {
			root := randomTree(r, 5, i%2 == 0)
			for depth := 1; depth <= 5; depth++ {
				sequential, err := Search(ctx, root, depth)
				require.NoError(t, err)
				parallel, err := Search(ctx, root, depth, WithGoroutines(4), WithMetrics())
				require.NoError(t, err)

				require.Equal(t, sequential.Score, parallel.Score, "tree %d at depth %d", i, depth)
				require.Equal(t, sequential.HasMove(), parallel.HasMove())
				require.Equal(t, 4, parallel.Metrics.Goroutines)
			}
		}
	})

	t.Run("choosing a move that reaches the score", func(t *testing.T) {
		result, err := Search(ctx, textbookTree(), 3, WithGoroutines(3))

		require.NoError(t, err)
		require.Equal(t, 7.0, result.Score)
		require.Equal(t, mockMove{id: 2}, result.Move, "Only the third child scores 7")
	})

	t.Run("choosing a minimizing move", func(t *testing.T) {
		root := minNode(maxNode(leaf(4), leaf(6)), maxNode(leaf(1), leaf(3)), maxNode(leaf(8)))

		result, err := Search(ctx, root, 2, WithGoroutines(2))

		require.NoError(t, err)
		require.Equal(t, 3.0, result.Score)
		require.Equal(t, mockMove{id: 1}, result.Move)
		require.Same(t, root.children[1], result.Next)
	})

	t.Run("evaluating a terminal root", func(t *testing.T) {
		result, err := Search(ctx, leaf(-6), 3, WithGoroutines(4))

		require.NoError(t, err)
		require.Equal(t, -6.0, result.Score)
		require.False(t, result.HasMove())
	})

	t.Run("returning the cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := Search(cancelled, textbookTree(), 3, WithGoroutines(2))

		require.ErrorIs(t, err, context.Canceled)
	})
}
