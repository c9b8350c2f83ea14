package chess

import (
	"context"
	"errors"
	"testing"

	"gametree/game"
	"gametree/searcher"

	"github.com/stretchr/testify/require"
)

const (
	backRankMate      = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	blackBackRankMate = "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1"
	stalemate         = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	bareKings         = "8/8/8/4k3/8/8/8/4K3 w - - 0 1"
	fiftyMoves        = "8/8/8/4k3/8/8/8/R3K3 w - - 100 80"
	extraQueen        = "4k3/8/8/8/8/8/8/3QK3 w - - 0 1"
)

func mustFEN(t *testing.T, fen string) *State {
	t.Helper()
	s, err := FromFEN(fen)
	require.NoError(t, err)
	return s
}

func moveStrings(s *State) []string {
	moves := []string{}
	for _, successor := range s.Successors() {
		moves = append(moves, successor.Move.String())
	}
	return moves
}

func TestFromFEN(t *testing.T) {
	t.Run("rejecting malformed input", func(t *testing.T) {
		_, err := FromFEN("not a position")
		require.True(t, errors.Is(err, ErrInvalidFEN))
	})

	t.Run("rejecting a position without a black king", func(t *testing.T) {
		_, err := FromFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
		require.ErrorIs(t, err, ErrInvalidFEN)
	})

	t.Run("rejecting a position where the side not to move is in check", func(t *testing.T) {
		_, err := FromFEN("4k3/8/8/8/8/8/8/4RK2 w - - 0 1")
		require.ErrorIs(t, err, ErrInvalidFEN)
	})

	t.Run("accepting the checked side to move and keeping both kings afterwards", func(t *testing.T) {
		s := mustFEN(t, "4k3/8/8/8/8/8/8/4RK2 b - - 0 1")
		require.ElementsMatch(t, []string{"e8d8", "e8f8", "e8d7", "e8f7"}, moveStrings(s))
		for _, successor := range s.Successors() {
			mustFEN(t, successor.State.(*State).FEN())
		}
	})

	t.Run("rejecting pawns on the back ranks", func(t *testing.T) {
		for _, fen := range []string{
			"P3k3/8/8/8/8/8/8/4K3 w - - 0 1",
			"4k3/8/8/8/8/8/8/p3K3 w - - 0 1",
		} {
			_, err := FromFEN(fen)
			require.ErrorIs(t, err, ErrInvalidFEN, fen)
		}
	})

	t.Run("round-tripping the position", func(t *testing.T) {
		s := mustFEN(t, backRankMate)
		require.Equal(t, backRankMate, s.FEN())
		require.True(t, s.Maximizing())
	})
}

func TestStartingPosition(t *testing.T) {
	s := New()

	require.True(t, s.Maximizing(), "White moves first")
	require.False(t, s.IsTerminal())
	require.Len(t, s.Successors(), 20)
	require.Equal(t, 0.0, s.Evaluate(), "Symmetric position should be balanced")
}

func TestApply(t *testing.T) {
	s := New()

	next, err := s.Apply("e2e4")
	require.NoError(t, err)
	require.False(t, next.Maximizing())
	require.NotEqual(t, s.Hash(), next.Hash())
	require.Equal(t, New().FEN(), s.FEN(), "Applying a move must not change the original state")

	_, err = s.Apply("e2e5")
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestOutcome(t *testing.T) {
	t.Run("scoring a checkmated black king as a win", func(t *testing.T) {
		mated, err := mustFEN(t, backRankMate).Apply("a1a8")
		require.NoError(t, err)
		require.True(t, mated.IsTerminal())
		require.Equal(t, game.MaximizerWins, mated.Outcome())
		require.Equal(t, game.DefaultWinScore, mated.Evaluate())
		require.Empty(t, mated.Successors())
	})

	t.Run("scoring a checkmated white king as a loss", func(t *testing.T) {
		mated, err := mustFEN(t, blackBackRankMate).Apply("a8a1")
		require.NoError(t, err)
		require.Equal(t, game.MinimizerWins, mated.Outcome())
		require.Equal(t, -game.DefaultWinScore, mated.Evaluate())
	})

	t.Run("drawing stalemate, bare kings and the fifty-move rule", func(t *testing.T) {
		for _, fen := range []string{stalemate, bareKings, fiftyMoves} {
			s := mustFEN(t, fen)
			require.True(t, s.IsTerminal(), fen)
			require.Equal(t, game.Draw, s.Outcome(), fen)
			require.Equal(t, game.DrawScore, s.Evaluate(), fen)
		}
	})

	t.Run("drawing bishops that all stand on one colour", func(t *testing.T) {
		s := mustFEN(t, "5b2/8/8/4k3/8/8/8/2B1K3 w - - 0 1")
		require.Equal(t, game.Draw, s.Outcome())
	})

	t.Run("playing on with bishops of both colours", func(t *testing.T) {
		s := mustFEN(t, "2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1")
		require.Equal(t, game.Ongoing, s.Outcome())
	})

	t.Run("using the configured win score", func(t *testing.T) {
		s, err := FromFEN(backRankMate, WithWinScore(50))
		require.NoError(t, err)
		mated, err := s.Apply("a1a8")
		require.NoError(t, err)
		require.Equal(t, 50.0, mated.Evaluate())
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("favoring the side with more material", func(t *testing.T) {
		require.Greater(t, mustFEN(t, extraQueen).Evaluate(), 8.0)
	})

	t.Run("ignoring whose turn it is for a symmetric position", func(t *testing.T) {
		white := mustFEN(t, "r3k3/8/8/8/8/8/8/R3K3 w - - 0 1")
		black := mustFEN(t, "r3k3/8/8/8/8/8/8/R3K3 b - - 0 1")
		require.Equal(t, white.Evaluate(), black.Evaluate())
	})

	t.Run("adding the centre bonus", func(t *testing.T) {
		// One pawn move and three king moves against three king moves either way
		require.InDelta(t, 1.25, mustFEN(t, "7k/8/8/8/4P3/8/8/K7 w - - 0 1").Evaluate(), 1e-9)
		require.InDelta(t, 1.05, mustFEN(t, "7k/8/8/8/8/4P3/8/K7 w - - 0 1").Evaluate(), 1e-9)
	})

	t.Run("counting the moves of the side not to move", func(t *testing.T) {
		require.InDelta(t, 1.25, mustFEN(t, "7k/8/8/8/4P3/8/8/K7 b - - 0 1").Evaluate(), 1e-9)
	})

	t.Run("weighing mobility and attackers on the king", func(t *testing.T) {
		// Rook 11 moves and king 4 against 4 king moves, with the rook checking
		require.InDelta(t, 6.05, mustFEN(t, "4k3/8/8/8/8/8/8/4RK2 b - - 0 1").Evaluate(), 1e-9)
		require.InDelta(t, -6.05, mustFEN(t, "4rk2/8/8/8/8/8/8/4K3 w - - 0 1").Evaluate(), 1e-9)
	})

	t.Run("staying below a forced win", func(t *testing.T) {
		s, err := FromFEN(extraQueen, WithWinScore(5))
		require.NoError(t, err)
		require.Less(t, s.Evaluate(), 5.0)
	})
}

func TestEqual(t *testing.T) {
	a := New()
	b, err := FromFEN(a.FEN())
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())

	next, err := a.Apply("g1f3")
	require.NoError(t, err)
	require.False(t, a.Equal(next))
}

func TestSearch(t *testing.T) {
	t.Run("finding a mate in one for White", func(t *testing.T) {
		result, err := searcher.Search(context.Background(), mustFEN(t, backRankMate), 2)
		require.NoError(t, err)
		require.Equal(t, game.DefaultWinScore, result.Score)
		require.Equal(t, "a1a8", result.Move.String())
	})

	t.Run("finding a mate in one for Black", func(t *testing.T) {
		result, err := searcher.Search(context.Background(), mustFEN(t, blackBackRankMate), 1)
		require.NoError(t, err)
		require.Equal(t, -game.DefaultWinScore, result.Score)
		require.Equal(t, "a8a1", result.Move.String())
	})

	t.Run("returning no move for a finished game", func(t *testing.T) {
		result, err := searcher.Search(context.Background(), mustFEN(t, stalemate), 3)
		require.NoError(t, err)
		require.False(t, result.HasMove())
		require.Equal(t, game.DrawScore, result.Score)
	})

	t.Run("agreeing with plain minimax", func(t *testing.T) {
		s := New()
		pruned, err := searcher.Search(context.Background(), s, 2)
		require.NoError(t, err)
		plain, err := searcher.Search(context.Background(), s, 2, searcher.WithoutPruning())
		require.NoError(t, err)
		require.Equal(t, plain.Score, pruned.Score)
		require.Equal(t, plain.Move.String(), pruned.Move.String())
	})
}
