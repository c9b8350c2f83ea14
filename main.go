package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gametree/chess"
	"gametree/config"
	"gametree/engine"
	"gametree/experiments"
	"gametree/puzzle"
	"gametree/searcher"
	"gametree/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

func main() {
	cfg := config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	log.Debug().Msgf("loaded config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Mode)
	}
}

func setupLogging(level string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	switch cfg.Mode {
	case config.ModeBestMove:
		return bestMove(ctx, cfg, out)
	case config.ModeSelfPlay:
		return selfPlay(ctx, cfg, out)
	case config.ModePuzzle:
		return solvePuzzle(ctx, cfg, out)
	case config.ModeExperiment:
		return experiment(ctx, cfg, out)
	}
	return fmt.Errorf("%w: unknown mode %q", config.ErrInvalidConfig, cfg.Mode)
}

func searchOptions(cfg config.Config) []searcher.Option {
	return []searcher.Option{
		searcher.WithGoroutines(cfg.Goroutines),
		searcher.WithTimeout(cfg.Timeout),
		searcher.WithMetrics(),
	}
}

func bestMove(ctx context.Context, cfg config.Config, out io.Writer) error {
	state, err := chess.FromFEN(cfg.FEN, chess.WithWinScore(cfg.WinScore))
	if err != nil {
		return err
	}

	result, err := searcher.Search(ctx, state, cfg.MaxDepth, searchOptions(cfg)...)
	if err != nil && !result.HasMove() {
		return err
	}
	if err != nil {
		log.Warn().Err(err).Msg("search interrupted, reporting best move so far")
	}

	log.Info().
		Float64("score", result.Score).
		Int64("nodes", result.Metrics.Nodes).
		Int64("cutoffs", result.Metrics.Cutoffs).
		Dur("duration", result.Metrics.Duration).
		Msg("search done")

	if !result.HasMove() {
		fmt.Fprintf(out, "bestmove (none) score %g outcome %s\n", result.Score, state.Outcome())
		return nil
	}
	fmt.Fprintf(out, "bestmove %s score %g\n", result.Move, result.Score)
	return nil
}

func selfPlay(ctx context.Context, cfg config.Config, out io.Writer) error {
	state, err := chess.FromFEN(cfg.FEN, chess.WithWinScore(cfg.WinScore))
	if err != nil {
		return err
	}

	maximizer, err := agent.NewMinimaxAgent(cfg.MaxDepth, searchOptions(cfg)...)
	if err != nil {
		return err
	}
	minimizer := agent.NewRandomAgent(cfg.Seed)
	if cfg.Opponent == config.OpponentMinimax {
		minimizer = maximizer
	}

	e := engine.NewLocalEngine(state, maximizer, minimizer, cfg.MaxTurns)
	outcome, moves, err := e.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s after %d moves: %s\n", outcome, len(moves), strings.Join(lo.Map(moves, func(m engine.MoveRecord, _ int) string {
		return m.Move
	}), " "))
	fmt.Fprintf(out, "final %s\n", e.State())
	return nil
}

func solvePuzzle(ctx context.Context, cfg config.Config, out io.Writer) error {
	state, err := puzzle.New(cfg.Line, cfg.Goal, puzzle.WithWinScore(cfg.WinScore))
	if err != nil {
		return err
	}

	path, err := searcher.BreadthFirst(ctx, state, nil, cfg.MaxNodes)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "solved %s -> %s in %d moves\n", cfg.Line, cfg.Goal, len(path))
	for i, move := range path {
		fmt.Fprintf(out, "%d. %s\n", i+1, move)
	}
	return nil
}

func experiment(ctx context.Context, cfg config.Config, out io.Writer) error {
	state, err := chess.FromFEN(cfg.FEN, chess.WithWinScore(cfg.WinScore))
	if err != nil {
		return err
	}

	records, dir, err := experiments.RunPruningExperiment(ctx, state, cfg.MaxDepth, cfg.OutDir)
	if err != nil {
		return err
	}
	for _, record := range records {
		fmt.Fprintf(out, "depth %d: minimax %d nodes, alpha-beta %d nodes (%.1f%%), agree %t\n",
			record.Depth, record.Minimax.Nodes, record.AlphaBeta.Nodes, 100*record.NodeRatio(), record.Agree())
	}
	fmt.Fprintf(out, "pruning results in %s\n", dir)

	if cfg.Goroutines > 1 {
		_, dir, err = experiments.RunThroughputExperiment(ctx, state, cfg.MaxDepth, []int{1, cfg.Goroutines}, cfg.OutDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "throughput results in %s\n", dir)
	}
	return nil
}
