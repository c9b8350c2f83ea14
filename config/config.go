package config

import (
	"errors"
	"fmt"
	"time"

	"gametree/meta"
	"gametree/puzzle"

	"github.com/namsral/flag"
	"github.com/spf13/viper"
)

const EnvPrefix = "GAMETREE"

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const (
	ModeBestMove   = "bestmove"
	ModeSelfPlay   = "selfplay"
	ModePuzzle     = "puzzle"
	ModeExperiment = "experiment"

	OpponentMinimax = "minimax"
	OpponentRandom  = "random"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Mode       string
	FEN        string
	MaxDepth   int
	Goroutines int
	Timeout    time.Duration
	WinScore   float64
	MaxTurns   int
	Opponent   string
	Seed       uint64
	Line       string
	Goal       string
	MaxNodes   int
	OutDir     string
	LogLevel   string
	ConfigFile string
}

func DefaultConfig() Config {
	return Config{
		Mode:       ModeBestMove,
		FEN:        StartFEN,
		MaxDepth:   meta.MAX_DEPTH,
		Goroutines: meta.GO_ROUTINES,
		WinScore:   meta.WIN_SCORE,
		MaxTurns:   meta.MAX_TURNS,
		Opponent:   OpponentMinimax,
		Seed:       meta.SEED,
		Line:       puzzle.Start,
		Goal:       puzzle.Goal,
		MaxNodes:   meta.MAX_NODES,
		OutDir:     "experiments",
		LogLevel:   "info",
	}
}

// Load reads flags, falling back to GAMETREE_* environment variables. Keys of the file named by
// -config-file (YAML, JSON or TOML) fill in whatever neither set.
func (c *Config) Load(args []string) error {
	d := DefaultConfig()
	fs := flag.NewFlagSetWithEnvPrefix("gametree", EnvPrefix, flag.ContinueOnError)
	fs.StringVar(&c.Mode, "mode", d.Mode, "bestmove, selfplay, puzzle or experiment")
	fs.StringVar(&c.FEN, "fen", d.FEN, "chess position to search from")
	fs.IntVar(&c.MaxDepth, "max-depth", d.MaxDepth, "search depth in plies")
	fs.IntVar(&c.Goroutines, "goroutines", d.Goroutines, "goroutines searching root moves")
	fs.DurationVar(&c.Timeout, "timeout", d.Timeout, "time limit per search, 0 for none")
	fs.Float64Var(&c.WinScore, "win-score", d.WinScore, "score of a won game")
	fs.IntVar(&c.MaxTurns, "max-turns", d.MaxTurns, "move limit for self-play")
	fs.StringVar(&c.Opponent, "opponent", d.Opponent, "minimizing side in self-play: minimax or random")
	fs.Uint64Var(&c.Seed, "seed", d.Seed, "seed of the random opponent")
	fs.StringVar(&c.Line, "line", d.Line, "rabbit line to solve")
	fs.StringVar(&c.Goal, "goal", d.Goal, "rabbit line to reach")
	fs.IntVar(&c.MaxNodes, "max-nodes", d.MaxNodes, "state limit for the puzzle search, 0 for none")
	fs.StringVar(&c.OutDir, "out-dir", d.OutDir, "directory for experiment results")
	fs.StringVar(&c.LogLevel, "log-level", d.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.ConfigFile, "config-file", d.ConfigFile, "optional YAML, JSON or TOML file")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if c.ConfigFile == "" {
		return nil
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	v := viper.New()
	v.SetConfigFile(c.ConfigFile)
	err = v.ReadInConfig()
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var setErr error
	fs.VisitAll(func(f *flag.Flag) {
		if setErr != nil || explicit[f.Name] || !v.IsSet(f.Name) {
			return
		}
		if err := fs.Set(f.Name, v.GetString(f.Name)); err != nil {
			setErr = fmt.Errorf("config file key %s: %w", f.Name, err)
		}
	})
	return setErr
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeBestMove, ModeSelfPlay, ModePuzzle, ModeExperiment:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Goroutines <= 0 {
		return fmt.Errorf("%w: goroutines must be positive, got %d", ErrInvalidConfig, c.Goroutines)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %v", ErrInvalidConfig, c.Timeout)
	}
	if c.WinScore <= 0 {
		return fmt.Errorf("%w: win score must be positive, got %v", ErrInvalidConfig, c.WinScore)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max turns must be positive, got %d", ErrInvalidConfig, c.MaxTurns)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("%w: negative max nodes %d", ErrInvalidConfig, c.MaxNodes)
	}
	if c.Opponent != OpponentMinimax && c.Opponent != OpponentRandom {
		return fmt.Errorf("%w: unknown opponent %q", ErrInvalidConfig, c.Opponent)
	}
	return nil
}
