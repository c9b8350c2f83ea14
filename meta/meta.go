// meta/meta.go
package meta

// MAX_DEPTH defines the default search depth in plies.
const MAX_DEPTH = 3

// GO_ROUTINES defines the number of goroutines searching root moves.
const GO_ROUTINES = 1

// MAX_TURNS caps the number of moves in a self-play game.
const MAX_TURNS = 300

// WIN_SCORE defines the score of a won game.
const WIN_SCORE = 1000.0

// MAX_NODES bounds the states a breadth-first search may generate.
const MAX_NODES = 1_000_000

// SEED defines the seed of the random agent.
const SEED = 1
