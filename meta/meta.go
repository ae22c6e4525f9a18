// meta/meta.go
package meta

// WIDTH defines the default number of board columns.
const WIDTH = 7

// HEIGHT defines the default number of board rows.
const HEIGHT = 6

// WIN_LENGTH defines the default run length needed to win.
const WIN_LENGTH = 4

// DEPTH defines the default maximum search depth, counted from the root at 1.
const DEPTH = 6

// GO_ROUTINES defines the default number of root-parallel search workers.
const GO_ROUTINES = 1

// EVALUATOR defines the default heuristic evaluator.
const EVALUATOR = "line"

// NUM_GAMES defines the number of games per experiment match up.
const NUM_GAMES = 10

// RESULTS_DIR defines where experiment records are written.
const RESULTS_DIR = "results"
