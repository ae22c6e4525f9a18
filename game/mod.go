package game

import "fmt"

// Player identifies the owner of a cell. The zero value is an empty cell.
type Player int8

const (
	Empty Player = iota
	PlayerOne
	PlayerTwo
)

// Opponent returns the other player. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		panic(fmt.Sprintf("player %d has no opponent", p))
	}
}

func (p Player) String() string {
	switch p {
	case Empty:
		return "empty"
	case PlayerOne:
		return "player1"
	case PlayerTwo:
		return "player2"
	default:
		return fmt.Sprintf("player(%d)", p)
	}
}

// Outcome is the terminal status of a board, derived from its grid
type Outcome int8

const (
	Ongoing Outcome = iota
	PlayerOneWins
	PlayerTwoWins
	Draw
)

// Win returns the outcome where p has connected winLength tokens.
func Win(p Player) Outcome {
	switch p {
	case PlayerOne:
		return PlayerOneWins
	case PlayerTwo:
		return PlayerTwoWins
	default:
		panic(fmt.Sprintf("player %d cannot win", p))
	}
}

// Winner returns the winning player, or Empty for draws and ongoing games.
func (o Outcome) Winner() Player {
	switch o {
	case PlayerOneWins:
		return PlayerOne
	case PlayerTwoWins:
		return PlayerTwo
	default:
		return Empty
	}
}

// IsTerminal reports whether the game is over.
func (o Outcome) IsTerminal() bool {
	return o != Ongoing
}

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case PlayerOneWins:
		return "player1 wins"
	case PlayerTwoWins:
		return "player2 wins"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", o)
	}
}

// Evaluator scores a non-terminal board from the perspective of player.
// Implementations must be antisymmetric: Score(b, p) == -Score(b, p.Opponent()).
type Evaluator interface {
	Score(b *Board, player Player) int
}

// EvaluatorFunc adapts a plain function to the Evaluator interface
type EvaluatorFunc func(b *Board, player Player) int

func (f EvaluatorFunc) Score(b *Board, player Player) int {
	return f(b, player)
}
