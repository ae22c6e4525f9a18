package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidGrid       = errors.New("invalid grid")
)

// Board is a width x height connect-N grid under gravity.
//
// Row 0 is the bottom row and row height-1 is the top row, so a column accepts
// tokens while its top cell is empty and tokens stack upwards from row 0.
type Board struct {
	width     int
	height    int
	winLength int
	cells     []Player // Row-major, cells[row*width+col]
	heights   []int    // Number of tokens per column
	player    Player   // Player to move
	moves     int      // Number of tokens on the board
}

// NewBoard returns an empty board with PlayerOne to move.
func NewBoard(width, height, winLength int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "width=%d height=%d", width, height)
	}
	if winLength <= 0 || (winLength > width && winLength > height) {
		return nil, errors.Wrapf(ErrInvalidDimensions, "win length %d does not fit a %dx%d board", winLength, width, height)
	}
	return &Board{
		width:     width,
		height:    height,
		winLength: winLength,
		cells:     make([]Player, width*height),
		heights:   make([]int, width),
		player:    PlayerOne,
	}, nil
}

// FromGrid builds a board from its external representation: grid[row][column]
// holding 0 for empty and 1 or 2 for the players, with row 0 at the bottom.
func FromGrid(grid [][]int, winLength int, player Player) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidGrid, "grid is empty")
	}
	if player != PlayerOne && player != PlayerTwo {
		return nil, errors.Wrapf(ErrInvalidGrid, "%s cannot be the player to move", player)
	}
	b, err := NewBoard(len(grid[0]), len(grid), winLength)
	if err != nil {
		return nil, err
	}
	for row, cells := range grid {
		if len(cells) != b.width {
			return nil, errors.Wrapf(ErrInvalidGrid, "row %d has %d columns, expected %d", row, len(cells), b.width)
		}
		for col, v := range cells {
			if v < int(Empty) || v > int(PlayerTwo) {
				return nil, errors.Wrapf(ErrInvalidGrid, "cell (%d,%d) holds %d", row, col, v)
			}
			if v == int(Empty) {
				continue
			}
			// Tokens must rest on the bottom row or on another token
			if b.heights[col] != row {
				return nil, errors.Wrapf(ErrInvalidGrid, "token at (%d,%d) is floating", row, col)
			}
			b.cells[b.index(row, col)] = Player(v)
			b.heights[col]++
			b.moves++
		}
	}
	b.player = player
	return b, nil
}

func (b *Board) index(row, col int) int {
	return row*b.width + col
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) WinLength() int { return b.winLength }

// Player returns the player to move.
func (b *Board) Player() Player { return b.player }

// Moves returns the number of tokens on the board.
func (b *Board) Moves() int { return b.moves }

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// At returns the owner of the cell at (row, col).
func (b *Board) At(row, col int) Player {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("cell (%d,%d) is outside a %dx%d board", row, col, b.width, b.height))
	}
	return b.cells[b.index(row, col)]
}

// ColumnHeight returns the number of tokens in col.
func (b *Board) ColumnHeight(col int) int {
	return b.heights[col]
}

// IsFree reports whether col exists and still accepts a token.
func (b *Board) IsFree(col int) bool {
	return col >= 0 && col < b.width && b.heights[col] < b.height
}

// FreeColumns returns the columns that still accept a token, in ascending order.
// An empty result means the board is full.
func (b *Board) FreeColumns() []int {
	free := make([]int, 0, b.width)
	for col := 0; col < b.width; col++ {
		if b.cells[b.index(b.height-1, col)] == Empty {
			free = append(free, col)
		}
	}
	return free
}

// Full reports whether no column accepts a token.
func (b *Board) Full() bool {
	return b.moves == b.width*b.height
}

// Copy returns an independent deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	heights := make([]int, len(b.heights))
	copy(heights, b.heights)
	return &Board{
		width:     b.width,
		height:    b.height,
		winLength: b.winLength,
		cells:     cells,
		heights:   heights,
		player:    b.player,
		moves:     b.moves,
	}
}

// Play returns a new board with the current player's token dropped into col.
// The receiver is left untouched. Play panics if col is not free.
func (b *Board) Play(col int) *Board {
	next := b.Copy()
	next.Drop(col)
	return next
}

// Drop places the current player's token in the lowest empty row of col and
// passes the turn. It returns the row the token landed in and panics if col is
// out of range or full.
func (b *Board) Drop(col int) int {
	if !b.IsFree(col) {
		panic(fmt.Sprintf("illegal move: column %d is full or outside a board of width %d", col, b.width))
	}
	row := b.heights[col]
	b.cells[b.index(row, col)] = b.player
	b.heights[col]++
	b.moves++
	b.player = b.player.Opponent()
	return row
}

// Undo reverts the last Drop into col, restoring the cell and the player to
// move. It panics if the top token of col was not placed by the previous player.
func (b *Board) Undo(col int) {
	if col < 0 || col >= b.width || b.heights[col] == 0 {
		panic(fmt.Sprintf("illegal undo: column %d holds no token", col))
	}
	row := b.heights[col] - 1
	mover := b.player.Opponent()
	if b.cells[b.index(row, col)] != mover {
		panic(fmt.Sprintf("illegal undo: top of column %d does not belong to %s", col, mover))
	}
	b.cells[b.index(row, col)] = Empty
	b.heights[col]--
	b.moves--
	b.player = mover
}

// Line directions as (dRow, dCol): horizontal, vertical and both diagonals
var axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Outcome scans the whole grid for a run of winLength identical tokens.
func (b *Board) Outcome() Outcome {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			t := b.cells[b.index(row, col)]
			if t == Empty {
				continue
			}
			for _, axis := range axes {
				if b.runFrom(row, col, axis[0], axis[1], t) {
					return Win(t)
				}
			}
		}
	}
	if b.Full() {
		return Draw
	}
	return Ongoing
}

// runFrom reports whether winLength tokens of t start at (row, col) along (dRow, dCol).
func (b *Board) runFrom(row, col, dRow, dCol int, t Player) bool {
	endRow := row + dRow*(b.winLength-1)
	endCol := col + dCol*(b.winLength-1)
	if !b.InBounds(endRow, endCol) {
		return false
	}
	for i := 1; i < b.winLength; i++ {
		if b.cells[b.index(row+dRow*i, col+dCol*i)] != t {
			return false
		}
	}
	return true
}

// Grid returns the external representation, grid[row][column] with row 0 at the bottom.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.height)
	for row := range grid {
		grid[row] = make([]int, b.width)
		for col := range grid[row] {
			grid[row][col] = int(b.cells[b.index(row, col)])
		}
	}
	return grid
}

var symbols = map[Player]byte{Empty: '.', PlayerOne: 'X', PlayerTwo: 'O'}

// String renders the board top row first, followed by the column indices.
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.height - 1; row >= 0; row-- {
		for col := 0; col < b.width; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(symbols[b.cells[b.index(row, col)]])
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < b.width; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprint(col % 10))
	}
	sb.WriteByte('\n')
	return sb.String()
}
