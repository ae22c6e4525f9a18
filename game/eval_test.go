package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineEvaluator(t *testing.T) {
	t.Run("empty board scores zero", func(t *testing.T) {
		b, err := NewBoard(7, 6, 4)
		require.NoError(t, err)
		require.Equal(t, 0, LineEvaluator{}.Score(b, PlayerOne))
	})

	t.Run("single corner token counts open lines only", func(t *testing.T) {
		// Bottom-left token on a 4x4 board with win length 3: N, NE and E each
		// see two empty cells (1+1), the other five directions leave the board.
		b := mustGrid(t, [][]int{
			{1, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, 3, PlayerTwo)

		require.Equal(t, 6, LineEvaluator{}.Score(b, PlayerOne))
		require.Equal(t, -6, LineEvaluator{}.Score(b, PlayerTwo))
	})

	t.Run("own tokens count double and opposing tokens block", func(t *testing.T) {
		// Player one: (0,0) scores N=2 NE=2 and E is blocked; (0,1) scores N=2 only.
		// Player two: (0,2) scores N=2 NW=2 and W is blocked.
		b := mustGrid(t, [][]int{
			{1, 1, 2},
			{0, 0, 0},
			{0, 0, 0},
		}, 3, PlayerTwo)

		require.Equal(t, lineValue(b, PlayerOne)-lineValue(b, PlayerTwo), LineEvaluator{}.Score(b, PlayerOne))
		require.Equal(t, 6, lineValue(b, PlayerOne))
		require.Equal(t, 4, lineValue(b, PlayerTwo))
		require.Equal(t, 2, LineEvaluator{}.Score(b, PlayerOne))
	})

	t.Run("antisymmetric between players", func(t *testing.T) {
		grids := [][][]int{
			{
				{1, 2, 1, 2, 1, 2, 1},
				{2, 1, 0, 1, 2, 0, 0},
				{0, 1, 0, 2, 0, 0, 0},
				{0, 0, 0, 1, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
			},
			{
				{2, 2, 1, 0},
				{1, 1, 2, 0},
				{0, 2, 0, 0},
			},
		}
		for _, grid := range grids {
			b := mustGrid(t, grid, 4, PlayerOne)
			require.Equal(t, LineEvaluator{}.Score(b, PlayerOne), -LineEvaluator{}.Score(b, PlayerTwo))
		}
	})

	t.Run("bounded by MaxLineScore", func(t *testing.T) {
		b := mustGrid(t, [][]int{
			{1, 1, 1},
			{1, 1, 1},
		}, 3, PlayerTwo)

		score := LineEvaluator{}.Score(b, PlayerOne)
		require.LessOrEqual(t, score, MaxLineScore(b))
		require.Equal(t, 3*2*8*2*2, MaxLineScore(b))
	})
}

func TestCountLine(t *testing.T) {
	b := mustGrid(t, [][]int{
		{1, 0, 1, 2},
		{0, 0, 0, 0},
	}, 3, PlayerTwo)

	require.Equal(t, 3, countLine(b, 0, 0, 0, 1, PlayerOne), "Empty then own token")
	require.Equal(t, 0, countLine(b, 0, 2, 0, 1, PlayerOne), "Opponent token blocks the line")
	require.Equal(t, 0, countLine(b, 0, 0, 1, 0, PlayerOne), "Leaving the board zeroes the line")
	require.Equal(t, 0, countLine(b, 0, 0, 0, -1, PlayerOne), "Negative coordinates zero the line")
}

func TestZeroEvaluator(t *testing.T) {
	b := mustGrid(t, [][]int{{1, 2, 1}, {0, 0, 0}}, 3, PlayerTwo)
	require.Equal(t, 0, ZeroEvaluator{}.Score(b, PlayerOne))
	require.Equal(t, 0, ZeroEvaluator{}.Score(b, PlayerTwo))
}

func TestEvaluatorByName(t *testing.T) {
	e, err := EvaluatorByName("line")
	require.NoError(t, err)
	require.Equal(t, "line", EvaluatorName(e))

	e, err = EvaluatorByName("zero")
	require.NoError(t, err)
	require.Equal(t, "zero", EvaluatorName(e))

	_, err = EvaluatorByName("neural")
	require.Error(t, err)

	require.Equal(t, []string{"line", "zero"}, EvaluatorNames())
	require.Equal(t, "custom", EvaluatorName(EvaluatorFunc(func(*Board, Player) int { return 1 })))
}
