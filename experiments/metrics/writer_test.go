package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"connectn/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Spec: "alphabeta:depth=2"},
			{ID: 2, Spec: "random:seed=3"},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "spec"},
			{"1", "alphabeta:depth=2"},
			{"2", "random:seed=3"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:     1,
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				StartingPlayer: game.PlayerOne,
				Outcome:        game.PlayerTwoWins,
				Winner:         "random",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     9,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "player1", "player2 wins", "random", "false",
			"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "9"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game:  1,
			Agent: 2,
			MoveMetric: MoveMetric{
				Step:   3,
				Player: game.PlayerTwo,
				Column: 4,
				SearchMetric: SearchMetric{
					Depth:      5,
					Goroutines: 1,
					Evaluator:  "zero",
					Pruning:    true,
					Duration:   time.Second,
					Nodes:      100,
					Leaves:     60,
					Cutoffs:    7,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "2", "3", "player2", "4", "5", "zero", "1", "true", "1s", "100", "60", "7", "100"}, rows[1])
	})
}
