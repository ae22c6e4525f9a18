package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of the agent playing PlayerOne
	Agent2 int // AgentConfig.ID of the agent playing PlayerTwo
	GameMetric
}

type MoveRecord struct {
	Game  int // GameRecord.ID
	Agent int // AgentConfig.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every record file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory the writer stores its files in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "spec"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Spec,
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "outcome", "winner", "forfeit", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Outcome.String(),
			record.Winner,
			strconv.FormatBool(record.Forfeit),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "agent", "step", "player", "column", "depth", "evaluator", "goroutines", "pruning", "duration", "nodes", "leaves", "cutoffs", "nodes_per_second"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Column),
			strconv.Itoa(record.Depth),
			record.Evaluator,
			strconv.Itoa(record.Goroutines),
			strconv.FormatBool(record.Pruning),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			strconv.FormatFloat(record.NodesPerSecond(), 'f', 0, 64),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}
