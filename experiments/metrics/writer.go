package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type GameRecord struct {
	ID      int
	Player1 string // Strategy on side 0
	Player2 string // Strategy on side 1
	Seed    uint64
	GameMetric
}

type MoveRecord struct {
	Game int
	MoveMetric
}

type MatchupRecord struct {
	Player1  string
	Player2  string
	Games    int
	P1Wins   int
	P1Losses int
	Ties     int
	WinRate  float64
}

type Setup struct {
	Strategies []string      `json:"strategies"`
	NumGames   int           `json:"numGames"` // per matchup
	Workers    int           `json:"workers"`
	Seed       uint64        `json:"seed"`
	Moves      bool          `json:"moves"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	Duration   time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp>-<run id> for one experiment run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp+"-"+uuid.NewString())

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	setupPath := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(setupPath)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WriteMatchupRecords(records []MatchupRecord) error {
	header := []string{"player1", "player2", "games", "p1_wins", "p1_losses", "ties", "winrate"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Player1,
			record.Player2,
			strconv.Itoa(record.Games),
			strconv.Itoa(record.P1Wins),
			strconv.Itoa(record.P1Losses),
			strconv.Itoa(record.Ties),
			strconv.FormatFloat(record.WinRate, 'f', 4, 64),
		})
	}
	return w.writeCSV("matchups.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "player1", "player2", "seed", "starting_side", "score1", "score2", "winner", "moves", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Player1,
			record.Player2,
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.StartingSide),
			strconv.Itoa(record.Scores[0]),
			strconv.Itoa(record.Scores[1]),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		})
	}
	return w.writeCSV("games.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "side", "column", "die", "removed", "advantage", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Side),
			strconv.Itoa(record.Column),
			strconv.Itoa(record.Die),
			strconv.Itoa(record.Removed),
			strconv.FormatFloat(record.Advantage, 'f', 4, 64),
			record.Duration.String(),
		})
	}
	return w.writeCSV("moves.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
