package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
)

// AgentConfig describes one side of a match-up.
type AgentConfig struct {
	ID         int
	Depth      int
	Evaluation string // Key of game.Evaluations
	Random     bool   // Plays uniformly random legal moves instead of searching
	Seed       uint64
	Episodes   int // Searches with MCTS instead of minimax, Depth is the rollout cutoff
}

type GameRecord struct {
	ID      int
	MatchUp int
	Agent1  int // AgentConfig.ID playing as player 1
	Agent2  int // AgentConfig.ID playing as player 2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a fresh run directory <root>/<name>/<run id>.
func NewWriter(root, name string) (*Writer, error) {
	baseDir := filepath.Join(root, name, uuid.NewString())
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "depth", "evaluation", "random", "seed", "episodes"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
			config.Evaluation,
			strconv.FormatBool(config.Random),
			strconv.FormatUint(config.Seed, 10),
			strconv.Itoa(config.Episodes),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "match_up", "agent1", "agent2", "starting_player", "winner", "score_diff", "ended", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.MatchUp),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(int(record.StartingPlayer)),
			strconv.Itoa(int(record.Winner)),
			strconv.Itoa(record.ScoreDiff),
			strconv.FormatBool(record.Ended),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("games.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "depth", "duration", "nodes", "leaves", "pruned", "best_score"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(int(record.Player)),
			record.Move.String(),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Pruned),
			strconv.Itoa(record.BestScore),
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

// WriteChart renders player 1's final score differential per game, one
// series per match-up, into score_diff.html.
func (w *Writer) WriteChart(title string, records []GameRecord) error {
	series := map[int][]opts.BarData{}
	order := []int{}
	longest := 0
	for _, record := range records {
		if _, ok := series[record.MatchUp]; !ok {
			order = append(order, record.MatchUp)
		}
		series[record.MatchUp] = append(series[record.MatchUp], opts.BarData{Value: record.ScoreDiff})
		longest = max(longest, len(series[record.MatchUp]))
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "player 1 store minus player 2 store",
		}),
	)

	games := make([]string, longest)
	for i := range games {
		games[i] = fmt.Sprintf("game %d", i+1)
	}
	bar.SetXAxis(games)
	for _, matchUp := range order {
		bar.AddSeries(fmt.Sprintf("match-up %d", matchUp), series[matchUp])
	}

	page := components.NewPage()
	page.AddCharts(bar)

	path := filepath.Join(w.baseDir, "score_diff.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	err = page.Render(f)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
