package experiments

import (
	"fmt"
	"os"
	"time"

	"kalah/engine"
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/searcher"
	"kalah/searcher/agent"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog/log"
)

// MatchUp pairs the agent playing player 1 with the agent playing player 2.
type MatchUp [2]metrics.AgentConfig

type Experiment struct {
	Name      string
	Games     int  // Per match up, the opening player alternates
	OutputDir string
	Quiet     bool // Hide the progress spinner
}

// Report is what an experiment produced.
type Report struct {
	Dir     string
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Results []Tally // One per match-up
}

type Tally struct {
	Wins1, Wins2, Draws int
}

// DepthMatchUps pairs a baseline searcher against searchers of each depth.
func DepthMatchUps(baseline int, depths []int) ([]metrics.AgentConfig, []MatchUp) {
	base := metrics.AgentConfig{ID: 0, Depth: baseline, Evaluation: "stores"}
	configs := []metrics.AgentConfig{base}
	matchUps := []MatchUp{}
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: i + 1, Depth: depth, Evaluation: "stores"}
		configs = append(configs, config)
		matchUps = append(matchUps, MatchUp{base, config})
	}
	return configs, matchUps
}

// MCTSMatchUps pairs a minimax searcher against MCTS searchers running each
// number of episodes.
func MCTSMatchUps(depth int, episodes []int) ([]metrics.AgentConfig, []MatchUp) {
	base := metrics.AgentConfig{ID: 0, Depth: depth, Evaluation: "stores"}
	configs := []metrics.AgentConfig{base}
	matchUps := []MatchUp{}
	for i, n := range episodes {
		config := metrics.AgentConfig{ID: i + 1, Evaluation: "stores", Episodes: n}
		configs = append(configs, config)
		matchUps = append(matchUps, MatchUp{base, config})
	}
	return configs, matchUps
}

// RandomMatchUps pairs a searcher of each depth against a random agent.
func RandomMatchUps(depths []int, seed uint64) ([]metrics.AgentConfig, []MatchUp) {
	random := metrics.AgentConfig{ID: 0, Random: true, Seed: seed}
	configs := []metrics.AgentConfig{random}
	matchUps := []MatchUp{}
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: i + 1, Depth: depth, Evaluation: "stores"}
		configs = append(configs, config)
		matchUps = append(matchUps, MatchUp{config, random})
	}
	return configs, matchUps
}

func (x Experiment) Run(configs []metrics.AgentConfig, matchUps []MatchUp) (Report, error) {
	if x.Games <= 0 {
		return Report{}, fmt.Errorf("experiment %s needs at least one game per match-up", x.Name)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	if !x.Quiet {
		s.Start()
		defer s.Stop()
	}

	count := 0
	report := Report{Results: make([]Tally, len(matchUps))}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < x.Games; i++ {
			s.Suffix = fmt.Sprintf(" match-up %d/%d, game %d/%d", mi+1, len(matchUps), i+1, x.Games)

			first := game.PlayerOne
			if i%2 == 1 {
				first = game.PlayerTwo
			}

			winner, gameMetric, moveMetrics := runGame(matchUp, first)
			count++
			report.Games = append(report.Games, metrics.GameRecord{
				ID:         count,
				MatchUp:    mi + 1,
				Agent1:     matchUp[0].ID,
				Agent2:     matchUp[1].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				report.Moves = append(report.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch winner {
			case game.PlayerOne:
				report.Results[mi].Wins1++
			case game.PlayerTwo:
				report.Results[mi].Wins2++
			default:
				report.Results[mi].Draws++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(matchUps), report.Results[mi])
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	writer, err := metrics.NewWriter(x.OutputDir, x.Name)
	if err != nil {
		return report, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	report.Dir = writer.Dir()

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return report, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(report.Games)
	if err != nil {
		return report, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(report.Moves)
	if err != nil {
		return report, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = writer.WriteChart(x.Name, report.Games)
	if err != nil {
		return report, fmt.Errorf("failed to write chart: %w", err)
	}
	log.Info().Msgf("stored results in %s", report.Dir)

	return report, nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(matchUp MatchUp, first game.Player) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{
		createAgent(matchUp[0]),
		createAgent(matchUp[1]),
	}
	e := engine.LocalEngine(agents, first)

	return e.Run()
}

func createAgent(config metrics.AgentConfig) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(config.Seed)
	}

	if config.Episodes > 0 {
		return agent.NewEvaluationAgent(createMCTS(config))
	}

	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if evaluate, ok := game.Evaluations[config.Evaluation]; ok {
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	options = append(options, searcher.WithMetrics())
	return agent.NewEvaluationAgent(searcher.NewMinimax(options...))
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.MCTSOption{searcher.WithEpisodes(config.Episodes)}

	if config.Depth > 0 {
		options = append(options, searcher.WithCutoff(config.Depth))
	}
	if evaluate, ok := game.Evaluations[config.Evaluation]; ok {
		options = append(options, searcher.WithRolloutEvaluation(evaluate))
	}

	options = append(options, searcher.WithRolloutMetrics())
	return searcher.NewMCTS(options...)
}
