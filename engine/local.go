package engine

import (
	"time"

	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/meta"
	"kalah/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State    *game.GameState
	Agents   [2]agent.Agent // Indexed by player - 1
	MaxTurns int
}

// LocalEngine sets up a fresh game between two in-process agents.
func LocalEngine(agents []agent.Agent, first game.Player) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if !first.Valid() {
		panic("invalid starting player")
	}

	return &Engine{
		State:    game.NewGameState(first),
		Agents:   [2]agent.Agent{agents[0], agents[1]},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop until the game ends or MaxTurns moves were played.
func (e *Engine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Actor,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.State.Actor)

	turnCount := 1
	for !e.State.Ended && turnCount <= e.MaxTurns {
		player := e.State.Actor
		move, searchMetric := e.Agents[player-1].FindMove(e.State)

		if err := e.State.Check(move); err != nil {
			// Happens when the searcher returns its fallback move
			fallback := e.State.LegalMoves()
			if len(fallback) == 0 {
				panic("no legal moves in a running game")
			}
			log.Warn().Err(err).Msgf("%s chose %d, playing %d instead", player, move.Encode(), fallback[0].Encode())
			move = fallback[0]
		}

		e.State.Act(move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %s played %d -> %s", turnCount, player, move.Encode(), e.State.Board)

		turnCount++
	}

	if !e.State.Ended {
		log.Warn().Msgf("stopped after %d turns without a result", e.MaxTurns)
	}

	gameMetric.Winner = e.State.Winner()
	gameMetric.ScoreDiff = e.State.Score(game.PlayerOne)
	gameMetric.Ended = e.State.Ended
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves: %s, winner %s", gameMetric.TotalMoves, e.State.Board, gameMetric.Winner)

	return gameMetric.Winner, gameMetric, moveMetrics
}
