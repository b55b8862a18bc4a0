package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

// Engine plays one complete game.
type Engine interface {
	// Run plays from the menu until there's a winner or the turn limit is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
