package metrics

import (
	"checkers/game"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("g1")
	c.AddMove(MoveMetric{Step: 1, Player: "red"})
	c.AddMove(MoveMetric{Step: 2, Player: "blue"})

	moves := c.Moves()
	require.Len(t, moves, 2)
	moves[0].Step = 99
	require.Equal(t, 1, c.Moves()[0].Step, "Moves returns a copy")

	final := game.NewGameState()
	final.Phase = game.GameOverPhase
	final.Winner = game.Blue
	final.Cause = game.CausePieces
	final.Scores = [2]int{3, 12}
	final.History = make([]game.Move, 41)

	m := c.Complete(final, false)
	require.Equal(t, "g1", m.GameID)
	require.Equal(t, "red", m.StartingPlayer)
	require.Equal(t, "blue", m.Winner)
	require.Equal(t, "pieces", m.Cause)
	require.Equal(t, 41, m.TotalMoves)
	require.Equal(t, 3, m.RedCaptures)
	require.Equal(t, 12, m.BlueCaptures)
	require.False(t, m.EndTime.Before(m.StartTime))

	c.Start("g2")
	require.Empty(t, c.Moves(), "Start clears the previous game")
	require.Equal(t, "none", c.Complete(nil, true).Winner)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start("g")
	c.AddMove(MoveMetric{Step: 1})
	require.Nil(t, c.Moves())
	require.Equal(t, GameMetric{}, c.Complete(game.NewGameState(), false))
}

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
	w, err := NewWriter(t.TempDir(), "tiers")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Level: "easy"}, {ID: 2, Level: "hard", Seed: 9}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, Experiment: "tiers", Agent1: 1, Agent2: 2,
		GameMetric: GameMetric{GameID: "g1", Winner: "blue", Cause: "immobilized", TotalMoves: 30, Duration: time.Second},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Player: "red", Variant: "normal", From: game.Sq(2, 1), To: game.Sq(3, 2), Candidates: 7},
	}}))

	agents := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{{"id", "level", "seed"}, {"1", "easy", "0"}, {"2", "hard", "9"}}, agents)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "g1", games[1][1])
	require.Equal(t, "blue", games[1][5])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, []string{"1", "1", "red", "normal", "(2,1)", "(3,2)", "false", "false", "7", "0s"}, moves[1])
}
