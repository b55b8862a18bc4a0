package experiments

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"sort"
	"time"
)

// Throughput is how fast one agent config decided its moves over an experiment.
type Throughput struct {
	Agent          int
	Level          string
	Games          int
	Moves          int
	Captures       int
	MeanDecision   time.Duration
	MovesPerSecond float64
}

// MeasureThroughput aggregates the move records of an experiment per agent
// config, attributing each move to the config that played its side.
func MeasureThroughput(exp Experiment, games []metrics.GameRecord, moves []metrics.MoveRecord) []Throughput {
	type side struct{ red, blue int }
	sides := make(map[int]side, len(games))
	byAgent := make(map[int]*Throughput)
	totals := make(map[int]time.Duration)

	entry := func(id int) *Throughput {
		tp, ok := byAgent[id]
		if !ok {
			tp = &Throughput{Agent: id, Level: exp.agentConfig(id).Level}
			byAgent[id] = tp
		}
		return tp
	}

	for _, g := range games {
		sides[g.ID] = side{red: g.Agent1, blue: g.Agent2}
		entry(g.Agent1).Games++
		if g.Agent2 != g.Agent1 {
			entry(g.Agent2).Games++
		}
	}

	for _, m := range moves {
		s, ok := sides[m.Game]
		if !ok {
			continue
		}
		id := s.red
		if m.Player == game.Blue.String() {
			id = s.blue
		}
		tp := entry(id)
		tp.Moves++
		if m.Capture {
			tp.Captures++
		}
		totals[id] += m.Duration
	}

	out := make([]Throughput, 0, len(byAgent))
	for id, tp := range byAgent {
		if tp.Moves > 0 {
			tp.MeanDecision = totals[id] / time.Duration(tp.Moves)
		}
		if totals[id] > 0 {
			tp.MovesPerSecond = float64(tp.Moves) / totals[id].Seconds()
		}
		out = append(out, *tp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Agent < out[j].Agent })
	return out
}
