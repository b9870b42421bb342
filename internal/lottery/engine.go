package lottery

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Mode selects the draw policy for a lottery run.
type Mode string

const (
	ModeWeighted Mode = "weighted"
	ModeEqual    Mode = "equal"
)

// ParseMode maps user input to a Mode. Empty input means weighted.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeWeighted, "":
		return ModeWeighted, nil
	case ModeEqual:
		return ModeEqual, nil
	default:
		return "", fmt.Errorf("unknown lottery mode %q", s)
	}
}

// RandSource supplies uniform values in [0, 1).
type RandSource func() float64

// Team is one lottery-eligible entry.
type Team struct {
	ID            string
	Name          string
	Wins          int
	Losses        int
	PointsAgainst float64
}

func (t Team) Record() string {
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

// WinPct is wins over decisions. A team with no decisions sits at 0%.
func (t Team) WinPct() float64 {
	games := t.Wins + t.Losses
	if games == 0 {
		return 0
	}
	return float64(t.Wins) / float64(games)
}

// Pick assigns a team to a 1-based draft slot. Weight is the odds-table
// weight the team held when the draw started, zero in equal mode.
type Pick struct {
	Number int
	Team   Team
	Weight float64
}

var ErrNoTeams = errors.New("no eligible teams")

// Engine runs lottery draws with an injectable random source.
type Engine struct {
	src RandSource
}

// NewEngine returns an engine backed by src. A nil src falls back to
// math/rand's locked top-level source, so a single engine can serve draws
// from multiple goroutines.
func NewEngine(src RandSource) *Engine {
	if src == nil {
		src = rand.Float64
	}
	return &Engine{src: src}
}

// Run assigns every team a draft slot. Teams must already be seeded worst to
// best. An empty field yields an empty result and no error.
func (e *Engine) Run(teams []Team, mode Mode) ([]Pick, error) {
	if len(teams) == 0 {
		return []Pick{}, nil
	}
	switch mode {
	case ModeWeighted:
		return Draw(teams, BuildOddsTable(len(teams)), e.src)
	case ModeEqual:
		return e.drawEqual(teams), nil
	default:
		return nil, fmt.Errorf("unknown lottery mode %q", mode)
	}
}

func (e *Engine) drawEqual(teams []Team) []Pick {
	remaining := make([]Team, len(teams))
	copy(remaining, teams)

	picks := make([]Pick, 0, len(teams))
	for number := 1; len(remaining) > 0; number++ {
		idx := int(e.src() * float64(len(remaining)))
		if idx >= len(remaining) {
			idx = len(remaining) - 1
		}
		picks = append(picks, Pick{Number: number, Team: remaining[idx]})
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return picks
}

// Draw runs a weighted draw without replacement: each round draws r uniformly
// from [0, total) and picks the first remaining team whose cumulative weight
// reaches r, then excises its slot so survivors keep their original order and
// weights. A round whose weights sum to zero falls back to the first
// remaining team.
func Draw(teams []Team, weights []float64, src RandSource) ([]Pick, error) {
	if len(weights) != len(teams) {
		return nil, fmt.Errorf("%d teams but %d weights", len(teams), len(weights))
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("invalid weight %v at slot %d", w, i)
		}
	}
	if src == nil {
		return nil, errors.New("nil random source")
	}

	remaining := make([]Team, len(teams))
	copy(remaining, teams)
	pool := make([]float64, len(weights))
	copy(pool, weights)

	picks := make([]Pick, 0, len(teams))
	for number := 1; len(remaining) > 0; number++ {
		idx := pickIndex(pool, src)
		picks = append(picks, Pick{Number: number, Team: remaining[idx], Weight: pool[idx]})
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return picks, nil
}

// pickIndex clamps the final cumulative value to the exact total so float
// drift can never leave the last slot unreachable.
func pickIndex(pool []float64, src RandSource) int {
	total := TotalWeight(pool)
	if total <= 0 {
		return 0
	}
	r := src() * total
	var cum float64
	for i, w := range pool {
		cum += w
		if i == len(pool)-1 {
			cum = total
		}
		if cum >= r {
			return i
		}
	}
	return len(pool) - 1
}
