package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/hanoi/tower"
)

// Every solver moves the tower from Source to Target, using Spare.
const (
	Source = tower.A
	Spare  = tower.B
	Target = tower.C
)

// Disk ceilings. A full history holds 2^N states, so these bound memory as
// well as the recursion depth of the recursive and mutual solvers.
const (
	MaxRecursiveDisks = 20
	MaxWorklistDisks  = 24
)

var (
	ErrTooManyDisks    = errors.New("too many disks")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrNoMoveSource    = errors.New("manual solver needs a move source")
	ErrScriptExhausted = errors.New("scripted moves exhausted")
)

// A Solver produces the full history from the initial state with the given
// number of disks to the goal state on Target.
type Solver interface {
	Solve(disks int) (*tower.History, error)
}

type Strategy string

const (
	Manual    Strategy = "manual"
	Iterative Strategy = "iterative"
	Recursive Strategy = "recursive"
	Mutual    Strategy = "mutual"
	Worklist  Strategy = "worklist"
)

// AutomaticStrategies are the strategies that need no input.
var AutomaticStrategies = []Strategy{Iterative, Recursive, Mutual, Worklist}

// ParseStrategy accepts a strategy name or one of the short menu keys
// (1/b manual, 2/i iterative, 3/r recursive, 4/m mutual, 5/w worklist).
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual", "1", "b":
		return Manual, nil
	case "iterative", "2", "i":
		return Iterative, nil
	case "recursive", "3", "r":
		return Recursive, nil
	case "mutual", "mutually-recursive", "4", "m":
		return Mutual, nil
	case "worklist", "5", "w":
		return Worklist, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Config carries the per-run settings shared by all solvers.
type Config struct {
	// MaxDisks lowers the strategy's ceiling when positive.
	MaxDisks int
	// Source feeds moves to the manual solver.
	Source MoveSource
}

func New(strategy Strategy, cfg Config) (Solver, error) {
	switch strategy {
	case Manual:
		if cfg.Source == nil {
			return nil, ErrNoMoveSource
		}
		return &ManualSolver{Config: cfg}, nil
	case Iterative:
		return &IterativeSolver{Config: cfg}, nil
	case Recursive:
		return &RecursiveSolver{Config: cfg}, nil
	case Mutual:
		return &MutualSolver{Config: cfg}, nil
	case Worklist:
		return &WorklistSolver{Config: cfg}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

func (c Config) checkDisks(disks, ceiling int) error {
	limit := ceiling
	if c.MaxDisks > 0 && c.MaxDisks < limit {
		limit = c.MaxDisks
	}
	if limit > 0 && disks > limit {
		return fmt.Errorf("%w: %d exceeds the limit of %d", ErrTooManyDisks, disks, limit)
	}
	return nil
}

// start validates the disk count and builds a history holding the initial state.
func (c Config) start(disks, ceiling int) (*tower.History, error) {
	if err := c.checkDisks(disks, ceiling); err != nil {
		return nil, err
	}
	initial, err := tower.Initial(disks)
	if err != nil {
		return nil, err
	}
	return tower.NewHistory(initial), nil
}

// step applies from -> to to the last state and always records the result.
// The automatic solvers never produce an illegal move; if one does, the
// unchanged state is still recorded and the rejection logged.
func step(h *tower.History, from, to tower.PegID) {
	res := h.Last().TryMove(from, to)
	if !res.Moved {
		log.Warn().
			Str("run", h.ID).
			Int("index", h.Len()).
			Stringer("from", from).
			Stringer("to", to).
			Str("reason", res.Reason.String()).
			Msg("Solver produced an illegal move")
	}
	h.Append(tower.Move{From: from, To: to}, res.State)
}

// MoveCount is the number of moves in a complete solution: 2^disks - 1.
func MoveCount(disks int) uint64 {
	if disks <= 0 {
		return 0
	}
	return uint64(1)<<uint(disks) - 1
}
