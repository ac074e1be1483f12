package solver

import (
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/hanoi/tower"
)

// MutualSolver solves the puzzle with two functions defined in terms of each
// other. moveTowerA and moveTowerB have the same body and must stay separate:
// the point of this solver is the mutual recursion. Its history is identical
// to RecursiveSolver's.
type MutualSolver struct {
	Config
}

func (s *MutualSolver) Solve(disks int) (*tower.History, error) {
	h, err := s.start(disks, MaxRecursiveDisks)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("run", h.ID).Int("disks", disks).Msg("Solving mutually recursively")
	moveTowerA(h, disks, Source, Target, Spare)
	return h, nil
}

func moveTowerA(h *tower.History, n int, from, to, via tower.PegID) {
	if n > 0 {
		moveTowerA(h, n-1, from, via, to)
		step(h, from, to)
		moveTowerB(h, n-1, via, to, from)
	}
}

func moveTowerB(h *tower.History, n int, from, to, via tower.PegID) {
	if n > 0 {
		moveTowerA(h, n-1, from, via, to)
		step(h, from, to)
		moveTowerB(h, n-1, via, to, from)
	}
}
