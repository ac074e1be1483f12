package solver

import (
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/hanoi/tower"
)

// RecursiveSolver is the textbook decomposition: move n-1 disks out of the
// way, move the largest, move the n-1 back on top. Stack depth equals the
// disk count, which is capped at MaxRecursiveDisks.
type RecursiveSolver struct {
	Config
}

func (s *RecursiveSolver) Solve(disks int) (*tower.History, error) {
	h, err := s.start(disks, MaxRecursiveDisks)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("run", h.ID).Int("disks", disks).Msg("Solving recursively")
	hanoi(h, disks, Source, Target, Spare)
	return h, nil
}

func hanoi(h *tower.History, n int, source, target, spare tower.PegID) {
	if n == 0 {
		return
	}
	hanoi(h, n-1, source, spare, target)
	step(h, source, target)
	hanoi(h, n-1, spare, target, source)
}
