package solver

import (
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/hanoi/tower"
)

// WorklistSolver performs the recursive decomposition with an explicit stack
// so the Go stack does not grow with the disk count.
type WorklistSolver struct {
	Config
}

// frame is one pending unit of work: either move a tower of n disks, or, when
// emit is set, record the single move from -> to.
type frame struct {
	n    int
	from tower.PegID
	to   tower.PegID
	via  tower.PegID
	emit bool
}

func (s *WorklistSolver) Solve(disks int) (*tower.History, error) {
	h, err := s.start(disks, MaxWorklistDisks)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("run", h.ID).Int("disks", disks).Msg("Solving with worklist")

	stack := []frame{{n: disks, from: Source, to: Target, via: Spare}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.emit {
			step(h, f.from, f.to)
			continue
		}
		if f.n == 0 {
			continue
		}
		// Pushed in reverse: the left subtower is handled first.
		stack = append(stack,
			frame{n: f.n - 1, from: f.via, to: f.to, via: f.from},
			frame{from: f.from, to: f.to, emit: true},
			frame{n: f.n - 1, from: f.from, to: f.via, via: f.to},
		)
	}
	return h, nil
}
