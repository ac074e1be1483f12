package solver

import (
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/hanoi/tower"
)

// IterativeSolver solves the puzzle without recursion. On move i the only
// candidate pegs are fixed by i mod 3 and the parity of the disk count; the
// direction between the two is whichever is legal.
type IterativeSolver struct {
	Config
}

func (s *IterativeSolver) Solve(disks int) (*tower.History, error) {
	h, err := s.start(disks, MaxRecursiveDisks)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("run", h.ID).Int("disks", disks).Msg("Solving iteratively")

	pairs := iterativePairs(disks)
	moves := MoveCount(disks)
	for i := uint64(1); i <= moves; i++ {
		m := orient(h.Last(), pairs[i%3])
		step(h, m.From, m.To)
	}
	return h, nil
}

// iterativePairs is indexed by move number mod 3. With an even number of
// disks the roles of Target and Spare swap.
func iterativePairs(disks int) [3]tower.Move {
	if disks%2 == 0 {
		return [3]tower.Move{
			1: {From: Source, To: Spare},
			2: {From: Source, To: Target},
			0: {From: Target, To: Spare},
		}
	}
	return [3]tower.Move{
		1: {From: Source, To: Target},
		2: {From: Source, To: Spare},
		0: {From: Spare, To: Target},
	}
}

// orient picks the legal direction between the two pegs of pair.
func orient(s *tower.State, pair tower.Move) tower.Move {
	p, q := pair.From, pair.To
	flipped := tower.Move{From: q, To: p}
	switch {
	case len(s.Peg(p)) == 0:
		return flipped
	case len(s.Peg(q)) == 0:
		return pair
	case tower.TopScore(s.Peg(p)) > tower.TopScore(s.Peg(q)):
		return flipped
	}
	return pair
}
