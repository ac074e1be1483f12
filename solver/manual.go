package solver

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/hanoi/cas"
	"github.com/timewinder-dev/hanoi/tower"
)

// MoveSource supplies moves for a manual session. Implementations present
// current to the player and return the peg pair they chose; they are
// responsible for re-prompting until both pegs are valid.
type MoveSource interface {
	NextMove(current *tower.State) (tower.Move, error)
}

// ManualSolver lets a player solve the puzzle one move at a time. Illegal
// moves are ignored and the player is asked again from the same state.
type ManualSolver struct {
	Config

	// Store, when set, records every accepted state so that returning to an
	// earlier configuration can be counted.
	Store cas.CAS

	Rejected int
	Revisits int
}

func (s *ManualSolver) Solve(disks int) (*tower.History, error) {
	if s.Source == nil {
		return nil, ErrNoMoveSource
	}
	h, err := s.start(disks, 0)
	if err != nil {
		return nil, err
	}
	s.Rejected, s.Revisits = 0, 0
	if err := s.record(h.Initial(), 0); err != nil {
		return h, err
	}

	for !h.Last().IsGoal(Target, disks) {
		m, err := s.Source.NextMove(h.Last())
		if err != nil {
			return h, fmt.Errorf("reading move: %w", err)
		}
		res := h.Last().TryMove(m.From, m.To)
		if !res.Moved {
			s.Rejected++
			log.Debug().
				Str("run", h.ID).
				Stringer("move", m).
				Str("reason", res.Reason.String()).
				Msg("Ignoring illegal move")
			continue
		}
		h.Append(m, res.State)
		if err := s.record(res.State, h.Len()-1); err != nil {
			return h, err
		}
	}
	log.Debug().Str("run", h.ID).Int("states", h.Len()).Int("rejected", s.Rejected).Msg("Manual session solved")
	return h, nil
}

func (s *ManualSolver) record(st *tower.State, depth int) error {
	if s.Store == nil {
		return nil
	}
	hash, err := s.Store.Put(st)
	if err != nil {
		return fmt.Errorf("storing state: %w", err)
	}
	if len(s.Store.Depths(hash)) > 0 {
		s.Revisits++
	}
	s.Store.RecordDepth(hash, depth)
	return nil
}

// ScriptedSource replays a fixed list of moves. It returns ErrScriptExhausted
// once every move has been handed out.
type ScriptedSource struct {
	Moves []tower.Move
	next  int
}

func (s *ScriptedSource) NextMove(*tower.State) (tower.Move, error) {
	if s.next >= len(s.Moves) {
		return tower.Move{}, ErrScriptExhausted
	}
	m := s.Moves[s.next]
	s.next++
	return m, nil
}
