package tower

import "fmt"

// Move names a single disk transfer.
type Move struct {
	From PegID
	To   PegID
}

func (m Move) String() string {
	return fmt.Sprintf("%s→%s", m.From, m.To)
}

// RejectReason explains why a move left the state unchanged.
type RejectReason int

const (
	NotRejected RejectReason = iota
	SamePeg
	EmptySource
	LargerDisk
)

func (r RejectReason) String() string {
	switch r {
	case NotRejected:
		return "accepted"
	case SamePeg:
		return "source and destination are the same peg"
	case EmptySource:
		return "source peg is empty"
	case LargerDisk:
		return "disk is wider than the destination's top disk"
	}
	return fmt.Sprintf("RejectReason(%d)", int(r))
}

// MoveResult is the outcome of TryMove. State is always a fresh value; when
// Moved is false it is structurally equal to the state the move started from.
type MoveResult struct {
	State  *State
	Moved  bool
	Reason RejectReason
}

// TryMove moves the top disk of from onto to if that is legal.
func (s *State) TryMove(from, to PegID) MoveResult {
	next := s.Clone()
	if from == to {
		return MoveResult{State: next, Reason: SamePeg}
	}
	src := next.Pegs[from]
	if len(src) == 0 {
		return MoveResult{State: next, Reason: EmptySource}
	}
	if TopScore(src) > TopScore(next.Pegs[to]) {
		return MoveResult{State: next, Reason: LargerDisk}
	}
	d := src[len(src)-1]
	next.Pegs[from] = src[:len(src)-1]
	next.Pegs[to] = append(next.Pegs[to], d)
	return MoveResult{State: next, Moved: true}
}

// ApplyMove returns the state after moving from -> to. An illegal move
// yields a state equal to s; callers that need to know why use TryMove.
func ApplyMove(s *State, from, to PegID) *State {
	return s.TryMove(from, to).State
}
