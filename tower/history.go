package tower

import (
	"github.com/google/uuid"
)

// History records every state visited during a solve, starting with the
// initial state. Moves[i] produced States[i+1].
type History struct {
	ID     string
	States []*State
	Moves  []Move
}

func NewHistory(initial *State) *History {
	return &History{
		ID:     uuid.NewString(),
		States: []*State{initial},
	}
}

// Append records s as the result of m. The history takes ownership of s.
func (h *History) Append(m Move, s *State) {
	h.Moves = append(h.Moves, m)
	h.States = append(h.States, s)
}

func (h *History) Initial() *State {
	return h.States[0]
}

// Last is the current state.
func (h *History) Last() *State {
	return h.States[len(h.States)-1]
}

func (h *History) Len() int {
	return len(h.States)
}

func (h *History) MoveCount() int {
	return len(h.Moves)
}

// Diff returns the index of the first state where h and o differ, or -1 if
// they are identical state for state.
func (h *History) Diff(o *History) int {
	n := min(len(h.States), len(o.States))
	for i := 0; i < n; i++ {
		if !h.States[i].Equal(o.States[i]) {
			return i
		}
	}
	if len(h.States) != len(o.States) {
		return n
	}
	return -1
}

func (h *History) Equal(o *History) bool {
	return h.Diff(o) == -1
}
