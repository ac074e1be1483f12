package tower

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shamaton/msgpack/v2"
)

var (
	ErrInvalidDiskCount = errors.New("disk count must be at least one")
	ErrUnknownPeg       = errors.New("unknown peg")
)

// State is a snapshot of all three pegs. States are treated as values: every
// move produces a new State and never touches the one it started from.
type State struct {
	Pegs [3]Peg
}

func NewState(a, b, c Peg) *State {
	return &State{Pegs: [3]Peg{a, b, c}}
}

// Initial builds n disks on peg A, widest at the bottom. Widths are the odd
// numbers 2n-1 down to 1 so that every disk draws centered on its rod.
func Initial(n int) (*State, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDiskCount, n)
	}
	a := make(Peg, 0, n)
	for i := n - 1; i >= 0; i-- {
		a = append(a, Disk(i*2+1))
	}
	return NewState(a, Peg{}, Peg{}), nil
}

func (s *State) Peg(id PegID) Peg {
	return s.Pegs[id]
}

func (s *State) Clone() *State {
	out := &State{}
	for i, p := range s.Pegs {
		out.Pegs[i] = p.Clone()
	}
	return out
}

// Equal is structural equality: same disks in the same order on every peg.
func (s *State) Equal(o *State) bool {
	for i := range s.Pegs {
		if !s.Pegs[i].Equal(o.Pegs[i]) {
			return false
		}
	}
	return true
}

func (s *State) DiskCount() int {
	return len(s.Pegs[A]) + len(s.Pegs[B]) + len(s.Pegs[C])
}

// IsGoal reports whether all n disks sit on target and the other pegs are empty.
func (s *State) IsGoal(target PegID, n int) bool {
	for _, id := range AllPegs {
		if id == target {
			if len(s.Pegs[id]) != n {
				return false
			}
			continue
		}
		if len(s.Pegs[id]) != 0 {
			return false
		}
	}
	return true
}

// Disks returns every disk on the board, keyed by width with its multiplicity.
func (s *State) Disks() map[Disk]int {
	out := make(map[Disk]int)
	for _, p := range s.Pegs {
		for _, d := range p {
			out[d]++
		}
	}
	return out
}

// Serialize writes the state as msgpack. Nil and empty pegs encode the same so
// that equal states always produce equal bytes.
func (s *State) Serialize(w io.Writer) error {
	out := State{}
	for i, p := range s.Pegs {
		if p == nil {
			p = Peg{}
		}
		out.Pegs[i] = p
	}
	return msgpack.MarshalWrite(w, &out)
}

func (s *State) Deserialize(r io.Reader) error {
	return msgpack.UnmarshalRead(r, s)
}

// String renders the state compactly, e.g. "A[5 3] B[1] C[]".
func (s *State) String() string {
	var b strings.Builder
	for i, id := range AllPegs {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s%v", id, []Disk(s.Pegs[id]))
	}
	return b.String()
}
