package tower

import (
	"fmt"
	"math"
	"strings"
)

// Disk is represented by its width.
type Disk uint64

// EmptyScore is the score of a peg with no disks. It is wider than any real
// disk so that moving onto an empty peg always compares as legal.
const EmptyScore Disk = math.MaxUint64

// PegID addresses one of the three pegs.
type PegID int

const (
	A PegID = iota
	B
	C
)

// AllPegs lists every peg in display order.
var AllPegs = [3]PegID{A, B, C}

func (p PegID) String() string {
	switch p {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	}
	return fmt.Sprintf("PegID(%d)", int(p))
}

// Name is the positional name used at the console.
func (p PegID) Name() string {
	switch p {
	case A:
		return "left"
	case B:
		return "middle"
	case C:
		return "right"
	}
	return p.String()
}

func (p PegID) Valid() bool {
	return p >= A && p <= C
}

// Other returns the peg that is neither p nor q. p and q must differ.
func Other(p, q PegID) PegID {
	return 3 - p - q
}

// ParsePegID accepts "left", "middle", "right", their first letters, or the
// letters A, B and C. Matching is case-insensitive.
func ParsePegID(s string) (PegID, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LEFT", "L", "A":
		return A, nil
	case "MIDDLE", "M", "B":
		return B, nil
	case "RIGHT", "R", "C":
		return C, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPeg, s)
}

// Peg is a stack of disks; the last element is the top.
type Peg []Disk

// Top returns the top disk, if any.
func (p Peg) Top() (Disk, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[len(p)-1], true
}

func (p Peg) Clone() Peg {
	if p == nil {
		return nil
	}
	out := make(Peg, len(p))
	copy(out, p)
	return out
}

func (p Peg) Equal(o Peg) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Sorted reports whether every disk is narrower than the one below it.
func (p Peg) Sorted() bool {
	for i := 1; i < len(p); i++ {
		if p[i] >= p[i-1] {
			return false
		}
	}
	return true
}

// TopScore is the width of the top disk, or EmptyScore.
func TopScore(p Peg) Disk {
	if d, ok := p.Top(); ok {
		return d
	}
	return EmptyScore
}
