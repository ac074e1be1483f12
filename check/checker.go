package check

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/hanoi/cas"
	"github.com/timewinder-dev/hanoi/solver"
	"github.com/timewinder-dev/hanoi/tower"
)

// ErrViolation is returned by CheckHistory when KeepGoing is off and a
// property fails.
var ErrViolation = errors.New("property violation")

// Checker runs solvers and verifies the histories they produce.
type Checker struct {
	Disks       int
	Strategies  []solver.Strategy
	Solver      solver.Config
	Constraints []TemporalConstraint
	CAS         cas.CAS
	Reporter    Reporter
	KeepGoing   bool
	ShowDetails bool

	stats      Statistics
	violations []Violation
}

// TraceStep is one move of a history together with the state it produced.
type TraceStep struct {
	Move      tower.Move
	StateHash cas.Hash
}

type Violation struct {
	PropertyName string
	PropertyType Operator
	Strategy     string
	Message      string
	StateNumber  int
	StateHash    cas.Hash
	Trace        []TraceStep
	State        *tower.State
	ShowDetails  bool
	CAS          cas.CAS
}

type Statistics struct {
	Histories      int
	TotalStates    int
	UniqueStates   int
	Revisits       int
	LongestHistory int
	ViolationCount int
}

type Result struct {
	Success    bool
	Violations []Violation
	Statistics Statistics
	Histories  map[solver.Strategy]*tower.History
}

// Run solves the puzzle with every configured strategy and checks each
// history. Histories are also compared state for state with the first one.
func (c *Checker) Run() (*Result, error) {
	c.reset()
	res := &Result{Histories: make(map[solver.Strategy]*tower.History)}

	var reference *tower.History
	var referenceName solver.Strategy
	for _, strategy := range c.Strategies {
		s, err := solver.New(strategy, c.Solver)
		if err != nil {
			return nil, err
		}
		c.Reporter.Printf("Solving %d disks with the %s strategy...\n", c.Disks, strategy)
		h, err := s.Solve(c.Disks)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strategy, err)
		}
		res.Histories[strategy] = h

		err = c.CheckHistory(string(strategy), h, true)
		if err == nil && reference != nil {
			err = c.compare(string(strategy), h, string(referenceName), reference)
		}
		if err != nil {
			if !errors.Is(err, ErrViolation) {
				return nil, err
			}
			break
		}
		if reference == nil {
			reference, referenceName = h, strategy
		}
	}

	res.Violations = c.violations
	c.stats.ViolationCount = len(c.violations)
	res.Statistics = c.stats
	res.Success = len(c.violations) == 0
	return res, nil
}

// Statistics returns the counters accumulated since the last Run.
func (c *Checker) Statistics() Statistics {
	s := c.stats
	s.ViolationCount = len(c.violations)
	return s
}

func (c *Checker) Violations() []Violation {
	return c.violations
}

func (c *Checker) reset() {
	c.stats = Statistics{}
	c.violations = nil
	if c.Reporter == nil {
		c.Reporter = &SilentReporter{}
	}
}

// CheckHistory verifies h. Every state must satisfy the Always constraints,
// some state must satisfy each Eventually constraint, and every step must be
// exactly one legal move. With minimal set the history must also be a shortest
// solution: 2^N-1 moves and no configuration visited twice.
//
// It returns ErrViolation on the first failure unless KeepGoing is set.
func (c *Checker) CheckHistory(name string, h *tower.History, minimal bool) error {
	if c.Reporter == nil {
		c.Reporter = &SilentReporter{}
	}
	if c.CAS == nil {
		c.CAS = cas.NewMemoryCAS()
	}
	disks := h.Initial().DiskCount()
	constraints := append(BuiltinConstraints(h.Initial(), solver.Target), c.Constraints...)
	always := FilterConstraintsByOperator(constraints, Always)
	eventually := FilterConstraintsByOperator(constraints, Eventually)
	satisfied := make([]bool, len(eventually))

	c.stats.Histories++
	c.stats.LongestHistory = max(c.stats.LongestHistory, h.MoveCount())
	seen := make(map[cas.Hash]int)
	trace := make([]TraceStep, 0, h.Len())
	hashes := make([]cas.Hash, 0, h.Len())

	for i, st := range h.States {
		hash, existed, err := c.putState(st)
		if err != nil {
			return err
		}
		hashes = append(hashes, hash)
		if i > 0 {
			trace = append(trace, TraceStep{Move: h.Moves[i-1], StateHash: hash})
		}
		c.stats.TotalStates++
		if !existed {
			c.stats.UniqueStates++
		}

		fail := func(prop string, op Operator, msg string) error {
			return c.violation(Violation{
				PropertyName: prop,
				PropertyType: op,
				Strategy:     name,
				Message:      msg,
				StateNumber:  i,
				StateHash:    hash,
				Trace:        append([]TraceStep(nil), trace...),
				State:        st,
			})
		}

		if first, ok := seen[hash]; ok {
			c.stats.Revisits++
			if minimal {
				if err := fail("NoRevisits", Always, fmt.Sprintf("state %d repeats state %d", i, first)); err != nil {
					return err
				}
			}
		} else {
			seen[hash] = i
		}

		if i > 0 {
			prev, m := h.States[i-1], h.Moves[i-1]
			step := prev.TryMove(m.From, m.To)
			switch {
			case !step.Moved:
				if err := fail("LegalMoves", Always, fmt.Sprintf("move %s is illegal: %s", m, step.Reason)); err != nil {
					return err
				}
			case !step.State.Equal(st):
				if err := fail("LegalMoves", Always, fmt.Sprintf("move %s does not lead to %s", m, st)); err != nil {
					return err
				}
			}
		}

		for _, tc := range always {
			pr, err := tc.Property.Check(st)
			if err != nil {
				return err
			}
			if !pr.Success {
				if err := fail(tc.Name, Always, pr.Message); err != nil {
					return err
				}
			}
		}
		for j, tc := range eventually {
			if satisfied[j] {
				continue
			}
			pr, err := tc.Property.Check(st)
			if err != nil {
				return err
			}
			satisfied[j] = pr.Success
		}
	}

	last := h.Len() - 1
	final := Violation{
		Strategy:    name,
		StateNumber: last,
		StateHash:   hashes[last],
		Trace:       trace,
		State:       h.Last(),
	}
	for j, tc := range eventually {
		if satisfied[j] {
			continue
		}
		v := final
		v.PropertyName, v.PropertyType = tc.Name, Eventually
		v.Message = fmt.Sprintf("Property %s never held", tc.Name)
		if err := c.violation(v); err != nil {
			return err
		}
	}
	if minimal && uint64(h.MoveCount()) != solver.MoveCount(disks) {
		v := final
		v.PropertyName, v.PropertyType = "MoveCount", Eventually
		v.Message = fmt.Sprintf("solved in %d moves, want %d", h.MoveCount(), solver.MoveCount(disks))
		if err := c.violation(v); err != nil {
			return err
		}
	}
	log.Debug().Str("strategy", name).Str("run", h.ID).Int("states", h.Len()).Msg("History checked")
	return nil
}

// compare reports the first state where h departs from ref.
func (c *Checker) compare(name string, h *tower.History, refName string, ref *tower.History) error {
	i := ref.Diff(h)
	if i < 0 {
		return nil
	}
	v := Violation{
		PropertyName: "Equivalence",
		PropertyType: Always,
		Strategy:     name,
		StateNumber:  i,
		Message:      fmt.Sprintf("history differs from %s at state %d", refName, i),
	}
	if i < h.Len() {
		v.State = h.States[i]
		hash, _, err := c.putState(v.State)
		if err != nil {
			return err
		}
		v.StateHash = hash
		for j := 1; j <= i; j++ {
			hash, _, err := c.putState(h.States[j])
			if err != nil {
				return err
			}
			v.Trace = append(v.Trace, TraceStep{Move: h.Moves[j-1], StateHash: hash})
		}
	}
	return c.violation(v)
}

// putState stores st and reports whether it was already in the CAS.
func (c *Checker) putState(st *tower.State) (cas.Hash, bool, error) {
	hash, err := cas.HashOf(st)
	if err != nil {
		return 0, false, err
	}
	existed := c.CAS.Has(hash)
	if _, err := c.CAS.Put(st); err != nil {
		return 0, false, fmt.Errorf("storing state: %w", err)
	}
	return hash, existed, nil
}

func (c *Checker) violation(v Violation) error {
	v.ShowDetails = c.ShowDetails
	v.CAS = c.CAS
	c.violations = append(c.violations, v)
	log.Debug().Str("strategy", v.Strategy).Str("property", v.PropertyName).Int("state", v.StateNumber).Msg("Property violated")
	if c.KeepGoing {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrViolation, v.Message)
}
