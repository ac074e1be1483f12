package check

import (
	"fmt"
	"sort"

	"github.com/timewinder-dev/hanoi/tower"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type PropertyResult struct {
	Success bool
	Message string
	Name    string
}

type Property interface {
	Check(state *tower.State) (PropertyResult, error)
}

// Operator says when a property must hold along a history.
type Operator string

const (
	// Always properties must hold in every state.
	Always Operator = "Always"
	// Eventually properties must hold in at least one state.
	Eventually Operator = "Eventually"
)

type TemporalConstraint struct {
	Name     string
	Operator Operator
	Property Property
}

func FilterConstraintsByOperator(cs []TemporalConstraint, op Operator) []TemporalConstraint {
	var out []TemporalConstraint
	for _, c := range cs {
		if c.Operator == op {
			out = append(out, c)
		}
	}
	return out
}

func sortConstraints(cs []TemporalConstraint) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Name < cs[j].Name })
}

func propertyResult(name string, ok bool, violated string) PropertyResult {
	if ok {
		return PropertyResult{
			Success: true,
			Name:    name,
			Message: fmt.Sprintf("Property %s satisfied", name),
		}
	}
	return PropertyResult{
		Success: false,
		Name:    name,
		Message: fmt.Sprintf("Property %s violated: %s", name, violated),
	}
}

// SortedPegs holds when no disk rests on a narrower one.
type SortedPegs struct{}

func (SortedPegs) Check(state *tower.State) (PropertyResult, error) {
	for _, id := range tower.AllPegs {
		if !state.Peg(id).Sorted() {
			return propertyResult("SortedPegs", false, fmt.Sprintf("peg %s is %v", id, []tower.Disk(state.Peg(id)))), nil
		}
	}
	return propertyResult("SortedPegs", true, ""), nil
}

// ConservedDisks holds when the board carries exactly the disks it started with.
type ConservedDisks struct {
	Want map[tower.Disk]int
}

func (c ConservedDisks) Check(state *tower.State) (PropertyResult, error) {
	got := state.Disks()
	ok := len(got) == len(c.Want)
	for d, n := range c.Want {
		if got[d] != n {
			ok = false
			break
		}
	}
	return propertyResult("ConservedDisks", ok, fmt.Sprintf("board holds %d disks, started with %d", state.DiskCount(), total(c.Want))), nil
}

func total(m map[tower.Disk]int) int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}

// SolvedOn holds once all disks sit on Target.
type SolvedOn struct {
	Target tower.PegID
	Disks  int
}

func (s SolvedOn) Check(state *tower.State) (PropertyResult, error) {
	return propertyResult("Solved", state.IsGoal(s.Target, s.Disks), fmt.Sprintf("disks not all on peg %s", s.Target)), nil
}

// BuiltinConstraints are checked on every history, in addition to any
// configured ones.
func BuiltinConstraints(initial *tower.State, target tower.PegID) []TemporalConstraint {
	return []TemporalConstraint{
		{Name: "SortedPegs", Operator: Always, Property: SortedPegs{}},
		{Name: "ConservedDisks", Operator: Always, Property: ConservedDisks{Want: initial.Disks()}},
		{Name: "Solved", Operator: Eventually, Property: SolvedOn{Target: target, Disks: initial.DiskCount()}},
	}
}

// StarlarkProperty evaluates a Starlark expression against a state. The pegs
// are bound to A, B and C as lists of widths, bottom first, and the total
// number of disks to disks. The expression must return a bool.
type StarlarkProperty struct {
	Name string
	Expr string

	expr syntax.Expr
}

var fileOptions = &syntax.FileOptions{}

func NewStarlarkProperty(name, src string) (*StarlarkProperty, error) {
	expr, err := fileOptions.ParseExpr(name, src, 0)
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", name, err)
	}
	return &StarlarkProperty{Name: name, Expr: src, expr: expr}, nil
}

func (sp *StarlarkProperty) Check(state *tower.State) (PropertyResult, error) {
	env := starlark.StringDict{"disks": starlark.MakeInt(state.DiskCount())}
	for _, id := range tower.AllPegs {
		env[id.String()] = pegList(state.Peg(id))
	}
	thread := &starlark.Thread{Name: sp.Name}
	val, err := starlark.EvalExprOptions(fileOptions, thread, sp.expr, env)
	if err != nil {
		return PropertyResult{}, fmt.Errorf("Property %s: %w", sp.Name, err)
	}
	if val == starlark.None {
		return PropertyResult{}, fmt.Errorf("Property %s: check is returning None", sp.Name)
	}
	b, ok := val.(starlark.Bool)
	if !ok {
		return PropertyResult{}, fmt.Errorf("Property %s: check returned %s, want bool", sp.Name, val.Type())
	}
	return propertyResult(sp.Name, bool(b), "returned false"), nil
}

func pegList(p tower.Peg) *starlark.List {
	elems := make([]starlark.Value, len(p))
	for i, d := range p {
		elems[i] = starlark.MakeUint64(uint64(d))
	}
	return starlark.NewList(elems)
}
