package check

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/timewinder-dev/hanoi/cas"
	"github.com/timewinder-dev/hanoi/solver"
)

const DefaultDisks = 3

type Config struct {
	Puzzle     PuzzleSpec              `toml:"puzzle"`
	Properties map[string]PropertySpec `toml:"properties,omitempty"`
}

type PuzzleSpec struct {
	Disks      int      `toml:"disks,omitempty"`
	MaxDisks   int      `toml:"max_disks,omitempty"`
	Strategies []string `toml:"strategies,omitempty"`
	CacheSize  int      `toml:"cache_size,omitempty"`
}

// PropertySpec holds one Starlark expression. Exactly one field must be set.
type PropertySpec struct {
	Always     string `toml:"always,omitempty"`
	Eventually string `toml:"eventually,omitempty"`
}

func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func parseConfig(r io.Reader) (*Config, error) {
	var out Config
	_, err := toml.NewDecoder(r).Decode(&out)
	if err != nil {
		return nil, err
	}
	out.applyDefaults()
	return &out, nil
}

func LoadConfigFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Puzzle.Disks == 0 {
		c.Puzzle.Disks = DefaultDisks
	}
	if len(c.Puzzle.Strategies) == 0 {
		for _, s := range solver.AutomaticStrategies {
			c.Puzzle.Strategies = append(c.Puzzle.Strategies, string(s))
		}
	}
}

// BuildChecker validates the configuration and compiles its properties.
func (c *Config) BuildChecker(store cas.CAS) (*Checker, error) {
	var strategies []solver.Strategy
	for _, name := range c.Puzzle.Strategies {
		s, err := solver.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if s == solver.Manual {
			return nil, fmt.Errorf("strategy %q needs a player and cannot be checked", name)
		}
		strategies = append(strategies, s)
	}

	ch := &Checker{
		Disks:      c.Puzzle.Disks,
		Strategies: strategies,
		Solver:     solver.Config{MaxDisks: c.Puzzle.MaxDisks},
		CAS:        store,
		Reporter:   &SilentReporter{},
	}
	for name, spec := range c.Properties {
		tc, err := spec.compile(name)
		if err != nil {
			return nil, err
		}
		ch.Constraints = append(ch.Constraints, tc)
	}
	sortConstraints(ch.Constraints)
	return ch, nil
}

func (p PropertySpec) compile(name string) (TemporalConstraint, error) {
	var (
		op   Operator
		expr string
	)
	switch {
	case p.Always != "" && p.Eventually != "":
		return TemporalConstraint{}, fmt.Errorf("property %s: set either always or eventually, not both", name)
	case p.Always != "":
		op, expr = Always, p.Always
	case p.Eventually != "":
		op, expr = Eventually, p.Eventually
	default:
		return TemporalConstraint{}, fmt.Errorf("property %s: no expression", name)
	}
	prop, err := NewStarlarkProperty(name, expr)
	if err != nil {
		return TemporalConstraint{}, err
	}
	return TemporalConstraint{Name: name, Operator: op, Property: prop}, nil
}
