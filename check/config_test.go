package check

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/hanoi/cas"
	"github.com/timewinder-dev/hanoi/solver"
)

// TestConfigsInTestdata runs every TOML config in testdata as a subtest.
// Files named failing_* must report at least one violation.
func TestConfigsInTestdata(t *testing.T) {
	testdataDir := filepath.Join("..", "testdata")
	found := 0

	err := filepath.WalkDir(testdataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".toml") {
			return nil
		}
		found++
		name := strings.TrimSuffix(filepath.Base(path), ".toml")

		t.Run(name, func(t *testing.T) {
			cfg, err := LoadConfigFromFile(path)
			require.NoError(t, err, "Failed to load config file")

			memoryCAS := cas.NewMemoryCAS()
			ch, err := cfg.BuildChecker(cas.NewLRUCache(memoryCAS, 256))
			require.NoError(t, err, "Failed to build checker")
			ch.KeepGoing = true

			result, err := ch.Run()
			require.NoError(t, err, "Error during checking")
			require.NotNil(t, result)

			t.Logf("Stats: %d histories, %d states, %d unique, %d violations",
				result.Statistics.Histories,
				result.Statistics.TotalStates,
				result.Statistics.UniqueStates,
				result.Statistics.ViolationCount)

			if strings.HasPrefix(name, "failing") {
				assert.False(t, result.Success)
			} else {
				assert.True(t, result.Success, FormatAllViolations(result.Violations))
			}
		})
		return nil
	})

	require.NoError(t, err, "Error walking testdata directory")
	assert.NotZero(t, found)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultDisks, cfg.Puzzle.Disks)
	require.Len(t, cfg.Puzzle.Strategies, len(solver.AutomaticStrategies))
	assert.Equal(t, "iterative", cfg.Puzzle.Strategies[0])
	assert.Empty(t, cfg.Properties)
}

func TestParseConfig_Properties(t *testing.T) {
	src := `
[puzzle]
disks = 2
max_disks = 10
strategies = ["r", "mutual"]

[properties.b]
eventually = "len(C) == disks"

[properties.a]
always = "True"
`
	cfg, err := parseConfig(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Puzzle.Disks)
	assert.Equal(t, 10, cfg.Puzzle.MaxDisks)

	ch, err := cfg.BuildChecker(cas.NewMemoryCAS())
	require.NoError(t, err)
	assert.Equal(t, []solver.Strategy{solver.Recursive, solver.Mutual}, ch.Strategies)
	assert.Equal(t, 10, ch.Solver.MaxDisks)
	require.Len(t, ch.Constraints, 2)
	assert.Equal(t, "a", ch.Constraints[0].Name)
	assert.Equal(t, Always, ch.Constraints[0].Operator)
	assert.Equal(t, Eventually, ch.Constraints[1].Operator)
}

func TestBuildChecker_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown strategy", "[puzzle]\nstrategies = [\"bogo\"]\n"},
		{"manual strategy", "[puzzle]\nstrategies = [\"manual\"]\n"},
		{"empty property", "[properties.nothing]\n"},
		{"both operators", "[properties.x]\nalways = \"True\"\neventually = \"True\"\n"},
		{"bad syntax", "[properties.x]\nalways = \"len(\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseConfig(strings.NewReader(tt.src))
			require.NoError(t, err)
			_, err = cfg.BuildChecker(cas.NewMemoryCAS())
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFromFile_Missing(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
