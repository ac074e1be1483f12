package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/hanoi/tower"
)

func TestString_Initial(t *testing.T) {
	s, err := tower.Initial(2)
	require.NoError(t, err)

	want := "" +
		"  -   |   |  \n" +
		" ---  |   |  \n" +
		"_____________\n\n"
	assert.Equal(t, want, String(s))
}

func TestString_Spread(t *testing.T) {
	s := tower.NewState(tower.Peg{5}, tower.Peg{3}, tower.Peg{1})

	// One row per disk on the board, so the upper rows show bare rods.
	want := "" +
		"   |     |     |   \n" +
		"   |     |     |   \n" +
		" -----  ---    -   \n" +
		"___________________\n\n"
	assert.Equal(t, want, String(s))
}

func TestString_AlignsToWidestDisk(t *testing.T) {
	s := tower.NewState(nil, tower.Peg{3, 1}, nil)
	lines := strings.Split(strings.TrimRight(String(s), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines[:2] {
		assert.Len(t, l, 13, "%q", l)
	}
}

func TestRenderer_History(t *testing.T) {
	s, err := tower.Initial(1)
	require.NoError(t, err)
	h := tower.NewHistory(s)
	h.Append(tower.Move{From: tower.A, To: tower.C}, tower.ApplyMove(s, tower.A, tower.C))

	var buf bytes.Buffer
	require.NoError(t, New(&buf).History(h))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Initial\n"))
	assert.Contains(t, out, "Move 1: A→C\n")
	assert.Contains(t, out, " | | - \n")
}
