package tower

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitial(t *testing.T) {
	s, err := Initial(3)
	require.NoError(t, err)
	assert.Equal(t, Peg{5, 3, 1}, s.Peg(A))
	assert.Empty(t, s.Peg(B))
	assert.Empty(t, s.Peg(C))
	assert.True(t, s.Peg(A).Sorted())

	one, err := Initial(1)
	require.NoError(t, err)
	assert.True(t, one.Equal(NewState(Peg{1}, nil, nil)))
}

func TestInitial_RejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Initial(n)
		assert.ErrorIs(t, err, ErrInvalidDiskCount)
	}
}

func TestTopScore(t *testing.T) {
	assert.Equal(t, EmptyScore, TopScore(nil))
	assert.Equal(t, EmptyScore, TopScore(Peg{}))
	assert.Equal(t, Disk(1), TopScore(Peg{5, 3, 1}))
}

func TestParsePegID(t *testing.T) {
	cases := map[string]PegID{
		"left": A, "L": A, "a": A,
		"MIDDLE": B, "m": B, "B": B,
		"Right": C, "r": C, " c ": C,
	}
	for in, want := range cases {
		got, err := ParsePegID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "x", "lefty", "centre"} {
		_, err := ParsePegID(bad)
		assert.ErrorIs(t, err, ErrUnknownPeg, bad)
	}
}

func TestOther(t *testing.T) {
	assert.Equal(t, C, Other(A, B))
	assert.Equal(t, B, Other(C, A))
	assert.Equal(t, A, Other(B, C))
}

func TestEqual(t *testing.T) {
	a := NewState(Peg{3, 1}, Peg{}, nil)
	assert.True(t, a.Equal(NewState(Peg{3, 1}, nil, Peg{})))
	assert.False(t, a.Equal(NewState(Peg{3}, Peg{1}, nil)))
	assert.False(t, a.Equal(NewState(Peg{1, 3}, nil, nil)))
}

func TestIsGoal(t *testing.T) {
	s := NewState(nil, nil, Peg{3, 1})
	assert.True(t, s.IsGoal(C, 2))
	assert.False(t, s.IsGoal(C, 3))
	assert.False(t, s.IsGoal(B, 2))
	assert.False(t, NewState(Peg{1}, nil, Peg{3}).IsGoal(C, 2))
}

func TestSerializeRoundTrip(t *testing.T) {
	s := NewState(Peg{7, 5}, Peg{3}, Peg{1})

	var buf bytes.Buffer
	require.NoError(t, s.Serialize(&buf))

	out := &State{}
	require.NoError(t, out.Deserialize(&buf))
	assert.True(t, s.Equal(out), "got %s", out)
}

func TestString(t *testing.T) {
	assert.Equal(t, "A[5 3] B[1] C[]", NewState(Peg{5, 3}, Peg{1}, nil).String())
}
