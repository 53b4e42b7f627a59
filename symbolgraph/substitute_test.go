package symbolgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thuemorse/alphabet"
	"github.com/katalvlaran/thuemorse/sequence"
	"github.com/katalvlaran/thuemorse/symbolgraph"
)

// TestSubstitute_SelfSimilarity verifies that expanding the rendering of
// T[0:K+M-1] yields the rendering of T[K-1 : 2K+2M-2].
func TestSubstitute_SelfSimilarity(t *testing.T) {
	t.Parallel()

	for k := 1; k <= 10; k++ {
		g := buildK(t, k)
		a := g.Alphabet()
		for _, m := range []int{1, 7, 40} {
			long := sequence.Generate(2*k + 2*m)
			labels := alphabet.RenderLabels(a, long[:k+m-1])
			require.Len(t, labels, m)

			got, err := symbolgraph.Substitute(g, labels)
			require.NoError(t, err)
			want := alphabet.RenderLabels(a, long[k-1:2*k+2*m-2])
			assert.Equal(t, want, got, "k=%d m=%d", k, m)
		}
	}
}

// TestSubstitute_K5 pins one expansion.
func TestSubstitute_K5(t *testing.T) {
	t.Parallel()

	g := buildK(t, 5)
	got, err := symbolgraph.Substitute(g, strings.Split("ABCD", ""))
	require.NoError(t, err)
	assert.Equal(t, "EFGHIJKL", strings.Join(got, ""))
}

// TestSubstitute_Sentinels covers '?' input, None children and bad labels.
func TestSubstitute_Sentinels(t *testing.T) {
	t.Parallel()

	g := buildK(t, 5)
	got, err := symbolgraph.Substitute(g, []string{alphabet.UnknownLabel, "A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"?", "?", "E", "F"}, got)

	_, err = symbolgraph.Substitute(g, []string{"A", "Q"})
	assert.True(t, errors.Is(err, symbolgraph.ErrUnknownLabel))

	_, err = symbolgraph.Substitute(nil, []string{"A"})
	assert.True(t, errors.Is(err, symbolgraph.ErrGraphNil))

	a, err := alphabet.Build("0000", 2)
	require.NoError(t, err)
	foreign, err := symbolgraph.Build(a)
	require.NoError(t, err)
	got, err = symbolgraph.Substitute(foreign, []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"?", "?"}, got)

	empty, err := symbolgraph.Substitute(g, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
