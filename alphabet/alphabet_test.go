package alphabet_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thuemorse/alphabet"
	"github.com/katalvlaran/thuemorse/sequence"
)

// k5Bits is the first-seen order of the twelve 5-bit Thue-Morse windows.
var k5Bits = []string{
	"01101", "11010", "10100", "01001", "10011", "00110",
	"01100", "11001", "10010", "00101", "01011", "10110",
}

// bitsOf extracts Symbol.Bits in order.
func bitsOf(a *alphabet.Alphabet) []string {
	out := make([]string, 0, a.Len())
	for _, s := range a.Symbols() {
		out = append(out, s.Bits)
	}
	return out
}

// TestBuild_K5Golden pins the K=5 alphabet scanned from the 32-bit prefix
// (largest power of two ≤ 5, times eight).
func TestBuild_K5Golden(t *testing.T) {
	t.Parallel()

	src := sequence.Generate(sequence.LargestPowerOfTwoAtMost(5) * 8)
	require.Len(t, src, 32)

	a, err := alphabet.Build(src, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, a.K())
	assert.Equal(t, 12, a.Len())
	assert.Equal(t, k5Bits, bitsOf(a))

	for i, s := range a.Symbols() {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, alphabet.DefaultLabelFn(i), s.Label)
	}
}

// TestDiscover_Counts is the regression baseline of distinct window counts
// for the committed source policy.
func TestDiscover_Counts(t *testing.T) {
	t.Parallel()

	want := map[int]int{
		1: 2, 2: 4, 3: 6, 4: 10, 5: 12, 6: 16, 7: 20, 8: 22, 9: 24, 10: 28,
		11: 32, 12: 36, 13: 40, 14: 42, 15: 44, 16: 46, 17: 48, 18: 52, 19: 56, 20: 60,
	}
	for k, n := range want {
		a, err := alphabet.Discover(k)
		require.NoError(t, err, "k=%d", k)
		assert.Equal(t, n, a.Len(), "k=%d", k)
	}
}

// TestDiscover_MatchesLongPrefix checks the short source already holds every
// window a much longer prefix does, in the same first-seen order.
func TestDiscover_MatchesLongPrefix(t *testing.T) {
	t.Parallel()

	long := sequence.Generate(1 << 14)
	for k := 1; k <= 20; k++ {
		short, err := alphabet.Discover(k)
		require.NoError(t, err)
		ref, err := alphabet.Build(long, k)
		require.NoError(t, err)
		assert.Equal(t, bitsOf(ref), bitsOf(short), "k=%d", k)
	}
}

// TestBuildFrom_FourBlockScanUnderCounts documents why the AA/AB/BA/BB scan
// is not used: for K=6 it finds 10 of the 16 windows.
func TestBuildFrom_FourBlockScanUnderCounts(t *testing.T) {
	t.Parallel()

	const k = 6
	a, b := sequence.Blocks(sequence.LargestPowerOfTwoBelow(k))
	blocks, err := alphabet.BuildFrom([]string{a + a, a + b, b + a, b + b}, k)
	require.NoError(t, err)
	full, err := alphabet.Discover(k)
	require.NoError(t, err)

	assert.Equal(t, 10, blocks.Len())
	assert.Equal(t, 16, full.Len())
	for _, s := range blocks.Symbols() {
		assert.True(t, full.Contains(s.Bits), "%s missing from full alphabet", s.Bits)
	}
}

// TestBuild_NoDuplicatesFirstSeenOrder verifies uniqueness and order on a
// hand-made source.
func TestBuild_NoDuplicatesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	a, err := alphabet.Build("0010011", 2)
	require.NoError(t, err)
	// windows: 00 01 10 00 01 11
	assert.Equal(t, []string{"00", "01", "10", "11"}, bitsOf(a))

	seen := map[string]bool{}
	for _, s := range a.Symbols() {
		assert.False(t, seen[s.Bits], "duplicate %s", s.Bits)
		seen[s.Bits] = true
		assert.Len(t, s.Bits, 2)
	}
}

// TestBuild_EdgeCases covers K=0, short sources, negative K and bad bits.
func TestBuild_EdgeCases(t *testing.T) {
	t.Parallel()

	a, err := alphabet.Build("0110", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())

	a, err = alphabet.Discover(0)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())

	a, err = alphabet.Build("01", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())

	_, err = alphabet.Build("0110", -1)
	assert.True(t, errors.Is(err, alphabet.ErrNegativeLength))
	_, err = alphabet.Discover(-2)
	assert.True(t, errors.Is(err, alphabet.ErrNegativeLength))

	_, err = alphabet.Build("01x0", 2)
	assert.True(t, errors.Is(err, sequence.ErrInvalidBit))
	_, err = alphabet.BuildFrom([]string{"0101", "2"}, 1)
	assert.True(t, errors.Is(err, sequence.ErrInvalidBit))
}

// TestBuild_LabelSpace covers the strict, clamped and decimal label policies
// at K=21, the first length with more than 62 windows.
func TestBuild_LabelSpace(t *testing.T) {
	t.Parallel()

	const k = 21

	_, err := alphabet.Discover(k)
	require.Error(t, err)
	assert.True(t, errors.Is(err, alphabet.ErrLabelSpaceExhausted))

	clamped, err := alphabet.Discover(k, alphabet.WithClampedLabels())
	require.NoError(t, err)
	require.Equal(t, 64, clamped.Len())
	assert.Equal(t, "z", clamped.At(61).Label)
	assert.Equal(t, alphabet.UnknownLabel, clamped.At(62).Label)
	assert.Equal(t, alphabet.UnknownLabel, clamped.At(63).Label)
	_, ok := clamped.ByLabel(alphabet.UnknownLabel)
	assert.False(t, ok, "UnknownLabel must never resolve")

	decimal, err := alphabet.Discover(k, alphabet.WithDecimalLabels())
	require.NoError(t, err)
	require.Equal(t, 64, decimal.Len())
	for i, s := range decimal.Symbols() {
		assert.Equal(t, strconv.Itoa(i), s.Label)
	}
}

// TestBuild_CustomSchemeLabels rejects schemes that repeat a label or emit
// a label that cannot name a symbol.
func TestBuild_CustomSchemeLabels(t *testing.T) {
	t.Parallel()

	constant := alphabet.WithLabelScheme(func(int) string { return "X" }, alphabet.Unbounded)
	_, err := alphabet.Discover(3, constant)
	require.Error(t, err)
	assert.True(t, errors.Is(err, alphabet.ErrDuplicateLabel))

	// a single window never repeats, whatever the scheme
	one, err := alphabet.Build("011", 3, constant)
	require.NoError(t, err)
	assert.Equal(t, "X", one.At(0).Label)

	for _, bad := range []string{"", alphabet.UnknownLabel} {
		bad := bad
		scheme := alphabet.WithLabelScheme(func(int) string { return bad }, alphabet.Unbounded)
		_, err = alphabet.Discover(2, scheme)
		assert.True(t, errors.Is(err, alphabet.ErrInvalidLabel), "label %q", bad)
	}

	// clamped overflow still assigns UnknownLabel without tripping the check
	clamped, err := alphabet.Discover(3,
		alphabet.WithLabelScheme(func(i int) string { return string(rune('a' + i)) }, 2),
		alphabet.WithClampedLabels(),
	)
	require.NoError(t, err)
	assert.Equal(t, 6, clamped.Len())
	assert.Equal(t, alphabet.UnknownLabel, clamped.At(5).Label)
}

// TestAlphabet_Lookups covers Lookup, Contains, LabelOf and ByLabel.
func TestAlphabet_Lookups(t *testing.T) {
	t.Parallel()

	a, err := alphabet.Discover(5)
	require.NoError(t, err)

	s, ok := a.Lookup("01001")
	require.True(t, ok)
	assert.Equal(t, "D", s.Label)
	assert.Equal(t, 3, s.Index)
	assert.True(t, a.Contains("10110"))
	assert.Equal(t, "L", a.LabelOf("10110"))

	// 00000 is cube-containing, never a Thue-Morse window
	_, ok = a.Lookup("00000")
	assert.False(t, ok)
	assert.False(t, a.Contains("00000"))
	assert.Equal(t, alphabet.UnknownLabel, a.LabelOf("00000"))

	byLabel, ok := a.ByLabel("F")
	require.True(t, ok)
	assert.Equal(t, "00110", byLabel.Bits)
	_, ok = a.ByLabel("Z")
	assert.False(t, ok)

	// Symbols returns a copy
	syms := a.Symbols()
	syms[0].Label = "mutated"
	assert.Equal(t, "A", a.At(0).Label)
}
