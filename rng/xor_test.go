package rng

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safing/xerand/crypto/hash"
)

func TestXorSourceVector(t *testing.T) {
	xs, err := NewXorSource(
		newTestHashSource(t, FromText("a"), hash.SHA2_256),
		newTestHashSource(t, FromText("b"), hash.SHA2_256),
	)
	require.NoError(t, err)
	assert.Equal(t, "0xc7bbbb9beb72c18c", bitsHex(t, xs, 64))
}

func TestXorSourceIdentity(t *testing.T) {
	reference := newTestHashSource(t, FromText("identity"), hash.SHA2_256)
	xs, err := NewXorSource(newTestHashSource(t, FromText("identity"), hash.SHA2_256))
	require.NoError(t, err)

	for _, k := range []int{0, 8, 300, 1, 53} {
		assert.Equal(t, bitsHex(t, reference, k), bitsHex(t, xs, k), "k=%d", k)
	}

	f1, err := reference.Float64()
	require.NoError(t, err)
	f2, err := xs.Float64()
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}

func TestXorSourceEmpty(t *testing.T) {
	xs, err := NewXorSource()
	require.NoError(t, err)
	assert.Empty(t, xs.Sources())

	for _, k := range []int{0, 1, 64, 1000} {
		n, err := xs.Bits(k)
		require.NoError(t, err)
		assert.Equal(t, 0, n.Sign())
	}
	for i := 0; i < 10; i++ {
		f, err := xs.Float64()
		require.NoError(t, err)
		assert.Equal(t, 0.0, f)
	}

	_, err = xs.Bits(-3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestXorSourceFoldsEverySourceOnce(t *testing.T) {
	a := newTestHashSource(t, FromText("a"), hash.SHA2_256)
	b := newTestHashSource(t, FromText("b"), hash.SHA3_256)
	c := newTestHashSource(t, FromText("c"), hash.BLAKE3_256)
	xs, err := NewXorSource(a, b, c)
	require.NoError(t, err)
	assert.Len(t, xs.Sources(), 3)

	refA := newTestHashSource(t, FromText("a"), hash.SHA2_256)
	refB := newTestHashSource(t, FromText("b"), hash.SHA3_256)
	refC := newTestHashSource(t, FromText("c"), hash.BLAKE3_256)

	for _, k := range []int{17, 256, 1, 700} {
		got, err := xs.Bits(k)
		require.NoError(t, err)

		expected := new(big.Int)
		for _, ref := range []*HashSource{refA, refB, refC} {
			n, err := ref.Bits(k)
			require.NoError(t, err)
			expected.Xor(expected, n)
		}
		assert.Equal(t, 0, expected.Cmp(got), "k=%d", k)
	}
}

func TestXorSourceNesting(t *testing.T) {
	inner, err := NewXorSource(
		newTestHashSource(t, FromText("a"), hash.SHA2_256),
		newTestHashSource(t, FromText("b"), hash.SHA2_256),
	)
	require.NoError(t, err)
	outer, err := NewXorSource(inner)
	require.NoError(t, err)
	assert.Equal(t, "0xc7bbbb9beb72c18c", bitsHex(t, outer, 64))

	// x ^ x = 0
	twice, err := NewXorSource(
		newTestHashSource(t, FromText("same"), hash.SHA2_256),
		newTestHashSource(t, FromText("same"), hash.SHA2_256),
	)
	require.NoError(t, err)
	n, err := twice.Bits(512)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Sign())
}

func TestXorSourceTypeMismatch(t *testing.T) {
	_, err := NewXorSource(newTestHashSource(t, FromText("a"), 0), nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	var nilSource Source
	_, err = XorSourceOf(nilSource)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	// typed nil pointers are rejected before they can be used
	var nilHash *HashSource
	_, err = NewXorSource(nilHash)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = XorSourceOf(newTestHashSource(t, FromText("a"), 0), (*HashSource)(nil), (*XorSource)(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "source #1")
	assert.Contains(t, err.Error(), "source #2")
	assert.Contains(t, err.Error(), "*rng.HashSource")

	_, err = XorSourceOf(newTestHashSource(t, FromText("a"), 0), "not a source", 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "source #1")
	assert.Contains(t, err.Error(), "source #2")
	assert.Contains(t, err.Error(), "string")

	xs, err := XorSourceOf(newTestHashSource(t, FromText("a"), 0), NewSystemSource())
	require.NoError(t, err)
	assert.Len(t, xs.Sources(), 2)
}

var errSourceFailed = errors.New("source failed")

type failingSource struct{}

func (failingSource) Bits(int) (*big.Int, error) { return nil, errSourceFailed }
func (failingSource) Float64() (float64, error)  { return 0, errSourceFailed }

func TestXorSourcePropagatesErrors(t *testing.T) {
	xs, err := NewXorSource(newTestHashSource(t, FromText("a"), 0), failingSource{})
	require.NoError(t, err)

	_, err = xs.Bits(8)
	assert.ErrorIs(t, err, errSourceFailed)
	assert.Contains(t, err.Error(), "source #1")

	_, err = xs.Float64()
	assert.ErrorIs(t, err, errSourceFailed)
}

func TestXorSourceFloatRange(t *testing.T) {
	xs, err := NewXorSource(
		newTestHashSource(t, FromText("x"), hash.SHA2_256),
		newTestHashSource(t, FromText("y"), hash.BLAKE2S_256),
	)
	require.NoError(t, err)
	for i := 0; i < 10000; i++ {
		f, err := xs.Float64()
		require.NoError(t, err)
		if f < 0 || f >= 1 {
			t.Fatalf("float out of range: %v", f)
		}
	}
}

func TestXorSourceMasksBias(t *testing.T) {
	biased := NewBiasedSource(newTestHashSource(t, FromText("beta"), hash.SHA2_256))
	report, err := UniformityCheck(biased, 10000)
	require.NoError(t, err)
	assert.False(t, report.Passed, report.String())

	xs, err := NewXorSource(
		newTestHashSource(t, FromText("alpha"), hash.SHA2_256),
		NewBiasedSource(newTestHashSource(t, FromText("beta"), hash.SHA2_256)),
	)
	require.NoError(t, err)
	report, err = UniformityCheck(xs, 10000)
	require.NoError(t, err)
	assert.True(t, report.Passed, report.String())

	xs, err = NewXorSource(
		newTestHashSource(t, FromText("alpha"), hash.SHA2_256),
		newTestHashSource(t, FromText("gamma"), hash.SHA2_256),
	)
	require.NoError(t, err)
	report, err = UniformityCheck(xs, 10000)
	require.NoError(t, err)
	assert.True(t, report.Passed, report.String())
}
