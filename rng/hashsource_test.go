package rng

import (
	"errors"
	gohash "hash"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safing/xerand/crypto/hash"
)

func newTestHashSource(t *testing.T, entropy Entropy, alg hash.Algorithm) *HashSource {
	t.Helper()
	hs, err := NewHashSource(entropy, alg)
	require.NoError(t, err)
	return hs
}

func bitsHex(t *testing.T, src Source, k int) string {
	t.Helper()
	n, err := src.Bits(k)
	require.NoError(t, err)
	return "0x" + n.Text(16)
}

func TestHashSourceVectors(t *testing.T) {
	hs := newTestHashSource(t, FromText("123"), hash.SHA2_256)
	first, err := Uint64(hs, 8)
	require.NoError(t, err)
	second, err := Uint64(hs, 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(171), first)
	assert.Equal(t, uint64(137), second)

	hs = newTestHashSource(t, FromText("123"), 0)
	assert.Equal(t, 256, hs.DigestBits())
	assert.Equal(t,
		"0x6b50019f6ee3934b4e8cd7fc92002c1ee0ca983dca31943f767d032be09489ab8170ba7835a",
		bitsHex(t, hs, 300),
	)

	hs = newTestHashSource(t, FromText("123"), hash.SHA2_256)
	f, err := hs.Float64()
	require.NoError(t, err)
	assert.Equal(t, 0.9066371332485706, f)
	f, err = hs.Float64()
	require.NoError(t, err)
	assert.Equal(t, 0.06034162013371824, f)

	hs = newTestHashSource(t, FromText("123"), hash.SHA2_256)
	for i := 0; i < 3; i++ {
		_, err := hs.Bits(256)
		require.NoError(t, err)
	}
	assert.Equal(t, "0x4e5dfd006db94694", bitsHex(t, hs, 64))

	hs = newTestHashSource(t, FromText("abc"), hash.SHA3_256)
	assert.Equal(t, "0x41a4be7ebab2eaa7", bitsHex(t, hs, 64))

	hs = newTestHashSource(t, FromText("abc"), hash.BLAKE2B_512)
	assert.Equal(t, 512, hs.DigestBits())
	assert.Equal(t, "0x69410432723f02fc", bitsHex(t, hs, 64))
}

func TestHashSourceEntropyKinds(t *testing.T) {
	expected := "0x767d032be09489ab"
	for _, entropy := range []Entropy{
		FromText("123"),
		FromBytes([]byte("123")),
		FromValue(123),
		FromValue(uint8(123)),
		FromValue("123"),
		FromValue([]byte("123")),
		FromValue(big.NewInt(123)),
	} {
		hs := newTestHashSource(t, entropy, hash.Default)
		assert.Equal(t, expected, bitsHex(t, hs, 64), entropy.String())
	}
}

func TestHashSourceDeterminism(t *testing.T) {
	a := newTestHashSource(t, FromText("determinism"), hash.SHA2_256)
	b := newTestHashSource(t, FromText("determinism"), hash.SHA2_256)

	for _, k := range []int{0, 1, 7, 8, 64, 255, 256, 257, 1000, 3} {
		x, err := a.Bits(k)
		require.NoError(t, err)
		y, err := b.Bits(k)
		require.NoError(t, err)
		assert.Equal(t, 0, x.Cmp(y), "k=%d", k)
		assert.LessOrEqual(t, x.BitLen(), k)
	}
}

func TestHashSourceChunking(t *testing.T) {
	// one big draw equals many small draws, concatenated with earlier draws on top
	for _, total := range []int{0, 1, 13, 256, 257, 600} {
		whole := newTestHashSource(t, FromText("chunks"), hash.SHA2_256)
		expected, err := whole.Bits(total)
		require.NoError(t, err)

		single := newTestHashSource(t, FromText("chunks"), hash.SHA2_256)
		assembled := new(big.Int)
		for i := 0; i < total; i++ {
			bit, err := single.Bits(1)
			require.NoError(t, err)
			assembled.Lsh(assembled, 1).Or(assembled, bit)
		}
		assert.Equal(t, 0, expected.Cmp(assembled), "total=%d", total)

		mixed := newTestHashSource(t, FromText("chunks"), hash.SHA2_256)
		assembled = new(big.Int)
		remaining := total
		for _, k := range []int{5, 0, 100, 251, 3, 1000} {
			if k > remaining {
				k = remaining
			}
			part, err := mixed.Bits(k)
			require.NoError(t, err)
			assembled.Lsh(assembled, uint(k)).Or(assembled, part)
			remaining -= k
		}
		assert.Equal(t, 0, expected.Cmp(assembled), "total=%d", total)
	}
}

func TestHashSourceStreamsDiffer(t *testing.T) {
	a := newTestHashSource(t, FromText("a"), hash.SHA2_256)
	b := newTestHashSource(t, FromText("b"), hash.SHA2_256)
	c := newTestHashSource(t, FromText("a"), hash.SHA3_256)
	assert.NotEqual(t, bitsHex(t, a, 128), bitsHex(t, b, 128))

	a = newTestHashSource(t, FromText("a"), hash.SHA2_256)
	assert.NotEqual(t, bitsHex(t, a, 128), bitsHex(t, c, 128))
}

func TestHashSourceAllAlgorithms(t *testing.T) {
	for _, alg := range hash.Algorithms() {
		hs := newTestHashSource(t, FromText("all"), alg)
		assert.Equal(t, alg.DigestBits(), hs.DigestBits(), alg.Name())

		n, err := hs.Bits(3*alg.DigestBits() + 5)
		require.NoError(t, err, alg.Name())
		assert.LessOrEqual(t, n.BitLen(), 3*alg.DigestBits()+5, alg.Name())
	}
}

func TestHashSourceInvalidArgument(t *testing.T) {
	hs := newTestHashSource(t, FromText("123"), hash.SHA2_256)
	_, err := hs.Bits(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// a rejected request must not consume bits
	v, err := Uint64(hs, 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(171), v)

	_, err = Uint64(hs, 65)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestHashSourceConstructionErrors(t *testing.T) {
	_, err := NewHashSource(FromText("x"), hash.Algorithm(200))
	assert.ErrorIs(t, err, ErrAlgorithmFailure)
	assert.ErrorIs(t, err, hash.ErrUnknownAlgorithm)

	_, err = NewHashSourceWith(FromText("x"), nil)
	assert.ErrorIs(t, err, ErrAlgorithmFailure)

	_, err = NewHashSourceWith(FromText("x"), func() gohash.Hash { return nil })
	assert.ErrorIs(t, err, ErrAlgorithmFailure)
}

var errBrokenHash = errors.New("broken hash")

// failingHash wraps a real hash and starts failing after a number of writes.
type failingHash struct {
	gohash.Hash
	writesLeft *int
}

func (fh failingHash) Write(p []byte) (int, error) {
	if *fh.writesLeft <= 0 {
		return 0, errBrokenHash
	}
	*fh.writesLeft--
	return fh.Hash.Write(p)
}

func TestHashSourceAlgorithmFailure(t *testing.T) {
	// construction writes twice
	writesLeft := 1
	_, err := NewHashSourceWith(FromText("x"), func() gohash.Hash {
		return failingHash{Hash: hash.SHA2_256.New(), writesLeft: &writesLeft}
	})
	assert.ErrorIs(t, err, ErrAlgorithmFailure)
	assert.ErrorIs(t, err, errBrokenHash)

	// allow construction and one chain advance
	writesLeft = 4
	hs, err := NewHashSourceWith(FromText("x"), func() gohash.Hash {
		return failingHash{Hash: hash.SHA2_256.New(), writesLeft: &writesLeft}
	})
	require.NoError(t, err)

	_, err = hs.Bits(512)
	require.NoError(t, err)

	_, err = hs.Bits(1)
	assert.ErrorIs(t, err, ErrAlgorithmFailure)
	assert.ErrorIs(t, err, errBrokenHash)

	// the source stays broken, even if the hash recovers
	writesLeft = 100
	_, err = hs.Bits(1)
	assert.ErrorIs(t, err, errBrokenHash)
}

func TestHashSourceFloatRange(t *testing.T) {
	hs := newTestHashSource(t, FromText("range"), hash.SHA2_256)
	for i := 0; i < 10000; i++ {
		f, err := hs.Float64()
		require.NoError(t, err)
		if f < 0 || f >= 1 {
			t.Fatalf("float out of range: %v", f)
		}
	}
}
