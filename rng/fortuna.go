package rng

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"math/big"

	"github.com/aead/serpent"
	"github.com/seehuhn/fortuna"

	"github.com/safing/xerand/log"
)

// ErrUnknownCipher is returned when a Fortuna cipher name is not supported.
var ErrUnknownCipher = errors.New("unknown or unsupported cipher")

// Ciphers lists the block ciphers supported by FortunaSource.
var Ciphers = []string{"aes", "serpent"}

// FortunaSource is a deterministic source backed by the Fortuna generator.
// It is seeded exactly once with the canonical entropy bytes and never
// reseeded, so equal entropy and cipher produce equal streams.
//
// Each request consumes whole bytes: k bits are taken from the top of
// ceil(k/8) generated bytes and the remaining bits are dropped.
type FortunaSource struct {
	gen *fortuna.Generator
}

// NewFortunaSource returns a FortunaSource keyed by the named block cipher ("aes" or "serpent").
func NewFortunaSource(entropy Entropy, cipherName string) (*FortunaSource, error) {
	newCipher, err := cipherFactory(cipherName)
	if err != nil {
		return nil, err
	}

	gen := fortuna.NewGenerator(newCipher)
	gen.Reseed(entropy.Bytes())

	log.Debugf("rng: created fortuna source from %s using %s", entropy, cipherName)
	return &FortunaSource{gen: gen}, nil
}

func cipherFactory(name string) (fortuna.NewCipher, error) {
	switch name {
	case "aes":
		return aes.NewCipher, nil
	case "serpent":
		return func(key []byte) (cipher.Block, error) {
			return serpent.NewCipher(key)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
}

// Bits returns the next k bits of the stream.
func (fs *FortunaSource) Bits(k int) (*big.Int, error) {
	if err := checkBitCount(k); err != nil {
		return nil, err
	}
	if k == 0 {
		return new(big.Int), nil
	}

	nBytes := (k + 7) / 8
	n := new(big.Int).SetBytes(fs.gen.PseudoRandomData(uint(nBytes)))
	n.Rsh(n, uint(nBytes*8-k))

	fortunaBitsGenerated.Add(k)
	return n, nil
}

// Float64 returns a random value in [0, 1) built from the next FloatBits bits.
func (fs *FortunaSource) Float64() (float64, error) {
	return Float64From(fs)
}
