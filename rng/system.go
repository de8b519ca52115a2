package rng

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// SystemSource draws bits from the operating system's random number
// generator. It is not reproducible and is meant to be mixed into an
// XorSource next to deterministic sources.
type SystemSource struct {
	reader io.Reader
}

// NewSystemSource returns a SystemSource reading from crypto/rand.
func NewSystemSource() *SystemSource {
	return &SystemSource{reader: rand.Reader}
}

// Bits returns k fresh random bits.
func (ss *SystemSource) Bits(k int) (*big.Int, error) {
	if err := checkBitCount(k); err != nil {
		return nil, err
	}
	if k == 0 {
		return new(big.Int), nil
	}

	nBytes := (k + 7) / 8
	osEntropy := make([]byte, nBytes)
	if _, err := io.ReadFull(ss.reader, osEntropy); err != nil {
		return nil, fmt.Errorf("could not read entropy from os: %w", err)
	}

	n := new(big.Int).SetBytes(osEntropy)
	n.Rsh(n, uint(nBytes*8-k))

	systemBitsGenerated.Add(k)
	return n, nil
}

// Float64 returns a random value in [0, 1) built from FloatBits fresh bits.
func (ss *SystemSource) Float64() (float64, error) {
	return Float64From(ss)
}
