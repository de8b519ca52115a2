package rng

import (
	"math/big"
)

// BiasedSource deliberately weakens another source: every returned bit is the
// AND of two drawn bits, so it is set with probability 1/4 instead of 1/2.
// It exists to demonstrate that an XorSource masks a compromised member.
type BiasedSource struct {
	src Source
}

// NewBiasedSource wraps src. The wrapper consumes 2k bits of src per k bits returned.
func NewBiasedSource(src Source) *BiasedSource {
	return &BiasedSource{src: src}
}

// Bits returns k biased bits.
func (bs *BiasedSource) Bits(k int) (*big.Int, error) {
	if err := checkBitCount(k); err != nil {
		return nil, err
	}

	a, err := bs.src.Bits(k)
	if err != nil {
		return nil, err
	}
	b, err := bs.src.Bits(k)
	if err != nil {
		return nil, err
	}
	a.And(a, b)

	biasedBitsGenerated.Add(k)
	return a, nil
}

// Float64 returns a biased value in [0, 1).
func (bs *BiasedSource) Float64() (float64, error) {
	return Float64From(bs)
}
