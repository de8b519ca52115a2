package rng

import (
	"fmt"
	"io"
	"math/big"
)

type reader struct {
	src Source
}

// NewReader returns an io.Reader that fills byte slices from src, one byte
// per 8-bit draw, in stream order.
func NewReader(src Source) io.Reader {
	return &reader{src: src}
}

// Read implements the io.Reader interface.
func (r *reader) Read(b []byte) (int, error) {
	for i := range b {
		v, err := r.src.Bits(8)
		if err != nil {
			return i, err
		}
		b[i] = byte(v.Uint64())
	}
	return len(b), nil
}

// Intn returns a uniform random integer in [0, n), using rejection sampling to avoid modulo bias.
func Intn(src Source, n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: upper bound must be positive, got %d", ErrInvalidArgument, n)
	}
	if n == 1 {
		return 0, nil
	}

	bound := big.NewInt(n)
	k := big.NewInt(n - 1).BitLen()
	for {
		candidate, err := src.Bits(k)
		if err != nil {
			return 0, err
		}
		if candidate.Cmp(bound) < 0 {
			return candidate.Int64(), nil
		}
	}
}
