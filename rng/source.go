package rng

import (
	"errors"
	"fmt"
	"math/big"
)

// FloatBits is the number of random bits used to build a float64, equal to its mantissa width.
const FloatBits = 53

var (
	// ErrInvalidArgument is returned when a negative bit count is requested.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTypeMismatch is returned when a value that does not implement Source is used as one.
	ErrTypeMismatch = errors.New("value is not a random bit source")
	// ErrAlgorithmFailure is returned when the underlying hash algorithm fails.
	ErrAlgorithmFailure = errors.New("hash algorithm failure")
)

// Source is anything that produces random bits.
type Source interface {
	// Bits returns a non-negative integer with exactly k random bits, ie. a value in [0, 2^k).
	Bits(k int) (*big.Int, error)
	// Float64 returns a random value in [0, 1).
	Float64() (float64, error)
}

// Float64From draws FloatBits bits from src and scales them to [0, 1).
func Float64From(src Source) (float64, error) {
	n, err := src.Bits(FloatBits)
	if err != nil {
		return 0, err
	}
	return float64(n.Uint64()) / (1 << FloatBits), nil
}

// Uint64 draws k bits, 0 <= k <= 64, from src.
func Uint64(src Source, k int) (uint64, error) {
	if k > 64 {
		return 0, fmt.Errorf("%w: cannot fit %d bits into an uint64", ErrInvalidArgument, k)
	}
	n, err := src.Bits(k)
	if err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}

func checkBitCount(k int) error {
	if k < 0 {
		return fmt.Errorf("%w: bit count must not be negative, got %d", ErrInvalidArgument, k)
	}
	return nil
}

// mask returns 2^k - 1.
func mask(k int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(k))
	return m.Sub(m, big.NewInt(1))
}
