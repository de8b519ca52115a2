package rng

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/safing/xerand/log"
)

// XorSource combines other sources by XOR-ing their outputs. As long as the
// sources are independent, the result is at least as strong as the strongest
// of them, and bias in any of the others is masked.
//
// An XorSource does not own its sources. They must not be used elsewhere
// while the XorSource is in use, else its output is no longer independent of
// what the other user sees.
type XorSource struct {
	sources []Source
}

// NewXorSource returns an XorSource over the given sources. With no sources,
// all requests return zero.
func NewXorSource(sources ...Source) (*XorSource, error) {
	var result *multierror.Error
	for i, src := range sources {
		if isNilSource(src) {
			result = multierror.Append(result, fmt.Errorf("source #%d: %w: got nil %T", i, ErrTypeMismatch, src))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	held := make([]Source, len(sources))
	copy(held, sources)

	log.Debugf("rng: created xor source over %d sources", len(held))
	return &XorSource{sources: held}, nil
}

// XorSourceOf is like NewXorSource, but checks at runtime that every
// candidate implements Source. All mismatches are reported together.
func XorSourceOf(candidates ...interface{}) (*XorSource, error) {
	var result *multierror.Error
	sources := make([]Source, 0, len(candidates))
	for i, candidate := range candidates {
		src, ok := candidate.(Source)
		if !ok || isNilSource(src) {
			result = multierror.Append(result, fmt.Errorf("source #%d: %w: got %T", i, ErrTypeMismatch, candidate))
			continue
		}
		sources = append(sources, src)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return NewXorSource(sources...)
}

// isNilSource reports whether src is nil or wraps a nil reference.
func isNilSource(src Source) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Sources returns the combined sources in order.
func (xs *XorSource) Sources() []Source {
	sources := make([]Source, len(xs.sources))
	copy(sources, xs.sources)
	return sources
}

// Bits draws k bits from every source, in order, and returns their XOR.
func (xs *XorSource) Bits(k int) (*big.Int, error) {
	if err := checkBitCount(k); err != nil {
		return nil, err
	}

	ans := new(big.Int)
	for i, src := range xs.sources {
		n, err := src.Bits(k)
		if err != nil {
			return nil, fmt.Errorf("source #%d: %w", i, err)
		}
		ans.Xor(ans, n)
	}

	xorBitsGenerated.Add(k)
	return ans, nil
}

// Float64 returns a random value in [0, 1) built from the next FloatBits bits.
func (xs *XorSource) Float64() (float64, error) {
	return Float64From(xs)
}
