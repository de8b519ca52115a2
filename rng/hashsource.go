package rng

import (
	"fmt"
	gohash "hash"
	"math/big"

	"github.com/safing/xerand/crypto/hash"
	"github.com/safing/xerand/log"
)

// chainState holds the rolling state of a hash chain. It is owned by exactly one HashSource.
type chainState struct {
	// hidden is advanced on its own digest only and never reaches the output.
	hidden gohash.Hash
	// output is advanced on its own digest and the digest of hidden.
	output gohash.Hash

	digestBits int

	// buffer holds the unused low order bits of the latest output digest.
	buffer    *big.Int
	remaining int
}

// HashSource is a deterministic bit stream derived from entropy by chaining a
// cryptographic hash. Two hash states are kept: a hidden one that only ever
// hashes its own digest, and an output one that additionally absorbs the
// hidden digest. Output bits are taken from the output digests.
//
// The stream is the same no matter how requests are split: drawing k bits and
// then m bits yields the same bits as drawing k+m bits at once.
//
// A HashSource must not be used concurrently.
type HashSource struct {
	state chainState
	err   error
}

// NewHashSource returns a HashSource seeded with entropy, using the given
// algorithm. The zero Algorithm selects hash.Default.
func NewHashSource(entropy Entropy, alg hash.Algorithm) (*HashSource, error) {
	if alg == 0 {
		alg = hash.Default
	}
	factory := alg.Factory()
	if factory == nil {
		return nil, fmt.Errorf("%w: %w: id %d", ErrAlgorithmFailure, hash.ErrUnknownAlgorithm, alg)
	}

	hs, err := NewHashSourceWith(entropy, factory)
	if err != nil {
		return nil, err
	}
	log.Debugf("rng: created hash source from %s using %s", entropy, alg)
	return hs, nil
}

// NewHashSourceWith returns a HashSource seeded with entropy, using hash
// states created by newHash.
func NewHashSourceWith(entropy Entropy, newHash func() gohash.Hash) (*HashSource, error) {
	if newHash == nil {
		return nil, fmt.Errorf("%w: missing hash constructor", ErrAlgorithmFailure)
	}
	hidden := newHash()
	output := newHash()
	if hidden == nil || output == nil {
		return nil, fmt.Errorf("%w: hash constructor returned nil", ErrAlgorithmFailure)
	}
	if output.Size() <= 0 {
		return nil, fmt.Errorf("%w: invalid digest size %d", ErrAlgorithmFailure, output.Size())
	}

	hs := &HashSource{
		state: chainState{
			hidden:     hidden,
			output:     output,
			digestBits: output.Size() * 8,
		},
	}

	data := entropy.Bytes()
	if err := write(hs.state.hidden, data); err != nil {
		return nil, err
	}
	if err := write(hs.state.output, append(data, hs.state.hidden.Sum(nil)...)); err != nil {
		return nil, err
	}
	hs.state.refill()

	return hs, nil
}

// DigestBits returns the number of bits produced by one chain advance.
func (hs *HashSource) DigestBits() int {
	return hs.state.digestBits
}

// Bits returns the next k bits of the stream. Bits produced earlier occupy
// the more significant positions of the result.
func (hs *HashSource) Bits(k int) (*big.Int, error) {
	if err := checkBitCount(k); err != nil {
		return nil, err
	}
	if hs.err != nil {
		return nil, hs.err
	}

	s := &hs.state
	ans := new(big.Int)
	chunk := new(big.Int)
	requested := k
	for {
		take := k
		if take > s.remaining {
			take = s.remaining
		}

		chunk.And(s.buffer, mask(take))
		s.buffer.Rsh(s.buffer, uint(take))
		s.remaining -= take
		k -= take

		ans.Lsh(ans, uint(take))
		ans.Or(ans, chunk)

		if k == 0 {
			break
		}
		if err := s.advance(); err != nil {
			hs.err = err
			return nil, err
		}
	}

	hashBitsGenerated.Add(requested)
	return ans, nil
}

// Float64 returns a random value in [0, 1) built from the next FloatBits bits.
func (hs *HashSource) Float64() (float64, error) {
	return Float64From(hs)
}

// advance moves both hash states one step along the chain and refills the bit buffer.
func (s *chainState) advance() error {
	if err := write(s.hidden, s.hidden.Sum(nil)); err != nil {
		return err
	}
	if err := write(s.output, append(s.output.Sum(nil), s.hidden.Sum(nil)...)); err != nil {
		return err
	}
	s.refill()

	chainAdvances.Inc()
	log.Tracef("rng: hash chain advanced, %d bits available", s.remaining)
	return nil
}

func (s *chainState) refill() {
	s.buffer = new(big.Int).SetBytes(s.output.Sum(nil))
	s.remaining = s.digestBits
}

func write(h gohash.Hash, data []byte) error {
	if _, err := h.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrAlgorithmFailure, err)
	}
	return nil
}
