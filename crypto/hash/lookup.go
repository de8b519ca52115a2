// Copyright Safing ICS Technologies GmbH. Use of this source code is governed by the AGPL license that can be found in the LICENSE file.

package hash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned when a name does not resolve to a registered algorithm.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

var aliases = map[string]Algorithm{
	"sha224":      SHA2_224,
	"sha256":      SHA2_256,
	"sha512/224":  SHA2_512_224,
	"sha512/256":  SHA2_512_256,
	"sha384":      SHA2_384,
	"sha512":      SHA2_512,
	"sha3_224":    SHA3_224,
	"sha3_256":    SHA3_256,
	"sha3_384":    SHA3_384,
	"sha3_512":    SHA3_512,
	"blake2s":     BLAKE2S_256,
	"blake2b":     BLAKE2B_512,
	"blake3":      BLAKE3_256,
	"blake2s_256": BLAKE2S_256,
	"blake2b_256": BLAKE2B_256,
	"blake2b_384": BLAKE2B_384,
	"blake2b_512": BLAKE2B_512,
}

// ParseAlgorithm resolves an algorithm by its display name (eg. "SHA2-256")
// or a common alias (eg. "sha256", "sha3-256", "blake3"). Matching ignores case.
func ParseAlgorithm(name string) (Algorithm, error) {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	if cleaned == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownAlgorithm)
	}

	for alg, algName := range names {
		if strings.ToLower(algName) == cleaned {
			return alg, nil
		}
	}

	alg, ok := aliases[strings.ReplaceAll(cleaned, "-", "_")]
	if ok {
		return alg, nil
	}
	alg, ok = aliases[cleaned]
	if ok {
		return alg, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Algorithms returns all registered algorithms, strongest first.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, len(orderedByRecommendation))
	copy(algs, orderedByRecommendation)
	return algs
}

// Sum returns the digest of data using the given algorithm.
func Sum(data []byte, alg Algorithm) ([]byte, error) {
	hasher := alg.New()
	if hasher == nil {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownAlgorithm, alg)
	}
	if _, err := hasher.Write(data); err != nil {
		return nil, err
	}
	return hasher.Sum(nil), nil
}

// SumHex returns the hex encoded digest of data using the given algorithm.
func SumHex(data []byte, alg Algorithm) (string, error) {
	sum, err := Sum(data, alg)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// RecommendedAlg returns the weakest algorithm that still provides the requested security strength.
func RecommendedAlg(strengthInBits uint16) Algorithm {
	strengthInBytes := uint8(strengthInBits / 8)
	if strengthInBits%8 != 0 {
		strengthInBytes++
	}
	if strengthInBytes == 0 {
		strengthInBytes = uint8(0xFF)
	}
	chosenAlg := orderedByRecommendation[0]
	for _, alg := range orderedByRecommendation {
		strength := alg.SecurityStrength()
		if strength < strengthInBytes {
			break
		}
		chosenAlg = alg
		if strength == strengthInBytes {
			break
		}
	}
	return chosenAlg
}
