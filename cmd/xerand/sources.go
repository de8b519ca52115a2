package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safing/xerand/crypto/hash"
	"github.com/safing/xerand/log"
	"github.com/safing/xerand/rng"
)

var errNoSources = errors.New("no sources, use --entropy, --entropy-hex or --system")

// sourceFlags describes the generator to build from the command line.
type sourceFlags struct {
	Entropy    []string
	EntropyHex []string
	Algorithm  string
	Fortuna    []string
	Cipher     string
	System     bool
	Bias       bool
}

func (sf *sourceFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayVarP(&sf.Entropy, "entropy", "e", nil, "text entropy of a hash source, repeat to combine several")
	flags.StringArrayVar(&sf.EntropyHex, "entropy-hex", nil, "hex encoded entropy of a hash source, repeat to combine several")
	flags.StringVarP(&sf.Algorithm, "alg", "a", "", "hash algorithm of the hash sources (default from config)")
	flags.StringArrayVar(&sf.Fortuna, "fortuna", nil, "text entropy of a fortuna source to combine")
	flags.StringVar(&sf.Cipher, "cipher", "", "block cipher of the fortuna sources (default from config)")
	flags.BoolVar(&sf.System, "system", false, "combine with operating system randomness, output is not reproducible")
	flags.BoolVar(&sf.Bias, "bias", false, "deliberately bias the first hash source")
}

// build returns a single hash source if exactly one is requested, else an xor combination of all requested sources.
func (sf *sourceFlags) build() (rng.Source, error) {
	algName := sf.Algorithm
	if algName == "" {
		algName = cfgHashAlgorithm()
	}
	alg, err := hash.ParseAlgorithm(algName)
	if err != nil {
		return nil, err
	}

	entropies := make([]rng.Entropy, 0, len(sf.Entropy)+len(sf.EntropyHex))
	for _, text := range sf.Entropy {
		entropies = append(entropies, rng.FromText(text))
	}
	for _, encoded := range sf.EntropyHex {
		raw, err := hex.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("invalid --entropy-hex %q: %w", encoded, err)
		}
		entropies = append(entropies, rng.FromBytes(raw))
	}

	var sources []rng.Source
	for i, entropy := range entropies {
		hs, err := rng.NewHashSource(entropy, alg)
		if err != nil {
			return nil, err
		}
		if i == 0 && sf.Bias {
			log.Warning("xerand: first hash source is deliberately biased")
			sources = append(sources, rng.NewBiasedSource(hs))
			continue
		}
		sources = append(sources, hs)
	}

	cipherName := sf.Cipher
	if cipherName == "" {
		cipherName = cfgFortunaCipher()
	}
	for _, text := range sf.Fortuna {
		fs, err := rng.NewFortunaSource(rng.FromText(text), cipherName)
		if err != nil {
			return nil, err
		}
		sources = append(sources, fs)
	}

	if sf.System {
		log.Info("xerand: mixing in system randomness, output is not reproducible")
		sources = append(sources, rng.NewSystemSource())
	}

	switch len(sources) {
	case 0:
		return nil, errNoSources
	case 1:
		return sources[0], nil
	}

	xs, err := rng.NewXorSource(sources...)
	if err != nil {
		return nil, err
	}
	return xs, nil
}
