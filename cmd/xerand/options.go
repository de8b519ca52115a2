package main

import (
	"strings"

	"github.com/safing/xerand/config"
	"github.com/safing/xerand/crypto/hash"
	"github.com/safing/xerand/rng"
)

var (
	cfgHashAlgorithm config.StringOption
	cfgFortunaCipher config.StringOption
	cfgSampleFormat  config.StringOption
	cfgCheckSamples  config.IntOption
	cfgLogLevel      config.StringOption
)

func registerOptions() error {
	err := config.Register(&config.Option{
		Name:         "Hash Algorithm",
		Key:          "xerand/hash_algorithm",
		Description:  "Hash algorithm driving the hash chains.",
		OptType:      config.OptTypeString,
		DefaultValue: hash.Default.Name(),
	})
	if err != nil {
		return err
	}
	cfgHashAlgorithm = config.GetAsString("xerand/hash_algorithm", hash.Default.Name())

	err = config.Register(&config.Option{
		Name:            "Fortuna Cipher",
		Key:             "xerand/fortuna_cipher",
		Description:     "Block cipher used by the Fortuna source.",
		OptType:         config.OptTypeString,
		DefaultValue:    "aes",
		ValidationRegex: "^(" + strings.Join(rng.Ciphers, "|") + ")$",
	})
	if err != nil {
		return err
	}
	cfgFortunaCipher = config.GetAsString("xerand/fortuna_cipher", "aes")

	err = config.Register(&config.Option{
		Name:            "Sample Format",
		Key:             "xerand/sample_format",
		Description:     "Serialization format of sampled values.",
		OptType:         config.OptTypeString,
		DefaultValue:    "json",
		ValidationRegex: "^(json|cbor|msgpack)$",
	})
	if err != nil {
		return err
	}
	cfgSampleFormat = config.GetAsString("xerand/sample_format", "json")

	err = config.Register(&config.Option{
		Name:            "Check Samples",
		Key:             "xerand/check_samples",
		Description:     "Number of bytes drawn by the uniformity check.",
		OptType:         config.OptTypeInt,
		DefaultValue:    100000,
		ValidationRegex: "^[1-9][0-9]{2,8}$",
	})
	if err != nil {
		return err
	}
	cfgCheckSamples = config.GetAsInt("xerand/check_samples", 100000)

	err = config.Register(&config.Option{
		Name:            "Log Level",
		Key:             "xerand/log_level",
		Description:     "Log level, unless set with --log.",
		OptType:         config.OptTypeString,
		DefaultValue:    "warning",
		ValidationRegex: "^(trace|debug|info|warning|error|critical)$",
	})
	if err != nil {
		return err
	}
	cfgLogLevel = config.GetAsString("xerand/log_level", "warning")

	return nil
}
