package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safing/xerand/formats/dsd"
	"github.com/safing/xerand/rng"
)

// Samples is the serialized result of the sample command. Integers are
// decimal strings, as they may be wider than any native type.
type Samples struct {
	Bits   int       `json:"bits,omitempty" cbor:"bits,omitempty" msgpack:"bits,omitempty"`
	Values []string  `json:"values,omitempty" cbor:"values,omitempty" msgpack:"values,omitempty"`
	Floats []float64 `json:"floats,omitempty" cbor:"floats,omitempty" msgpack:"floats,omitempty"`
}

func newSampleCommand() *cobra.Command {
	var (
		sf             sourceFlags
		bits           int
		count          int
		floats         bool
		formatName     string
		withIdentifier bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw values and write them serialized to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("%w: --count must not be negative", rng.ErrInvalidArgument)
			}
			if formatName == "" {
				formatName = cfgSampleFormat()
			}
			format, err := dsd.ParseFormat(formatName)
			if err != nil {
				return err
			}
			src, err := sf.build()
			if err != nil {
				return err
			}

			samples, err := drawSamples(src, bits, count, floats)
			if err != nil {
				return err
			}

			var data []byte
			if withIdentifier {
				data, err = dsd.Dump(samples, format)
			} else {
				data, err = dsd.DumpWithoutIdentifier(samples, format)
			}
			if err != nil {
				return err
			}
			if format == dsd.JSON {
				data = append(data, '\n')
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	sf.register(cmd)
	cmd.Flags().IntVarP(&bits, "bits", "k", 32, "bits per value")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of values to draw")
	cmd.Flags().BoolVar(&floats, "float", false, "draw floats in [0, 1) instead of integers")
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "output format [json|cbor|msgpack] (default from config)")
	cmd.Flags().BoolVar(&withIdentifier, "with-identifier", false, "prefix the output with its format identifier byte")
	return cmd
}

func drawSamples(src rng.Source, bits, count int, floats bool) (*Samples, error) {
	samples := &Samples{}
	if floats {
		samples.Floats = make([]float64, 0, count)
		for i := 0; i < count; i++ {
			f, err := src.Float64()
			if err != nil {
				return nil, err
			}
			samples.Floats = append(samples.Floats, f)
		}
		return samples, nil
	}

	samples.Bits = bits
	samples.Values = make([]string, 0, count)
	for i := 0; i < count; i++ {
		n, err := src.Bits(bits)
		if err != nil {
			return nil, err
		}
		samples.Values = append(samples.Values, n.String())
	}
	return samples, nil
}
