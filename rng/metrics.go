package rng

import (
	"io"

	vm "github.com/VictoriaMetrics/metrics"
)

var (
	chainAdvances = vm.NewCounter(`xerand_hash_chain_advances_total`)

	hashBitsGenerated    = vm.NewCounter(`xerand_bits_generated_total{source="hash"}`)
	xorBitsGenerated     = vm.NewCounter(`xerand_bits_generated_total{source="xor"}`)
	fortunaBitsGenerated = vm.NewCounter(`xerand_bits_generated_total{source="fortuna"}`)
	systemBitsGenerated  = vm.NewCounter(`xerand_bits_generated_total{source="system"}`)
	biasedBitsGenerated  = vm.NewCounter(`xerand_bits_generated_total{source="biased"}`)
)

// WriteMetrics writes the generator metrics in the Prometheus text format.
func WriteMetrics(w io.Writer) {
	vm.WritePrometheus(w, false)
}
