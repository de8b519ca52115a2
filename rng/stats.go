package rng

import "fmt"

// UniformityCriticalValue is the 0.999 quantile of the chi-squared
// distribution with 255 degrees of freedom.
const UniformityCriticalValue = 330.52

// UniformityReport is the result of a chi-squared test of byte uniformity.
type UniformityReport struct {
	Samples          int
	Histogram        [256]int
	ChiSquared       float64
	DegreesOfFreedom int
	Passed           bool
}

func (r *UniformityReport) String() string {
	verdict := "failed"
	if r.Passed {
		verdict = "passed"
	}
	return fmt.Sprintf(
		"chi-squared=%.2f df=%d critical=%.2f samples=%d: %s",
		r.ChiSquared, r.DegreesOfFreedom, UniformityCriticalValue, r.Samples, verdict,
	)
}

// ByteHistogram counts the values of samples successive 8-bit draws from src.
func ByteHistogram(src Source, samples int) ([256]int, error) {
	var hist [256]int
	if samples < 0 {
		return hist, fmt.Errorf("%w: sample count must not be negative, got %d", ErrInvalidArgument, samples)
	}
	for i := 0; i < samples; i++ {
		v, err := src.Bits(8)
		if err != nil {
			return hist, err
		}
		hist[v.Uint64()]++
	}
	return hist, nil
}

// ChiSquared returns the chi-squared statistic of hist against the uniform distribution.
func ChiSquared(hist [256]int) float64 {
	var total int
	for _, count := range hist {
		total += count
	}
	if total == 0 {
		return 0
	}

	expected := float64(total) / float64(len(hist))
	var stat float64
	for _, count := range hist {
		d := float64(count) - expected
		stat += d * d / expected
	}
	return stat
}

// UniformityCheck draws samples bytes from src and tests them for uniformity.
func UniformityCheck(src Source, samples int) (*UniformityReport, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidArgument, samples)
	}
	hist, err := ByteHistogram(src, samples)
	if err != nil {
		return nil, err
	}

	stat := ChiSquared(hist)
	return &UniformityReport{
		Samples:          samples,
		Histogram:        hist,
		ChiSquared:       stat,
		DegreesOfFreedom: len(hist) - 1,
		Passed:           stat < UniformityCriticalValue,
	}, nil
}
