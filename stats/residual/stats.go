// Package residual computes goodness-of-fit statistics for the residuals
// samples - fitted of a smoothing spline.
package residual

import (
	"errors"
	"fmt"
	"math"
)

// ErrLength is returned when samples, fitted values and weights differ in
// length.
var ErrLength = errors.New("residual: length mismatch")

// Stats holds residual statistics.
//
//nolint:revive
type Stats struct {
	Length      int
	Mean        float64
	RMS         float64
	RMS_dB      float64
	MaxAbs      float64
	MaxAbsPos   int
	SSE         float64 // sum of squared residuals
	WeightedSSE float64 // Σ w·r²
	Variance    float64
	SignChanges int // residual sign changes; few changes hint at underfitting
}

func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

func emptyStats() Stats {
	return Stats{RMS_dB: math.Inf(-1)}
}

// Calculate computes the statistics of samples - fitted in a single pass.
// weights may be nil for unit weights.
func Calculate(samples, fitted, weights []float64) (Stats, error) {
	acc := NewAccumulator()
	if err := acc.Update(samples, fitted, weights); err != nil {
		return emptyStats(), err
	}

	return acc.Result(), nil
}

// RMS returns the root-mean-square residual.
func RMS(samples, fitted []float64) (float64, error) {
	if len(samples) != len(fitted) {
		return 0, fmt.Errorf("%w: %d samples, %d fitted", ErrLength, len(samples), len(fitted))
	}
	if len(samples) == 0 {
		return 0, nil
	}

	var sumSq float64
	for i, y := range samples {
		r := y - fitted[i]
		sumSq += r * r
	}

	return math.Sqrt(sumSq / float64(len(samples))), nil
}

// Accumulator collects residual statistics over several blocks, for example
// one channel after another. It produces the same result as [Calculate] on
// the concatenated input.
type Accumulator struct {
	n           int
	mean        float64
	m2          float64
	sumSq       float64
	weightedSSE float64
	maxAbs      float64
	maxAbsPos   int
	signChanges int
	last        float64
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Update adds a block of samples and fitted values. weights may be nil.
func (a *Accumulator) Update(samples, fitted, weights []float64) error {
	if len(samples) != len(fitted) {
		return fmt.Errorf("%w: %d samples, %d fitted", ErrLength, len(samples), len(fitted))
	}
	if weights != nil && len(weights) != len(samples) {
		return fmt.Errorf("%w: %d samples, %d weights", ErrLength, len(samples), len(weights))
	}

	for i, y := range samples {
		r := y - fitted[i]
		a.n++

		// Welford update.
		delta := r - a.mean
		a.mean += delta / float64(a.n)
		a.m2 += delta * (r - a.mean)

		a.sumSq += r * r
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		a.weightedSSE += w * r * r

		if abs := math.Abs(r); a.n == 1 || abs > a.maxAbs {
			a.maxAbs = abs
			a.maxAbsPos = a.n - 1
		}

		if a.n > 1 && a.last*r < 0 {
			a.signChanges++
		}
		a.last = r
	}

	return nil
}

// Result returns the statistics of everything added so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return emptyStats()
	}

	nf := float64(a.n)
	rms := math.Sqrt(a.sumSq / nf)

	return Stats{
		Length:      a.n,
		Mean:        a.mean,
		RMS:         rms,
		RMS_dB:      ampTodB(rms),
		MaxAbs:      a.maxAbs,
		MaxAbsPos:   a.maxAbsPos,
		SSE:         a.sumSq,
		WeightedSSE: a.weightedSSE,
		Variance:    a.m2 / nf,
		SignChanges: a.signChanges,
	}
}

// Reset clears the accumulator for reuse.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
