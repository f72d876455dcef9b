package polynomial

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/polyfn/utils/bignum"
)

var (
	// ErrNoSamples is returned by Accuracy when no finite sample is available.
	ErrNoSamples = errors.New("no finite sample")
	// ErrNonFiniteCoefficient is returned by Accuracy for NaN or infinite coefficients.
	ErrNonFiniteCoefficient = errors.New("non-finite coefficient")
)

// Report summarizes the absolute error of float64 evaluation against an
// arbitrary precision power sum over a set of samples.
type Report struct {
	Method  Method
	Prec    uint
	Samples int
	Skipped int
	Max     float64
	Mean    float64
	Median  float64
	StdDev  float64
}

func (r Report) String() string {
	return fmt.Sprintf("%v (prec=%d, samples=%d, skipped=%d): max=%e mean=%e median=%e stddev=%e",
		r.Method, r.Prec, r.Samples, r.Skipped, r.Max, r.Mean, r.Median, r.StdDev)
}

// Accuracy evaluates c at each x of xs with the given method and compares the
// result with the power sum computed with prec bits of precision.
// Non-finite samples, and samples at which either evaluation overflows
// float64, are skipped and counted in Report.Skipped.
func Accuracy(c []float64, xs []float64, method Method, prec uint) (r Report, err error) {

	r.Method = method
	r.Prec = prec

	for i, ci := range c {
		if !isFinite(ci) {
			return r, fmt.Errorf("cannot Accuracy: coefficient %d: %w", i, ErrNonFiniteCoefficient)
		}
	}

	poly := bignum.NewFloats(c, prec)

	errs := make([]float64, 0, len(xs))
	for _, x := range xs {

		if !isFinite(x) {
			r.Skipped++
			continue
		}

		// the value at x must be representable in float64 by both evaluations
		want, _ := bignum.PowerSumEval(bignum.NewFloat(x, prec), poly).Float64()
		have := Evaluate(c, x, method)
		if !isFinite(want) || !isFinite(have) {
			r.Skipped++
			continue
		}

		errs = append(errs, math.Abs(have-want))
	}

	if r.Samples = len(errs); r.Samples == 0 {
		return r, fmt.Errorf("cannot Accuracy: %w", ErrNoSamples)
	}

	if r.Max, err = stats.Max(errs); err != nil {
		return r, fmt.Errorf("cannot Accuracy: %w", err)
	}

	if r.Mean, err = stats.Mean(errs); err != nil {
		return r, fmt.Errorf("cannot Accuracy: %w", err)
	}

	if r.Median, err = stats.Median(errs); err != nil {
		return r, fmt.Errorf("cannot Accuracy: %w", err)
	}

	if r.StdDev, err = stats.StandardDeviation(errs); err != nil {
		return r, fmt.Errorf("cannot Accuracy: %w", err)
	}

	return r, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
