// Package stats provides statistical diagnostics over generated byte
// streams. The generator's contract is statistical uniformity, not
// cryptographic strength; this adapter makes that property checkable.
package stats

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"fountains/ports"
)

// MinSamples is the smallest sample size the chi-squared test accepts:
// at least five expected observations per byte value.
const MinSamples = 5 * 256

// defaultAlpha is the significance level for rejecting uniformity.
const defaultAlpha = 0.001

// Analyzer implements the UniformityAnalyzer port
type Analyzer struct {
	alpha float64
}

// NewAnalyzer creates an analyzer with the default significance level
func NewAnalyzer() *Analyzer {
	return &Analyzer{alpha: defaultAlpha}
}

// NewAnalyzerWithAlpha creates an analyzer with a custom significance level
func NewAnalyzerWithAlpha(alpha float64) *Analyzer {
	return &Analyzer{alpha: alpha}
}

var _ ports.UniformityAnalyzer = (*Analyzer)(nil)

// Analyze runs a chi-squared goodness-of-fit test of the sample against the
// uniform distribution over [0,255], with summary statistics alongside.
func (a *Analyzer) Analyze(samples []byte) (ports.UniformityReport, error) {
	if len(samples) < MinSamples {
		return ports.UniformityReport{}, fmt.Errorf("need at least %d samples, got %d", MinSamples, len(samples))
	}

	values := make([]float64, len(samples))
	var counts [256]float64
	for i, b := range samples {
		values[i] = float64(b)
		counts[b]++
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return ports.UniformityReport{}, err
	}
	stdDev, err := stats.StandardDeviation(values)
	if err != nil {
		return ports.UniformityReport{}, err
	}

	expected := float64(len(samples)) / 256.0
	chiSquare := 0.0
	for _, observed := range counts {
		diff := observed - expected
		chiSquare += diff * diff / expected
	}

	chiDist := distuv.ChiSquared{K: 255}
	pValue := chiDist.Survival(chiSquare)

	return ports.UniformityReport{
		Samples:   len(samples),
		Mean:      mean,
		StdDev:    stdDev,
		ChiSquare: chiSquare,
		PValue:    pValue,
		Uniform:   pValue >= a.alpha,
	}, nil
}
