package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fountains/domain/fountain"
)

func TestAnalyzeGeneratorOutput(t *testing.T) {
	// A deterministic sample, so the verdict never flaps: the hasher either
	// passes uniformity for this fixed sample or the construction changed.
	var samples []byte
	for index := uint64(0); index < 400; index++ {
		samples = append(samples, fountain.HashInput(fountain.DefaultSeed(), index, 64)...)
	}

	report, err := NewAnalyzer().Analyze(samples)
	require.NoError(t, err)

	assert.True(t, report.Uniform, "generator output rejected as non-uniform (chi2=%.1f p=%g)", report.ChiSquare, report.PValue)
	assert.Equal(t, 25600, report.Samples)
	assert.InDelta(t, 127.5, report.Mean, 2.0)
	assert.InDelta(t, 73.9, report.StdDev, 2.0)
}

func TestAnalyzeRejectsConstantStream(t *testing.T) {
	samples := make([]byte, MinSamples)
	for i := range samples {
		samples[i] = 0x42
	}

	report, err := NewAnalyzer().Analyze(samples)
	require.NoError(t, err)
	assert.False(t, report.Uniform)
	assert.Less(t, report.PValue, 1e-9)
}

func TestAnalyzeTooFewSamples(t *testing.T) {
	_, err := NewAnalyzer().Analyze(make([]byte, MinSamples-1))
	assert.Error(t, err)
}
