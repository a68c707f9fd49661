package ports

// UniformityReport summarizes how closely a byte sample tracks the uniform
// distribution over [0,255].
type UniformityReport struct {
	Samples   int     `json:"samples"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
	ChiSquare float64 `json:"chi_square"`
	PValue    float64 `json:"p_value"`
	// Uniform is true when the chi-squared goodness-of-fit test does not
	// reject uniformity at the analyzer's significance level.
	Uniform bool `json:"uniform"`
}

// UniformityAnalyzer checks generated bytes for statistical uniformity.
type UniformityAnalyzer interface {
	Analyze(samples []byte) (UniformityReport, error)
}
