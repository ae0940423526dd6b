package csaps

import "math"

type config struct {
	weights   []float64
	smooth    float64
	axis      int
	parameter []float64
}

func defaultConfig() config {
	return config{
		smooth: math.NaN(),
		axis:   -1,
	}
}

// Option configures [Fit], [FitSlice], [FitCurve] and [SmoothData].
type Option func(*config)

// WithWeights sets one positive weight per site. The default is unit
// weights.
func WithWeights(w []float64) Option {
	return func(cfg *config) {
		cfg.weights = w
	}
}

// WithSmooth fixes the smoothing parameter p in [0, 1]. NaN selects p
// automatically, which is also the default.
func WithSmooth(p float64) Option {
	return func(cfg *config) {
		cfg.smooth = p
	}
}

// WithAxis selects the sample axis that runs along the sites. Negative
// values count from the last axis; the default is -1.
func WithAxis(axis int) Option {
	return func(cfg *config) {
		cfg.axis = axis
	}
}

// WithParameter sets the curve parameter values used by [FitCurve] instead
// of the cumulative chord length. Other fitters ignore it.
func WithParameter(t []float64) Option {
	return func(cfg *config) {
		cfg.parameter = t
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

type gridConfig struct {
	weights [][]float64
	smooth  []float64
}

// GridOption configures [FitGrid].
type GridOption func(*gridConfig)

// WithGridWeights sets per-axis weights. A nil entry keeps unit weights for
// that axis.
func WithGridWeights(w ...[]float64) GridOption {
	return func(cfg *gridConfig) {
		cfg.weights = w
	}
}

// WithGridSmooth sets per-axis smoothing parameters. NaN entries are chosen
// automatically from that axis alone. A single value applies to every axis.
func WithGridSmooth(p ...float64) GridOption {
	return func(cfg *gridConfig) {
		cfg.smooth = p
	}
}

func applyGridOptions(opts []GridOption) gridConfig {
	var cfg gridConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
