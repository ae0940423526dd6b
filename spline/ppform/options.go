package ppform

import "math"

type evalConfig struct {
	nu          int
	nus         []int
	extrapolate bool
	fill        float64
}

func defaultEvalConfig() evalConfig {
	return evalConfig{
		extrapolate: true,
		fill:        math.NaN(),
	}
}

// EvalOption configures evaluation and integration.
type EvalOption func(*evalConfig)

// WithNu sets the derivative order used on every axis. Orders at or above
// the polynomial order evaluate to zero.
func WithNu(nu int) EvalOption {
	return func(cfg *evalConfig) {
		cfg.nu = nu
	}
}

// WithNus sets one derivative order per grid axis.
func WithNus(nus ...int) EvalOption {
	return func(cfg *evalConfig) {
		cfg.nus = append([]int(nil), nus...)
	}
}

// WithExtrapolate controls out-of-domain queries: true extends the boundary
// polynomials, false returns the fill value.
func WithExtrapolate(extrapolate bool) EvalOption {
	return func(cfg *evalConfig) {
		cfg.extrapolate = extrapolate
	}
}

// WithFill sets the value returned for out-of-domain queries when
// extrapolation is disabled.
func WithFill(v float64) EvalOption {
	return func(cfg *evalConfig) {
		cfg.fill = v
	}
}

func applyEvalOptions(opts []EvalOption) evalConfig {
	cfg := defaultEvalConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// axisOrders resolves the derivative order of each of n axes.
func (cfg evalConfig) axisOrders(n int) ([]int, error) {
	nus := cfg.nus
	if nus == nil {
		nus = make([]int, n)
		for i := range nus {
			nus[i] = cfg.nu
		}
	}
	if len(nus) != n {
		return nil, errorf(ErrDerivativeOrder, "got %d orders for %d axes", len(nus), n)
	}
	for i, nu := range nus {
		if nu < 0 {
			return nil, errorf(ErrDerivativeOrder, "axis %d: order %d", i, nu)
		}
	}
	return nus, nil
}
