package csaps

import "errors"

var (
	// ErrShape indicates sites or samples of unusable shape: fewer than two
	// sites, a sample axis that does not match the sites, or an axis out of
	// range.
	ErrShape = errors.New("csaps: invalid data shape")
	// ErrWeights indicates weights of the wrong length or with non-positive
	// or non-finite values.
	ErrWeights = errors.New("csaps: invalid weights")
	// ErrNotIncreasing indicates sites that are not strictly increasing.
	ErrNotIncreasing = errors.New("csaps: sites must be strictly increasing")
	// ErrSmooth indicates a smoothing parameter outside [0, 1] or a wrong
	// number of per-axis parameters.
	ErrSmooth = errors.New("csaps: smoothing parameter must be in [0, 1]")
	// ErrSingularSystem indicates that the smoothing system could not be
	// factored.
	ErrSingularSystem = errors.New("csaps: singular smoothing system")
)
