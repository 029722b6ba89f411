package convergence

import "math"

// Default solver and GCI settings.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
	DefaultRelaxation    = 1.0
	DefaultMaxResidual   = 1e6

	// DefaultSafetyFactor is the recommended factor for studies with three or
	// more grids.
	DefaultSafetyFactor = 1.25

	// TwoGridSafetyFactor is the conservative factor used for two-grid
	// comparisons.
	TwoGridSafetyFactor = 3.0
)

// Options configures the observed-order solver and the GCI computation.
//
// Fields:
//   - Tolerance: stop once |p_{k+1} − p_k| is at most this value.
//   - MaxIterations: iteration cap; reaching it is ErrDivergentSolution.
//   - Relaxation: ω in (0, 1]; each step moves p by ω of the way to the
//     fixed-point update. 1 is the plain fixed-point iteration.
//   - MaxResidual: a step larger than this aborts with ErrDivergentSolution.
//   - SafetyFactor: Fs used by the GCI estimates.
//
// A nil *Options anywhere in this package means DefaultOptions().
type Options struct {
	Tolerance     float64
	MaxIterations int
	Relaxation    float64
	MaxResidual   float64
	SafetyFactor  float64
}

// DefaultOptions returns the settings of the published procedure.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Relaxation:    DefaultRelaxation,
		MaxResidual:   DefaultMaxResidual,
		SafetyFactor:  DefaultSafetyFactor,
	}
}

func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	return *opts
}

// Validate reports the first out-of-range setting as an *InputError.
func (o Options) Validate() error {
	if err := o.validateSolver(); err != nil {
		return err
	}
	return checkSafetyFactor(o.SafetyFactor)
}

// validateSolver checks the iteration settings. The safety factor is checked
// separately since only the GCI functions use it.
func (o Options) validateSolver() error {
	if !positiveFinite(o.Tolerance) {
		return invalid("tolerance", o.Tolerance, "must be positive and finite")
	}
	if o.MaxIterations <= 0 {
		return invalid("max_iterations", float64(o.MaxIterations), "must be positive")
	}
	if !(o.Relaxation > 0 && o.Relaxation <= 1) {
		return invalid("relaxation", o.Relaxation, "must lie in (0, 1]")
	}
	if !(o.MaxResidual > 0) {
		return invalid("max_residual", o.MaxResidual, "must be positive")
	}
	return nil
}

func checkSafetyFactor(fs float64) error {
	if !positiveFinite(fs) {
		return invalid("safety_factor", fs, "must be positive and finite")
	}
	return nil
}

func positiveFinite(x float64) bool { return x > 0 && !math.IsInf(x, 1) }
