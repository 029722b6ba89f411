package convergence

import (
	"errors"
	"fmt"
	"math"
)

// Result bundles everything derived from one grid sequence and one quantity.
type Result struct {
	OrderSolution

	R21, R32 float64

	// Extrapolated is f_ext21, the Richardson estimate of the zero-spacing value.
	Extrapolated float64

	// RelativeError21 and RelativeError32 are e21 = |(f1−f2)/f1| and
	// e32 = |(f2−f3)/f2|.
	RelativeError21 float64
	RelativeError32 float64

	GCI21Fine   float64
	GCI21Coarse float64
	GCI32Fine   float64
	GCI32Coarse float64

	// AsymptoticRatio is GCI32_fine / (r21^p · GCI21_fine); values near 1
	// place the sequence in the asymptotic range.
	AsymptoticRatio float64

	SafetyFactor float64
}

// Extrapolate returns the generalized Richardson estimate
//
//	f_ext21 = (r21^p·f1 − f2) / (r21^p − 1)
//
// Errors:
//   - ErrInvalidInput if r21 <= 1 or p <= 0 (the denominator vanishes).
func Extrapolate(f1, f2, r21, p float64) (float64, error) {
	if err := checkRatio("r21", r21); err != nil {
		return 0, err
	}
	if err := checkOrder(p); err != nil {
		return 0, err
	}
	if f1 == f2 {
		return f1, nil
	}

	rp := math.Pow(r21, p)
	return (rp*f1 - f2) / (rp - 1), nil
}

// ExtrapolatedRelativeError returns e_ext21 = |(f_ext − f1) / f_ext|.
func ExtrapolatedRelativeError(f1, fExt float64) (float64, error) {
	if fExt == 0 {
		return 0, invalid("f_ext21", fExt, "relative error undefined for a zero extrapolated value")
	}
	return math.Abs((fExt - f1) / fExt), nil
}

// RelativeError returns |(ref − other) / ref|.
func RelativeError(ref, other float64) (float64, error) {
	if ref == 0 {
		return 0, invalid("reference", ref, "relative error undefined for a zero reference value")
	}
	return math.Abs((ref - other) / ref), nil
}

// GCIFine returns Fs·e / (r^p − 1), the fine-grid error band of a grid pair
// with relative error e.
func GCIFine(e, r, p, fs float64) (float64, error) {
	if err := checkSafetyFactor(fs); err != nil {
		return 0, err
	}
	if err := checkRatio("r", r); err != nil {
		return 0, err
	}
	if err := checkOrder(p); err != nil {
		return 0, err
	}
	return fs * e / (math.Pow(r, p) - 1), nil
}

// GCICoarse scales a fine-grid GCI to the coarser grid of the pair.
func GCICoarse(gciFine, r, p float64) float64 {
	return gciFine * math.Pow(r, p)
}

// AsymptoticRatio returns GCI32_fine / (r21^p · GCI21_fine).
func AsymptoticRatio(gci21Fine, gci32Fine, r21, p float64) (float64, error) {
	den := math.Pow(r21, p) * gci21Fine
	if den == 0 {
		return 0, invalid("gci21_fine", gci21Fine, "asymptotic ratio undefined for a zero fine-grid GCI")
	}
	return gci32Fine / den, nil
}

// Compute runs the full procedure for one quantity on a sequence with
// refinement ratios r21 and r32. A nil opts means DefaultOptions().
//
// Steps:
//  1. p from SolveOrder.
//  2. e21, e32 relative errors (f1 and f2 must be non-zero).
//  3. GCI21_fine, GCI32_fine with safety factor Fs.
//  4. Coarse variants scaled by r^p.
//  5. Asymptotic ratio and the extrapolated value f_ext21.
//
// Errors propagate from SolveOrder; ErrInvalidInput for Fs <= 0, f1 == 0,
// f2 == 0 or p == 0.
func Compute(f Triple, r21, r32 float64, opts *Options) (Result, error) {
	o := resolve(opts)
	if err := checkSafetyFactor(o.SafetyFactor); err != nil {
		return Result{}, err
	}

	sol, err := SolveOrder(f, r21, r32, &o)
	if err != nil {
		return Result{}, err
	}
	p := sol.Order

	e21, err := RelativeError(f.F1, f.F2)
	if err != nil {
		return Result{}, renamed(err, "f1")
	}
	e32, err := RelativeError(f.F2, f.F3)
	if err != nil {
		return Result{}, renamed(err, "f2")
	}

	gci21, err := GCIFine(e21, r21, p, o.SafetyFactor)
	if err != nil {
		return Result{}, err
	}
	gci32, err := GCIFine(e32, r32, p, o.SafetyFactor)
	if err != nil {
		return Result{}, err
	}
	ratio, err := AsymptoticRatio(gci21, gci32, r21, p)
	if err != nil {
		return Result{}, err
	}
	ext, err := Extrapolate(f.F1, f.F2, r21, p)
	if err != nil {
		return Result{}, err
	}

	return Result{
		OrderSolution:   sol,
		R21:             r21,
		R32:             r32,
		Extrapolated:    ext,
		RelativeError21: e21,
		RelativeError32: e32,
		GCI21Fine:       gci21,
		GCI21Coarse:     GCICoarse(gci21, r21, p),
		GCI32Fine:       gci32,
		GCI32Coarse:     GCICoarse(gci32, r32, p),
		AsymptoticRatio: ratio,
		SafetyFactor:    o.SafetyFactor,
	}, nil
}

// Analyze derives r21 and r32 from three representative sizes and calls
// Compute.
func Analyze(s Sizes, f Triple, opts *Options) (Result, error) {
	r21, r32, err := s.Ratios()
	if err != nil {
		return Result{}, err
	}
	res, err := Compute(f, r21, r32, opts)
	if err != nil {
		return Result{}, fmt.Errorf("h = (%g, %g, %g): %w", s.H1, s.H2, s.H3, err)
	}
	return res, nil
}

func checkOrder(p float64) error {
	if !positiveFinite(p) {
		return invalid("p", p, "observed order must be positive and finite")
	}
	return nil
}

// renamed reports an InputError under the caller's name for the quantity.
func renamed(err error, name string) error {
	var ie *InputError
	if errors.As(err, &ie) {
		return &InputError{Name: name, Value: ie.Value, Reason: ie.Reason}
	}
	return err
}
