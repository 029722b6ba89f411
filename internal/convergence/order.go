package convergence

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Triple holds one quantity evaluated on the three grids, fine to coarse.
type Triple struct {
	F1, F2, F3 float64
}

// OrderSolution is the outcome of SolveOrder.
type OrderSolution struct {
	// Order is the observed order of convergence p.
	Order float64
	// Iterations is the number of fixed-point steps taken; zero for the
	// closed form.
	Iterations int
	// Oscillatory is set when ε32/ε21 < 0.
	Oscillatory bool
	// ClosedForm is set when r21 == r32 and no iteration was needed.
	ClosedForm bool
}

// SolveOrder computes the observed order of convergence p from three
// solutions and the two refinement ratios.
//
// Algorithm Outline:
//  1. ε21 = f2 − f1, ε32 = f3 − f2, s = sign(ε32/ε21).
//  2. p0 = |ln|ε32/ε21| / ln r21|.
//  3. If r21 == r32 the q term below vanishes and p0 is the answer.
//  4. Otherwise iterate from p0, or from the p -> 0 limit of the relation
//     when p0 == 0 on a monotone sequence,
//     q(p)    = ln((r21^p − s) / (r32^p − s))
//     p̂       = |(ln|ε32/ε21| + q(p)) / ln r21|
//     p_{k+1} = (1 − ω)·p_k + ω·p̂
//     until |p_{k+1} − p_k| <= Tolerance.
//
// Errors:
//   - ErrInvalidInput: a solution value is not finite, ε21 or ε32 is zero,
//     r21 or r32 <= 1, opts is out of range, or p is not positive (for
//     example |ε32| == |ε21| on equal ratios).
//   - ErrDivergentSolution: MaxIterations reached, a step exceeded
//     MaxResidual, or an iterate became NaN/Inf. The error is a
//     *DivergenceError.
func SolveOrder(f Triple, r21, r32 float64, opts *Options) (OrderSolution, error) {
	o := resolve(opts)
	if err := o.validateSolver(); err != nil {
		return OrderSolution{}, err
	}
	if err := checkRatio("r21", r21); err != nil {
		return OrderSolution{}, err
	}
	if err := checkRatio("r32", r32); err != nil {
		return OrderSolution{}, err
	}

	for _, v := range []struct {
		name string
		f    float64
	}{{"f1", f.F1}, {"f2", f.F2}, {"f3", f.F3}} {
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return OrderSolution{}, invalid(v.name, v.f, "solution value must be finite")
		}
	}

	eps21 := f.F2 - f.F1
	eps32 := f.F3 - f.F2
	if eps21 == 0 {
		return OrderSolution{}, invalid("epsilon21", eps21, "f2 equals f1, the ratio of changes is undefined")
	}
	if eps32 == 0 {
		return OrderSolution{}, invalid("epsilon32", eps32, "f3 equals f2, the ratio of changes is undefined")
	}

	ratio := eps32 / eps21
	s := 1.0
	if ratio < 0 {
		s = -1.0
	}
	lnRatio := math.Log(math.Abs(ratio))
	lnR21 := math.Log(r21)

	sol := OrderSolution{
		Order:       math.Abs(lnRatio / lnR21),
		Oscillatory: s < 0,
	}
	if r21 == r32 {
		sol.ClosedForm = true
		if err := checkOrder(sol.Order); err != nil {
			return OrderSolution{}, err
		}
		return sol, nil
	}

	p0 := sol.Order
	if p0 == 0 && s > 0 {
		// q(0) is 0/0; start from its limit ln(ln r21 / ln r32) instead.
		p0 = math.Abs(math.Log(lnR21/math.Log(r32)) / lnR21)
	}
	p, n, err := iterateOrder(p0, lnRatio, r21, r32, s, o)
	if err != nil {
		return OrderSolution{}, err
	}
	if err := checkOrder(p); err != nil {
		return OrderSolution{}, err
	}
	sol.Order = p
	sol.Iterations = n
	return sol, nil
}

// ObservedOrder returns only p; see SolveOrder.
func ObservedOrder(f Triple, r21, r32 float64, opts *Options) (float64, error) {
	sol, err := SolveOrder(f, r21, r32, opts)
	if err != nil {
		return 0, err
	}
	return sol.Order, nil
}

// iterateOrder runs the fixed-point loop from p0. It is valid for any pair of
// ratios, including r21 == r32.
func iterateOrder(p0, lnRatio, r21, r32, s float64, o Options) (float64, int, error) {
	lnR21 := math.Log(r21)
	p := p0
	residual := 0.0
	for k := 1; k <= o.MaxIterations; k++ {
		q := math.Log((math.Pow(r21, p) - s) / (math.Pow(r32, p) - s))
		next := math.Abs((lnRatio + q) / lnR21)
		next = (1-o.Relaxation)*p + o.Relaxation*next
		residual = next - p

		if math.IsNaN(next) || math.IsInf(next, 0) || math.Abs(residual) > o.MaxResidual {
			return 0, k, &DivergenceError{Iterations: k, Order: next, Residual: residual}
		}
		converged := scalar.EqualWithinAbs(next, p, o.Tolerance)
		p = next
		if converged {
			return p, k, nil
		}
	}
	return 0, o.MaxIterations, &DivergenceError{Iterations: o.MaxIterations, Order: p, Residual: residual}
}

func checkRatio(name string, r float64) error {
	if !(r > 1) || math.IsInf(r, 1) {
		return invalid(name, r, "refinement ratio must be greater than 1")
	}
	return nil
}
