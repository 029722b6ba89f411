package convergence

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a quantity outside the domain of a formula:
	// non-positive sizes, counts, measures or safety factors, an unsupported
	// dimensionality, a refinement ratio <= 1 where refinement is required,
	// or a zero denominator.
	ErrInvalidInput = errors.New("convergence: invalid input")

	// ErrDivergentSolution indicates the observed-order iteration did not
	// settle within its iteration cap or residual ceiling.
	ErrDivergentSolution = errors.New("convergence: observed order did not converge")
)

// InputError names the quantity that was rejected. It unwraps to
// ErrInvalidInput.
type InputError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s = %g: %s", ErrInvalidInput, e.Name, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// DivergenceError records where the observed-order iteration stopped. It
// unwraps to ErrDivergentSolution.
type DivergenceError struct {
	Iterations int
	Order      float64
	Residual   float64
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("%s after %d iterations (p = %g, residual = %g)",
		ErrDivergentSolution, e.Iterations, e.Order, e.Residual)
}

func (e *DivergenceError) Unwrap() error { return ErrDivergentSolution }

func invalid(name string, value float64, reason string) error {
	return &InputError{Name: name, Value: value, Reason: reason}
}
