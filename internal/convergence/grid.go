package convergence

import (
	"fmt"
	"math"
)

// Dimensionality is the number of spatial dimensions of a mesh.
type Dimensionality uint8

const (
	Dim1 Dimensionality = 1 // domain measure is a length
	Dim2 Dimensionality = 2 // domain measure is an area
	Dim3 Dimensionality = 3 // domain measure is a volume
)

// DefaultDimensionality is used by Check when no dimensionality is given.
const DefaultDimensionality = Dim2

// Valid reports whether d is 1, 2 or 3.
func (d Dimensionality) Valid() bool { return d >= Dim1 && d <= Dim3 }

// MeasureName returns the name of the domain measure for d.
func (d Dimensionality) MeasureName() string {
	switch d {
	case Dim1:
		return "length"
	case Dim2:
		return "area"
	case Dim3:
		return "volume"
	default:
		return fmt.Sprintf("measure(%dD)", uint8(d))
	}
}

// RepresentativeSize converts an element count and a domain measure into a
// characteristic length:
//
//	h = (A / N)^(1/d)
//
// Errors:
//   - ErrInvalidInput if n <= 0, measure <= 0 (or not finite), or d is not
//     1, 2 or 3.
func RepresentativeSize(n int, measure float64, d Dimensionality) (float64, error) {
	if n <= 0 {
		return 0, invalid("elements", float64(n), "element count must be positive")
	}
	if !(measure > 0) || math.IsInf(measure, 0) {
		return 0, invalid(d.MeasureName(), measure, "domain measure must be positive and finite")
	}
	if !d.Valid() {
		return 0, invalid("dimensionality", float64(d), "must be 1, 2 or 3")
	}

	return math.Pow(measure/float64(n), 1/float64(d)), nil
}

// RefinementRatio returns hCoarse / hFine as computed. The grid order given by
// the caller is trusted: a result <= 1 is returned unchanged and signals a
// degenerate sequence.
//
// Errors:
//   - ErrInvalidInput if either size is non-positive or not finite.
func RefinementRatio(hCoarse, hFine float64) (float64, error) {
	if err := checkSize("h_coarse", hCoarse); err != nil {
		return 0, err
	}
	if err := checkSize("h_fine", hFine); err != nil {
		return 0, err
	}

	return hCoarse / hFine, nil
}

func checkSize(name string, h float64) error {
	if !(h > 0) || math.IsInf(h, 0) {
		return invalid(name, h, "representative size must be positive and finite")
	}
	return nil
}

// Sizes holds the representative sizes of a three-grid sequence, fine to
// coarse.
type Sizes struct {
	H1, H2, H3 float64
}

// Ratios returns r21 = h2/h1 and r32 = h3/h2.
func (s Sizes) Ratios() (r21, r32 float64, err error) {
	if r21, err = RefinementRatio(s.H2, s.H1); err != nil {
		return 0, 0, fmt.Errorf("r21: %w", err)
	}
	if r32, err = RefinementRatio(s.H3, s.H2); err != nil {
		return 0, 0, fmt.Errorf("r32: %w", err)
	}
	return r21, r32, nil
}

// Counts holds the element counts of a three-grid sequence, fine to coarse.
type Counts struct {
	N1, N2, N3 int
}

// CheckResult is the outcome of Check.
type CheckResult struct {
	Sizes
	Dim      Dimensionality
	R21, R32 float64
}

// Check derives representative sizes and refinement ratios for three grids
// sharing one domain measure. A zero d selects DefaultDimensionality.
func Check(n Counts, measure float64, d Dimensionality) (CheckResult, error) {
	if d == 0 {
		d = DefaultDimensionality
	}

	var s Sizes
	var err error
	if s.H1, err = RepresentativeSize(n.N1, measure, d); err != nil {
		return CheckResult{}, fmt.Errorf("grid 1: %w", err)
	}
	if s.H2, err = RepresentativeSize(n.N2, measure, d); err != nil {
		return CheckResult{}, fmt.Errorf("grid 2: %w", err)
	}
	if s.H3, err = RepresentativeSize(n.N3, measure, d); err != nil {
		return CheckResult{}, fmt.Errorf("grid 3: %w", err)
	}

	r21, r32, err := s.Ratios()
	if err != nil {
		return CheckResult{}, err
	}
	return CheckResult{Sizes: s, Dim: d, R21: r21, R32: r32}, nil
}
