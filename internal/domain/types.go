package domain

// Fingerprint is a short digest of the inputs a report was computed from.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// SolverSettings carries the observed-order solver and GCI settings.
type SolverSettings struct {
	SafetyFactor  float64 `yaml:"safety_factor" json:"safety_factor"`
	Tolerance     float64 `yaml:"tolerance" json:"tolerance"`
	MaxIterations int     `yaml:"max_iterations" json:"max_iterations"`
	Relaxation    float64 `yaml:"relaxation" json:"relaxation"`
	MaxResidual   float64 `yaml:"max_residual" json:"max_residual"`
}

// CheckRequest asks for representative sizes and refinement ratios of three
// grids, fine to coarse, sharing one domain measure.
type CheckRequest struct {
	N1      int     `json:"n1"`
	N2      int     `json:"n2"`
	N3      int     `json:"n3"`
	Measure float64 `json:"measure"`
	Dim     int     `json:"dim"`
}

// CheckReport is the outcome of a CheckRequest.
type CheckReport struct {
	Input       CheckRequest `json:"input"`
	H1          float64      `json:"h1"`
	H2          float64      `json:"h2"`
	H3          float64      `json:"h3"`
	R21         float64      `json:"r21"`
	R32         float64      `json:"r32"`
	Warnings    []string     `json:"warnings,omitempty"`
	Fingerprint Fingerprint  `json:"fingerprint"`
}

// GCIRequest asks for the full GCI procedure on one quantity.
type GCIRequest struct {
	H1     float64        `json:"h1"`
	H2     float64        `json:"h2"`
	H3     float64        `json:"h3"`
	F1     float64        `json:"f1"`
	F2     float64        `json:"f2"`
	F3     float64        `json:"f3"`
	Solver SolverSettings `json:"solver"`
}

// GCIReport is the outcome of a GCIRequest.
type GCIReport struct {
	Input GCIRequest `json:"input"`

	Order       float64 `json:"p"`
	Iterations  int     `json:"iterations"`
	Oscillatory bool    `json:"oscillatory"`
	ClosedForm  bool    `json:"closed_form"`

	R21 float64 `json:"r21"`
	R32 float64 `json:"r32"`

	Extrapolated float64 `json:"f_ext21"`
	// ExtrapolatedError is nil when f_ext21 is zero.
	ExtrapolatedError *float64 `json:"e_ext21,omitempty"`
	RelativeError21   float64  `json:"e21"`
	RelativeError32   float64  `json:"e32"`

	GCI21Fine       float64 `json:"gci21_fine"`
	GCI21Coarse     float64 `json:"gci21_coarse"`
	GCI32Fine       float64 `json:"gci32_fine"`
	GCI32Coarse     float64 `json:"gci32_coarse"`
	AsymptoticRatio float64 `json:"asymptotic_ratio"`

	Warnings    []string    `json:"warnings,omitempty"`
	Fingerprint Fingerprint `json:"fingerprint"`
}

// Study describes one grid sequence and the quantities evaluated on it.
//
// Example file:
//
//	name: backward-facing step
//	grids:
//	  elements: [7250, 4250, 2500]
//	  measure: 0.5
//	  dim: 2
//	safety_factor: 1.25
//	quantities:
//	  - name: reattachment length
//	    values: [6.063, 5.972, 5.863]
type Study struct {
	Name         string     `yaml:"name" json:"name"`
	Grids        StudyGrids `yaml:"grids" json:"grids"`
	SafetyFactor *float64   `yaml:"safety_factor,omitempty" json:"safety_factor,omitempty"`
	Quantities   []Quantity `yaml:"quantities" json:"quantities"`
}

// StudyGrids gives either element counts with a domain measure, or the
// representative sizes directly. Both lists are ordered fine to coarse.
type StudyGrids struct {
	Elements []int     `yaml:"elements,omitempty" json:"elements,omitempty"`
	Measure  float64   `yaml:"measure,omitempty" json:"measure,omitempty"`
	Dim      int       `yaml:"dim,omitempty" json:"dim,omitempty"`
	Sizes    []float64 `yaml:"sizes,omitempty" json:"sizes,omitempty"`
}

// Quantity is one solution functional evaluated on the three grids.
type Quantity struct {
	Name   string    `yaml:"name" json:"name"`
	Values []float64 `yaml:"values" json:"values"`
}

// QuantityReport is the GCI outcome for one named quantity of a study.
type QuantityReport struct {
	Name string `json:"name"`
	GCIReport
}

// StudyReport is the outcome of evaluating a Study.
type StudyReport struct {
	Name        string           `json:"name"`
	H1          float64          `json:"h1"`
	H2          float64          `json:"h2"`
	H3          float64          `json:"h3"`
	R21         float64          `json:"r21"`
	R32         float64          `json:"r32"`
	Quantities  []QuantityReport `json:"quantities"`
	Warnings    []string         `json:"warnings,omitempty"`
	Fingerprint Fingerprint      `json:"fingerprint"`
}
