// Package convergence computes grid-convergence diagnostics for three-grid
// simulation studies following the Celik/Roache procedure.
//
// What it computes:
//
//   - representative grid size h = (A/N)^(1/d)           (RepresentativeSize)
//   - refinement ratios r21 = h2/h1, r32 = h3/h2          (RefinementRatio, Check)
//   - observed order of convergence p (implicit solve)    (SolveOrder, ObservedOrder)
//   - Richardson extrapolation f_ext21                    (Extrapolate)
//   - GCI for both grid pairs, fine and coarse variants   (GCIFine, GCICoarse)
//   - asymptotic-range diagnostic                         (AsymptoticRatio)
//
// Compute and Analyze chain all of the above for one quantity.
//
// Grid ordering:
//
//	grid 1 = finest (largest N, smallest h)
//	grid 2 = medium
//	grid 3 = coarsest
//
// Every function is pure and stateless; results are fresh values and the
// package holds no global state, so callers may evaluate many quantities in
// parallel without coordination.
//
// Errors are returned, never clamped: ErrInvalidInput (as *InputError, which
// names the offending quantity) and ErrDivergentSolution (as
// *DivergenceError). Use errors.Is / errors.As to tell them apart.
//
// References:
//
//	I. B. Celik et al., "Procedure for Estimation and Reporting of
//	Uncertainty Due to Discretization in CFD Applications", J. Fluids Eng.
//	130(7), 078001, 2008.
//
//	P. J. Roache, "Quantification of Uncertainty in Computational Fluid
//	Dynamics", Annu. Rev. Fluid Mech. 29, 123–160, 1997.
package convergence
