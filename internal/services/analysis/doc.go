// Package analysis orchestrates the convergence calculator for the CLI
// operations.
//
// The Service turns domain requests into calls on internal/convergence and
// builds reports from the results. Along the way it:
//   - Flags degenerate (r <= 1) and weak (r < 1.3) refinement ratios.
//   - Flags oscillatory convergence.
//   - Stamps each report with a fingerprint of its inputs.
//
// Every call is synchronous and the Service holds no mutable state.
package analysis
