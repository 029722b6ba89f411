// Package commands defines the gcat CLI and wires dependencies for subcommands.
//
// Commands
//
//   - check    Representative sizes and refinement ratios from element counts
//   - gci      Observed order, extrapolated value and GCI for one quantity
//   - study    Every quantity of a study file against one grid sequence
//
// # Implementation
//
// The root command resolves configuration (defaults, --config file, GCAT_*
// environment, then flags), builds the logger and the dependency graph before
// any subcommand runs. Reports render as a table, a Markdown table or JSON
// and go to stdout, or atomically to --output.
package commands
