// Package app wires application dependencies for the CLI.
//
// Config is resolved from defaults, an optional YAML file and GCAT_*
// environment variables; NewWire then builds the stores and the analysis
// service from it, exposing them via the Wire struct for commands to use.
package app
