// Package store provides file input and output for gcat.
//
// It contains concrete implementations of the domain storage interfaces:
//   - Study definitions, YAML or JSON (StudyFileStore)
//   - Rendered reports (ReportFileStore)
//
// Writes go through a temp file and a rename so an interrupted run never
// leaves a truncated file behind. ReadYAML is shared with the config loader.
package store
