// Package logging builds the zap logger shared by the CLI and services.
package logging
