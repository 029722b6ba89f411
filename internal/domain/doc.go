// Package domain defines the request, report and study models shared across
// gcat, plus the service and store contracts the CLI is wired against.
// It contains plain types and interfaces only.
package domain
