// Package format renders gcat reports as terminal tables, Markdown tables or
// JSON. Tables go through TableBuilder so callers never touch go-pretty
// directly.
package format
