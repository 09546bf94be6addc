// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Nakano is the canonical application identifier used for filesystem paths and CLI branding.
	Nakano = "nakano"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
