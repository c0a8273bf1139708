// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "epilist"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// Repository is the GitHub owner/name pair used for release discovery.
	Repository = "epilist-cli/epilist"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// UserAgent is sent with every request to the episode API.
const UserAgent = App + "/" + Version
