// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Episode API - these keys locate and authenticate the remote episode listing.
const (
	APIURL      = "api.url"
	APITimeout  = "api.timeout"
	APIUseToken = "api.use_token"
)

// Page Cache - these keys control the optional on-disk cache of raw page responses.
const (
	CachePages    = "cache.pages"
	CacheLifetime = "cache.lifetime"
)

// Search Interaction - these keys define the UI/UX parameters for episode search.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchDebounceMs           = "search.debounce_ms"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive list's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
