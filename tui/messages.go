package tui

import "github.com/epilist-cli/epilist/episode"

// pageFetchedMsg carries the result of a page fetch issued for page.
type pageFetchedMsg struct {
	page   int
	result *episode.Page
	err    error
}

// searchDueMsg fires once the debounce for search number seq has elapsed.
type searchDueMsg struct {
	seq int
}

// searchDoneMsg carries the matches of search number seq.
type searchDoneMsg struct {
	seq     int
	query   string
	matches []*episode.Episode
	err     error
}

type episodeFetchedMsg struct {
	id      int
	episode *episode.Episode
	err     error
}
