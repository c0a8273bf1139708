package tui

type state int

const (
	listState state = iota
	searchState
	detailState
	favoritesState
)
