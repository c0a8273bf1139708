// Package episode defines the records returned by the episode API.
package episode

import (
	"fmt"
	"time"
)

// Episode is a single listing entry, decoded verbatim from the API.
type Episode struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	AirDate string `json:"air_date"`
	// Code is the season/episode code, e.g. "S01E01".
	Code       string    `json:"episode"`
	Characters []string  `json:"characters"`
	URL        string    `json:"url"`
	Created    time.Time `json:"created"`
}

// Info describes the listing the page belongs to.
type Info struct {
	Count int    `json:"count"`
	Pages int    `json:"pages"`
	Next  string `json:"next"`
	Prev  string `json:"prev"`
}

// Page is one response of the paginated listing.
type Page struct {
	Info    Info       `json:"info"`
	Results []*Episode `json:"results"`
}

func (e *Episode) String() string {
	return e.Name
}

// DetailRoute is the per-episode route, e.g. "episode/28".
func (e *Episode) DetailRoute() string {
	return fmt.Sprintf("episode/%d", e.ID)
}

// Season returns the season number from Code, or 0.
func (e *Episode) Season() int {
	season, _, _ := parseCode(e.Code)
	return season
}

// Number returns the episode number within its season from Code, or 0.
func (e *Episode) Number() int {
	_, number, _ := parseCode(e.Code)
	return number
}
