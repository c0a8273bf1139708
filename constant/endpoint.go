package constant

// DefaultEpisodesURL is the paginated episode listing used when api.url is not configured.
const DefaultEpisodesURL = "https://rickandmortyapi.com/api/episode"

// SearchPages is the number of leading pages a search scans.
const SearchPages = 2
