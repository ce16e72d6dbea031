package domain

// MinSearchQueryLength is the minimum accepted length for a free-text
// search query.
const MinSearchQueryLength = 2

// SearchResult is the aggregated envelope returned by the search endpoint:
// six independent result lists plus the original query echoed back.
type SearchResult struct {
	MusicResults     []*Music     `json:"music_results"`
	AlbumResults     []*Album     `json:"album_results"`
	PlaylistResults  []*Playlist  `json:"playlist_results"`
	UserResults      []*Profile   `json:"user_results"`
	ChartResults     []*Chart     `json:"chart_results"`
	PerformerResults []*Performer `json:"performer_results"`
	Query            string       `json:"query"`
}
