package domain

// Music is a single track. Links holds the playable file URL and
// NumberOfViews counts detail fetches.
type Music struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Links         string `json:"links"`
	NumberOfViews int64  `json:"number_of_views"`
	ArtistName    string `json:"artist"`
}

// LikeAction is the action token accepted by the music like endpoint.
type LikeAction string

const (
	ActionLike   LikeAction = "like"
	ActionUnlike LikeAction = "unlike"
)

// Valid reports whether the action token is one of like/unlike.
func (a LikeAction) Valid() bool {
	return a == ActionLike || a == ActionUnlike
}
