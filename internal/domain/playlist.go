package domain

import "time"

// Playlist is a user-owned set of musics with followers.
type Playlist struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	CreatorID       int64     `json:"creator_id"`
	CreatorUsername string    `json:"creator"`
	NetValue        int64     `json:"net_value"`
	CreatedAt       time.Time `json:"created_at"`
}

// Validate checks playlist fields before creation.
func (p *Playlist) Validate() error {
	if p.Name == "" {
		return ErrInvalidPlaylistName
	}
	if len(p.Name) > 100 {
		return ErrPlaylistNameTooLong
	}
	if len(p.Description) > 500 {
		return ErrPlaylistDescriptionTooLong
	}
	return nil
}

// OwnedBy reports whether the playlist belongs to the given username.
// Ownership is compared by username equality.
func (p *Playlist) OwnedBy(username string) bool {
	return p.CreatorUsername == username
}

// FollowAction is the action token accepted by the playlist follow endpoint.
type FollowAction string

const (
	ActionFollow   FollowAction = "follow"
	ActionUnfollow FollowAction = "unfollow"
)

// Valid reports whether the action token is one of follow/unfollow.
func (a FollowAction) Valid() bool {
	return a == ActionFollow || a == ActionUnfollow
}
