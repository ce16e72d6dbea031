package domain

import "errors"

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid username or password")

	ErrMusicNotFound = errors.New("music not found")

	ErrPlaylistNotFound           = errors.New("playlist not found")
	ErrInvalidPlaylistName        = errors.New("invalid playlist name")
	ErrPlaylistNameTooLong        = errors.New("playlist name too long")
	ErrPlaylistDescriptionTooLong = errors.New("playlist description too long")

	ErrAlbumNotFound = errors.New("album not found")
	ErrGenreNotFound = errors.New("genre not found")

	ErrInvalidAction = errors.New("invalid action")

	ErrNotOwner = errors.New("caller does not own this playlist")
)
