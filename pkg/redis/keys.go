package redis

import "fmt"

// Key naming conventions for Redis keys.
// All keys follow the pattern: {namespace}:{entity}:{field}

const (
	// KeyNamespace prefixes all keys written by this service.
	KeyNamespace = "js"
)

// TopPlaylistsKey returns the cache key for the ranked playlist listing.
func TopPlaylistsKey() string {
	return fmt.Sprintf("%s:playlists:top", KeyNamespace)
}

// TopAlbumsKey returns the cache key for the ranked album listing.
func TopAlbumsKey() string {
	return fmt.Sprintf("%s:albums:top", KeyNamespace)
}
