package domain

// Album is a named collection of musics with a derived ranking value.
type Album struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	NetValue    int64  `json:"net_value"`
}

// Genre groups musics under a unique genre name.
type Genre struct {
	ID          int64  `json:"id"`
	GenreName   string `json:"genre_name"`
	Description string `json:"description"`
}

// Performer is an artist credited on musics.
type Performer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Chart is an editorial listing with a name and description.
type Chart struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
