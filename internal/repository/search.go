package repository

import "strings"

// likeEscaper quotes the characters LIKE treats as pattern syntax, so a
// user query only matches rows containing it as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(query string) string {
	return likeEscaper.Replace(query)
}
