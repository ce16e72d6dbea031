package handler

// emptyAsList keeps an empty listing serializing as [] rather than null,
// matching the search envelope.
func emptyAsList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
