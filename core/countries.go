package core

import "strings"

// DefaultSuggestionLimit caps autocomplete suggestions.
const DefaultSuggestionLimit = 100

// FilterCountries returns up to limit entries of list containing query, case-insensitively,
// in list order. An empty query yields no suggestions; limit <= 0 means DefaultSuggestionLimit.
func FilterCountries(list []string, query string, limit int) []string {
	if query == "" {
		return []string{}
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	q := strings.ToLower(query)
	out := make([]string, 0, min(limit, len(list)))
	for _, c := range list {
		if strings.Contains(strings.ToLower(c), q) {
			out = append(out, c)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
