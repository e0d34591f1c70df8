package repository

import (
	"strings"
)

// ORDER BY cannot take bound placeholders, so only identifiers from
// these whitelists are ever concatenated into a query. Anything else
// silently falls back to name.
var (
	userSortFields = map[string]string{
		"name":  "name",
		"email": "email",
		"role":  "role",
	}

	adminStoreSortFields = map[string]string{
		"name":          "s.name",
		"email":         "s.email",
		"averageRating": `"averageRating"`,
	}

	userStoreSortFields = map[string]string{
		"name":          "s.name",
		"overallRating": `"overallRating"`,
	}
)

// safeSortField maps a requested sort key through a whitelist
func safeSortField(requested string, allowed map[string]string) string {
	if column, ok := allowed[requested]; ok {
		return column
	}
	return allowed["name"]
}

// safeOrder normalizes the sort direction to ASC or DESC
func safeOrder(order string) string {
	if strings.EqualFold(order, "DESC") {
		return "DESC"
	}
	return "ASC"
}
