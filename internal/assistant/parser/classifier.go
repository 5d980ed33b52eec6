// internal/assistant/parser/classifier.go
package parser

import (
	"strings"

	"shopping-assistant/internal/models"
)

// classifyQuery assigns a query type from the keyword buckets. The return
// bucket is checked before the comparison bucket so classification agrees
// with dispatch priority; the original code checked the two buckets in
// opposite orders in different places, and return-first is the order the
// dispatcher always honored.
func classifyQuery(query string) models.QueryType {
	lower := strings.ToLower(query)
	for _, p := range returnPatterns {
		if p.MatchString(lower) {
			return models.QueryTypeReturn
		}
	}
	for _, p := range comparisonPatterns {
		if p.MatchString(lower) {
			return models.QueryTypeComparison
		}
	}
	return models.QueryTypeSearch
}
