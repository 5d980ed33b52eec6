// internal/models/query_types.go
package models

// QueryType classifies a query into one of the three handling paths.
type QueryType string

const (
	QueryTypeSearch     QueryType = "search"
	QueryTypeComparison QueryType = "comparison"
	QueryTypeReturn     QueryType = "return"
)
