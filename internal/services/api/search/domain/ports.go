package domain

import "context"

// ServicePort is the search service contract
type ServicePort interface {
	Query(ctx context.Context, in QueryInput) (*QueryResult, error)
}
