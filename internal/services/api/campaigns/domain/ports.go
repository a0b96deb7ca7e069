package domain

import "context"

// ServicePort is the campaigns service contract
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]Row, error)
	Get(ctx context.Context, in GetInput) (*Row, error)
	Create(ctx context.Context, in CreateInput) (*MutateResult, error)
	Update(ctx context.Context, in UpdateInput) (*MutateResult, error)
	SetStatus(ctx context.Context, in StatusInput) (*MutateResult, error)
	Remove(ctx context.Context, in RemoveInput) (*MutateResult, error)
}
