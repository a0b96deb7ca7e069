package domain

import "context"

// ServicePort is the labels service contract
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]Row, error)
	Create(ctx context.Context, in CreateInput) (*MutateResult, error)
	Remove(ctx context.Context, in RemoveInput) (*MutateResult, error)
	Apply(ctx context.Context, in ApplyInput) (*MutateResult, error)
	Detach(ctx context.Context, in DetachInput) (*MutateResult, error)
}
