package domain

import "context"

// ServicePort is the keywords service contract
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]Row, error)
	Add(ctx context.Context, in AddInput) (*BatchResult, error)
	Update(ctx context.Context, in UpdateInput) (*MutateResult, error)
	Remove(ctx context.Context, in RemoveInput) (*MutateResult, error)
	AddNegative(ctx context.Context, in NegativeInput) (*MutateResult, error)
}
