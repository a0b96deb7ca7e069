package domain

import "context"

// ServicePort is the ads service contract
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]Row, error)
	Get(ctx context.Context, in GetInput) (*Detail, error)
	CreateRSA(ctx context.Context, in CreateRSAInput) (*CreateResult, error)
	Update(ctx context.Context, in UpdateInput) (*MutateResult, error)
	SetStatus(ctx context.Context, in StatusInput) (*MutateResult, error)
	Strength(ctx context.Context, in StrengthInput) ([]StrengthRow, error)
}
