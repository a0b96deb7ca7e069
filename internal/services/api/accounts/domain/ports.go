package domain

import "context"

// ServicePort is the accounts service contract
type ServicePort interface {
	ListAccessible(ctx context.Context) ([]AccessibleAccount, error)
	ListClients(ctx context.Context, in ListClientsInput) ([]ClientRow, error)
	Info(ctx context.Context, in InfoInput) (*Info, error)
}
