package module

import (
	"context"

	"adsbridge/internal/services/api/accounts/domain"
	accountssvc "adsbridge/internal/services/api/accounts/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAccountsPort struct{ svc accountssvc.Service }

// ListAccessible enumerates customers reachable with the configured credentials
func (a adaptAccountsPort) ListAccessible(ctx context.Context) ([]domain.AccessibleAccount, error) {
	return a.svc.ListAccessible(ctx)
}

// ListClients lists accounts under the acting customer's manager tree
func (a adaptAccountsPort) ListClients(ctx context.Context, in domain.ListClientsInput) ([]domain.ClientRow, error) {
	return a.svc.ListClients(ctx, in)
}

// Info returns the acting account's own details
func (a adaptAccountsPort) Info(ctx context.Context, in domain.InfoInput) (*domain.Info, error) {
	return a.svc.Info(ctx, in)
}
