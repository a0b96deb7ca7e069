package module

import (
	"context"

	"adsbridge/internal/services/api/search/domain"
	searchsvc "adsbridge/internal/services/api/search/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptSearchPort struct{ svc searchsvc.Service }

// Query runs a guarded raw GAQL SELECT
func (a adaptSearchPort) Query(ctx context.Context, in domain.QueryInput) (*domain.QueryResult, error) {
	return a.svc.Query(ctx, in)
}
