package module

import (
	"context"

	"adsbridge/internal/services/api/batchops/domain"
	batchsvc "adsbridge/internal/services/api/batchops/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptBatchPort struct{ svc batchsvc.Service }

// SetStatuses flips many resource statuses in one batch
func (a adaptBatchPort) SetStatuses(ctx context.Context, in domain.StatusInput) (*domain.Result, error) {
	return a.svc.SetStatuses(ctx, in)
}

// ImportConversions imports offline click conversions in one batch
func (a adaptBatchPort) ImportConversions(ctx context.Context, in domain.ConversionsInput) (*domain.Result, error) {
	return a.svc.ImportConversions(ctx, in)
}

// CreateSitelinks creates sitelink assets in one batch
func (a adaptBatchPort) CreateSitelinks(ctx context.Context, in domain.SitelinksInput) (*domain.Result, error) {
	return a.svc.CreateSitelinks(ctx, in)
}
