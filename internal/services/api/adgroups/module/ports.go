package module

import (
	"context"

	"adsbridge/internal/services/api/adgroups/domain"
	adgroupssvc "adsbridge/internal/services/api/adgroups/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAdGroupsPort struct{ svc adgroupssvc.Service }

// List returns ad groups
func (a adaptAdGroupsPort) List(ctx context.Context, in domain.ListInput) ([]domain.Row, error) {
	return a.svc.List(ctx, in)
}

// Get fetches one ad group by id
func (a adaptAdGroupsPort) Get(ctx context.Context, in domain.GetInput) (*domain.Row, error) {
	return a.svc.Get(ctx, in)
}

// Create makes an ad group under a campaign
func (a adaptAdGroupsPort) Create(ctx context.Context, in domain.CreateInput) (*domain.MutateResult, error) {
	return a.svc.Create(ctx, in)
}

// Update patches ad group name and CPC bid
func (a adaptAdGroupsPort) Update(ctx context.Context, in domain.UpdateInput) (*domain.MutateResult, error) {
	return a.svc.Update(ctx, in)
}

// SetStatus flips ad group state
func (a adaptAdGroupsPort) SetStatus(ctx context.Context, in domain.StatusInput) (*domain.MutateResult, error) {
	return a.svc.SetStatus(ctx, in)
}
