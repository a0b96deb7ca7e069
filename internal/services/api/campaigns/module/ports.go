package module

import (
	"context"

	"adsbridge/internal/services/api/campaigns/domain"
	campaignssvc "adsbridge/internal/services/api/campaigns/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptCampaignsPort struct{ svc campaignssvc.Service }

// List returns campaigns in the account
func (a adaptCampaignsPort) List(ctx context.Context, in domain.ListInput) ([]domain.Row, error) {
	return a.svc.List(ctx, in)
}

// Get fetches one campaign by id
func (a adaptCampaignsPort) Get(ctx context.Context, in domain.GetInput) (*domain.Row, error) {
	return a.svc.Get(ctx, in)
}

// Create makes a new campaign
func (a adaptCampaignsPort) Create(ctx context.Context, in domain.CreateInput) (*domain.MutateResult, error) {
	return a.svc.Create(ctx, in)
}

// Update patches name and flight dates
func (a adaptCampaignsPort) Update(ctx context.Context, in domain.UpdateInput) (*domain.MutateResult, error) {
	return a.svc.Update(ctx, in)
}

// SetStatus flips campaign state
func (a adaptCampaignsPort) SetStatus(ctx context.Context, in domain.StatusInput) (*domain.MutateResult, error) {
	return a.svc.SetStatus(ctx, in)
}

// Remove deletes a campaign
func (a adaptCampaignsPort) Remove(ctx context.Context, in domain.RemoveInput) (*domain.MutateResult, error) {
	return a.svc.Remove(ctx, in)
}
