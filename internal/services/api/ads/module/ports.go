package module

import (
	"context"

	"adsbridge/internal/services/api/ads/domain"
	adssvc "adsbridge/internal/services/api/ads/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAdsPort struct{ svc adssvc.Service }

// List returns ads in the account
func (a adaptAdsPort) List(ctx context.Context, in domain.ListInput) ([]domain.Row, error) {
	return a.svc.List(ctx, in)
}

// Get fetches one ad
func (a adaptAdsPort) Get(ctx context.Context, in domain.GetInput) (*domain.Detail, error) {
	return a.svc.Get(ctx, in)
}

// CreateRSA makes a responsive search ad
func (a adaptAdsPort) CreateRSA(ctx context.Context, in domain.CreateRSAInput) (*domain.CreateResult, error) {
	return a.svc.CreateRSA(ctx, in)
}

// Update patches landing URL and display paths
func (a adaptAdsPort) Update(ctx context.Context, in domain.UpdateInput) (*domain.MutateResult, error) {
	return a.svc.Update(ctx, in)
}

// SetStatus flips ad state
func (a adaptAdsPort) SetStatus(ctx context.Context, in domain.StatusInput) (*domain.MutateResult, error) {
	return a.svc.SetStatus(ctx, in)
}

// Strength lists ad strength ratings
func (a adaptAdsPort) Strength(ctx context.Context, in domain.StrengthInput) ([]domain.StrengthRow, error) {
	return a.svc.Strength(ctx, in)
}
