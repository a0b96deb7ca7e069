package module

import (
	"context"

	"adsbridge/internal/services/api/labels/domain"
	labelssvc "adsbridge/internal/services/api/labels/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptLabelsPort struct{ svc labelssvc.Service }

// List returns labels in the account
func (a adaptLabelsPort) List(ctx context.Context, in domain.ListInput) ([]domain.Row, error) {
	return a.svc.List(ctx, in)
}

// Create makes a new label
func (a adaptLabelsPort) Create(ctx context.Context, in domain.CreateInput) (*domain.MutateResult, error) {
	return a.svc.Create(ctx, in)
}

// Remove deletes a label
func (a adaptLabelsPort) Remove(ctx context.Context, in domain.RemoveInput) (*domain.MutateResult, error) {
	return a.svc.Remove(ctx, in)
}

// Apply attaches a label to a resource
func (a adaptLabelsPort) Apply(ctx context.Context, in domain.ApplyInput) (*domain.MutateResult, error) {
	return a.svc.Apply(ctx, in)
}

// Detach removes a label association
func (a adaptLabelsPort) Detach(ctx context.Context, in domain.DetachInput) (*domain.MutateResult, error) {
	return a.svc.Detach(ctx, in)
}
