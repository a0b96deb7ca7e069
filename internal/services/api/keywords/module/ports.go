package module

import (
	"context"

	"adsbridge/internal/services/api/keywords/domain"
	keywordssvc "adsbridge/internal/services/api/keywords/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptKeywordsPort struct{ svc keywordssvc.Service }

// List returns keyword criteria
func (a adaptKeywordsPort) List(ctx context.Context, in domain.ListInput) ([]domain.Row, error) {
	return a.svc.List(ctx, in)
}

// Add submits a keyword batch
func (a adaptKeywordsPort) Add(ctx context.Context, in domain.AddInput) (*domain.BatchResult, error) {
	return a.svc.Add(ctx, in)
}

// Update patches one keyword criterion
func (a adaptKeywordsPort) Update(ctx context.Context, in domain.UpdateInput) (*domain.MutateResult, error) {
	return a.svc.Update(ctx, in)
}

// Remove deletes one keyword criterion
func (a adaptKeywordsPort) Remove(ctx context.Context, in domain.RemoveInput) (*domain.MutateResult, error) {
	return a.svc.Remove(ctx, in)
}

// AddNegative attaches a campaign negative keyword
func (a adaptKeywordsPort) AddNegative(ctx context.Context, in domain.NegativeInput) (*domain.MutateResult, error) {
	return a.svc.AddNegative(ctx, in)
}
