package module

import (
	"context"

	"adsbridge/internal/services/api/budgets/domain"
	budgetssvc "adsbridge/internal/services/api/budgets/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptBudgetsPort struct{ svc budgetssvc.Service }

// List returns campaign budgets
func (a adaptBudgetsPort) List(ctx context.Context, in domain.ListInput) ([]domain.Row, error) {
	return a.svc.List(ctx, in)
}

// Get fetches one budget by id
func (a adaptBudgetsPort) Get(ctx context.Context, in domain.GetInput) (*domain.Row, error) {
	return a.svc.Get(ctx, in)
}

// Create makes a campaign budget
func (a adaptBudgetsPort) Create(ctx context.Context, in domain.CreateInput) (*domain.MutateResult, error) {
	return a.svc.Create(ctx, in)
}

// Update patches budget name or amount
func (a adaptBudgetsPort) Update(ctx context.Context, in domain.UpdateInput) (*domain.MutateResult, error) {
	return a.svc.Update(ctx, in)
}
