// Package domain holds DTOs for budgets http and service contracts
package domain

// ListInput lists campaign budgets
type ListInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Limit      int    `json:"limit,omitempty" validate:"omitempty,min=1" example:"50"`
}

// Row is one campaign budget in a listing
type Row struct {
	ID             string  `json:"id" example:"444555666"`
	Name           string  `json:"name" example:"Search budget"`
	Amount         float64 `json:"amount" example:"50"`
	DeliveryMethod string  `json:"delivery_method" example:"STANDARD"`
	Shared         bool    `json:"shared"`
	ReferenceCount int64   `json:"reference_count" example:"2"`
	Status         string  `json:"status" example:"ENABLED"`
}

// GetInput fetches one budget by id
type GetInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	BudgetID   string `json:"budget_id" validate:"required,customer_id" example:"444555666"`
}

// CreateInput creates a campaign budget. Amount is in account currency
// units, not micros
type CreateInput struct {
	CustomerID     string  `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Name           string  `json:"name" validate:"required,min=1,max=255" example:"Search budget"`
	Amount         float64 `json:"amount" validate:"required,gt=0" example:"50"`
	DeliveryMethod string  `json:"delivery_method,omitempty" validate:"omitempty,oneof=STANDARD ACCELERATED" example:"STANDARD"`
	Shared         bool    `json:"shared,omitempty"`
}

// UpdateInput patches budget name or amount
type UpdateInput struct {
	CustomerID string  `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	BudgetID   string  `json:"budget_id" validate:"required,customer_id" example:"444555666"`
	Name       string  `json:"name,omitempty" validate:"omitempty,min=1,max=255" example:"Search budget v2"`
	Amount     float64 `json:"amount,omitempty" validate:"omitempty,gt=0" example:"75"`
}

// MutateResult reports the touched resource
type MutateResult struct {
	ResourceName string `json:"resource_name" example:"customers/1234567890/campaignBudgets/444555666"`
}
