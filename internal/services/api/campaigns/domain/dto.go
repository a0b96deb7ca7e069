// Package domain holds DTOs for campaigns http and service contracts
package domain

// ListInput lists campaigns, optionally filtered by status
type ListInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=ENABLED PAUSED REMOVED" example:"ENABLED"`
	Limit      int    `json:"limit,omitempty" validate:"omitempty,min=1" example:"50"`
}

// Row is one campaign in a listing
type Row struct {
	ID                  string  `json:"id" example:"111222333"`
	Name                string  `json:"name" example:"Brand - Search"`
	Status              string  `json:"status" example:"ENABLED"`
	ChannelType         string  `json:"channel_type" example:"SEARCH"`
	BiddingStrategyType string  `json:"bidding_strategy_type" example:"MAXIMIZE_CONVERSIONS"`
	BudgetResourceName  string  `json:"budget_resource_name,omitempty" example:"customers/1234567890/campaignBudgets/444"`
	BudgetAmount        float64 `json:"budget_amount" example:"50"`
	StartDate           string  `json:"start_date,omitempty" example:"2026-01-01"`
	EndDate             string  `json:"end_date,omitempty" example:"2026-12-31"`
	ServingStatus       string  `json:"serving_status,omitempty" example:"SERVING"`
	OptimizationScore   float64 `json:"optimization_score,omitempty" example:"0.83"`
}

// GetInput fetches one campaign by id
type GetInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	CampaignID string `json:"campaign_id" validate:"required,customer_id" example:"111222333"`
}

// CreateInput creates a search campaign. New campaigns start PAUSED
// unless an explicit status is given
type CreateInput struct {
	CustomerID       string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Name             string `json:"name" validate:"required,min=1,max=255" example:"Brand - Search"`
	BudgetResource   string `json:"budget_resource" validate:"required" example:"customers/1234567890/campaignBudgets/444"`
	ChannelType      string `json:"channel_type,omitempty" validate:"omitempty,oneof=SEARCH DISPLAY SHOPPING VIDEO PERFORMANCE_MAX DEMAND_GEN" example:"SEARCH"`
	Status           string `json:"status,omitempty" validate:"omitempty,oneof=ENABLED PAUSED" example:"PAUSED"`
	StartDate        string `json:"start_date,omitempty" validate:"omitempty,gads_date" example:"2026-01-01"`
	EndDate          string `json:"end_date,omitempty" validate:"omitempty,gads_date" example:"2026-12-31"`
	TargetGoogleSrch *bool  `json:"target_google_search,omitempty"`
	TargetSearchNet  *bool  `json:"target_search_network,omitempty"`
}

// UpdateInput patches campaign name and flight dates. Zero-value
// fields are left untouched
type UpdateInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	CampaignID string `json:"campaign_id" validate:"required,customer_id" example:"111222333"`
	Name       string `json:"name,omitempty" validate:"omitempty,min=1,max=255" example:"Brand - Search v2"`
	StartDate  string `json:"start_date,omitempty" validate:"omitempty,gads_date" example:"2026-02-01"`
	EndDate    string `json:"end_date,omitempty" validate:"omitempty,gads_date" example:"2026-12-31"`
}

// StatusInput flips a campaign between ENABLED and PAUSED or removes it
type StatusInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	CampaignID string `json:"campaign_id" validate:"required,customer_id" example:"111222333"`
	Status     string `json:"status" validate:"required,oneof=ENABLED PAUSED REMOVED" example:"PAUSED"`
}

// RemoveInput removes a campaign
type RemoveInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	CampaignID string `json:"campaign_id" validate:"required,customer_id" example:"111222333"`
}

// MutateResult reports the touched resource
type MutateResult struct {
	ResourceName string `json:"resource_name" example:"customers/1234567890/campaigns/111222333"`
}
