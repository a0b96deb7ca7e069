// Package domain holds DTOs for adgroups http and service contracts
package domain

// ListInput lists ad groups, scoped to a campaign when one is given
type ListInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	CampaignID string `json:"campaign_id,omitempty" validate:"omitempty,customer_id" example:"111222333"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=ENABLED PAUSED REMOVED" example:"ENABLED"`
	Limit      int    `json:"limit,omitempty" validate:"omitempty,min=1" example:"50"`
}

// Row is one ad group in a listing
type Row struct {
	ID           string  `json:"id" example:"555666777"`
	Name         string  `json:"name" example:"Brand - Exact"`
	Status       string  `json:"status" example:"ENABLED"`
	Type         string  `json:"type" example:"SEARCH_STANDARD"`
	CampaignID   string  `json:"campaign_id" example:"111222333"`
	CampaignName string  `json:"campaign_name" example:"Brand - Search"`
	CPCBid       float64 `json:"cpc_bid" example:"1.5"`
}

// GetInput fetches one ad group by id
type GetInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID  string `json:"ad_group_id" validate:"required,customer_id" example:"555666777"`
}

// CreateInput creates an ad group under a campaign. New ad groups start
// PAUSED unless an explicit status is given
type CreateInput struct {
	CustomerID string  `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	CampaignID string  `json:"campaign_id" validate:"required,customer_id" example:"111222333"`
	Name       string  `json:"name" validate:"required,min=1,max=255" example:"Brand - Exact"`
	Status     string  `json:"status,omitempty" validate:"omitempty,oneof=ENABLED PAUSED" example:"PAUSED"`
	CPCBid     float64 `json:"cpc_bid,omitempty" validate:"omitempty,gt=0" example:"1.5"`
}

// UpdateInput patches ad group name and default CPC bid
type UpdateInput struct {
	CustomerID string  `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID  string  `json:"ad_group_id" validate:"required,customer_id" example:"555666777"`
	Name       string  `json:"name,omitempty" validate:"omitempty,min=1,max=255" example:"Brand - Exact v2"`
	CPCBid     float64 `json:"cpc_bid,omitempty" validate:"omitempty,gt=0" example:"2"`
}

// StatusInput flips an ad group between ENABLED, PAUSED, and REMOVED
type StatusInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID  string `json:"ad_group_id" validate:"required,customer_id" example:"555666777"`
	Status     string `json:"status" validate:"required,oneof=ENABLED PAUSED REMOVED" example:"PAUSED"`
}

// MutateResult reports the touched resource
type MutateResult struct {
	ResourceName string `json:"resource_name" example:"customers/1234567890/adGroups/555666777"`
}
