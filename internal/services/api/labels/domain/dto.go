// Package domain holds DTOs for labels http and service contracts
package domain

// ListInput lists labels in the account
type ListInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Limit      int    `json:"limit,omitempty" validate:"omitempty,min=1" example:"100"`
}

// Row is one label in a listing
type Row struct {
	LabelID         string `json:"label_id" example:"444555666"`
	Name            string `json:"name" example:"Q3 Review"`
	Description     string `json:"description,omitempty" example:"Flagged for quarterly review"`
	BackgroundColor string `json:"background_color,omitempty" example:"#FF0000"`
	Status          string `json:"status" example:"ENABLED"`
}

// CreateInput creates a label
type CreateInput struct {
	CustomerID      string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Name            string `json:"name" validate:"required,min=1,max=255" example:"Q3 Review"`
	Description     string `json:"description,omitempty" validate:"omitempty,max=200" example:"Flagged for quarterly review"`
	BackgroundColor string `json:"background_color,omitempty" validate:"omitempty,hexcolor" example:"#FF0000"`
}

// RemoveInput deletes a label permanently
type RemoveInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	LabelID    string `json:"label_id" validate:"required,customer_id" example:"444555666"`
}

// ApplyInput attaches a label to a campaign, ad group, ad, or keyword.
// Ads and keywords live under an ad group, so those types also need
// AdGroupID
type ApplyInput struct {
	CustomerID   string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	ResourceType string `json:"resource_type" validate:"required,oneof=campaign ad_group ad keyword" example:"campaign"`
	LabelID      string `json:"label_id" validate:"required,customer_id" example:"444555666"`
	CampaignID   string `json:"campaign_id,omitempty" validate:"omitempty,customer_id" example:"111222333"`
	AdGroupID    string `json:"ad_group_id,omitempty" validate:"omitempty,customer_id" example:"555666777"`
	AdID         string `json:"ad_id,omitempty" validate:"omitempty,customer_id" example:"888999000"`
	CriterionID  string `json:"criterion_id,omitempty" validate:"omitempty,customer_id" example:"321321321"`
}

// DetachInput removes a label association. ResourceName is the
// association resource returned when the label was applied, for example
// customers/123/campaignLabels/456~789
type DetachInput struct {
	CustomerID   string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	ResourceType string `json:"resource_type" validate:"required,oneof=campaign ad_group ad keyword" example:"campaign"`
	ResourceName string `json:"resource_name" validate:"required" example:"customers/1234567890/campaignLabels/111222333~444555666"`
}

// MutateResult reports the touched resource
type MutateResult struct {
	ResourceName string `json:"resource_name" example:"customers/1234567890/labels/444555666"`
}
