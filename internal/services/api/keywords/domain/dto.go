// Package domain holds DTOs for keywords http and service contracts
package domain

import "adsbridge/internal/gads/batch"

// ListInput lists keywords, scoped to an ad group or campaign when given
type ListInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	CampaignID string `json:"campaign_id,omitempty" validate:"omitempty,customer_id" example:"111222333"`
	AdGroupID  string `json:"ad_group_id,omitempty" validate:"omitempty,customer_id" example:"555666777"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=ENABLED PAUSED REMOVED" example:"ENABLED"`
	Limit      int    `json:"limit,omitempty" validate:"omitempty,min=1" example:"100"`
}

// Row is one keyword criterion in a listing
type Row struct {
	CriterionID string  `json:"criterion_id" example:"987654"`
	AdGroupID   string  `json:"ad_group_id" example:"555666777"`
	Text        string  `json:"text" example:"running shoes"`
	MatchType   string  `json:"match_type" example:"EXACT"`
	Status      string  `json:"status" example:"ENABLED"`
	CPCBid      float64 `json:"cpc_bid" example:"1.5"`
	Negative    bool    `json:"negative"`
}

// AddKeyword is one keyword in an add batch
type AddKeyword struct {
	Text      string  `json:"text" validate:"required,min=1,max=80" example:"running shoes"`
	MatchType string  `json:"match_type" validate:"required,match_type" example:"EXACT"`
	CPCBid    float64 `json:"cpc_bid,omitempty" validate:"omitempty,gt=0" example:"1.5"`
	Status    string  `json:"status,omitempty" validate:"omitempty,oneof=ENABLED PAUSED" example:"ENABLED"`
}

// AddInput adds keywords to an ad group as one batch
type AddInput struct {
	CustomerID   string       `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID    string       `json:"ad_group_id" validate:"required,customer_id" example:"555666777"`
	Keywords     []AddKeyword `json:"keywords" validate:"required,min=1,dive"`
	ValidateOnly bool         `json:"validate_only,omitempty"`
}

// UpdateInput patches bid, status, or final URL on one keyword criterion
type UpdateInput struct {
	CustomerID  string  `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID   string  `json:"ad_group_id" validate:"required,customer_id" example:"555666777"`
	CriterionID string  `json:"criterion_id" validate:"required,customer_id" example:"987654"`
	CPCBid      float64 `json:"cpc_bid,omitempty" validate:"omitempty,gt=0" example:"2"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=ENABLED PAUSED" example:"PAUSED"`
	FinalURL    string  `json:"final_url,omitempty" validate:"omitempty,http_url" example:"https://example.com/shoes"`
}

// RemoveInput removes one keyword criterion
type RemoveInput struct {
	CustomerID  string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID   string `json:"ad_group_id" validate:"required,customer_id" example:"555666777"`
	CriterionID string `json:"criterion_id" validate:"required,customer_id" example:"987654"`
}

// NegativeInput attaches a negative keyword to a campaign
type NegativeInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	CampaignID string `json:"campaign_id" validate:"required,customer_id" example:"111222333"`
	Text       string `json:"text" validate:"required,min=1,max=80" example:"free"`
	MatchType  string `json:"match_type" validate:"required,match_type" example:"BROAD"`
}

// MutateResult reports the touched resource
type MutateResult struct {
	ResourceName string `json:"resource_name" example:"customers/1234567890/adGroupCriteria/555666777~987654"`
}

// BatchResult is the merged outcome of an add batch
type BatchResult = batch.Result
