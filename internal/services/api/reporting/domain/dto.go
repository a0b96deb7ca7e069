// Package domain holds DTOs for reporting http and service contracts
package domain

// Window selects the report date range. Explicit start/end win over a
// named range; with neither, the report covers LAST_30_DAYS
type Window struct {
	DateRange string `json:"date_range,omitempty" validate:"omitempty,named_range" example:"LAST_7_DAYS"`
	StartDate string `json:"start_date,omitempty" validate:"omitempty,gads_date" example:"2026-08-01"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,gads_date" example:"2026-08-24"`
}

// CampaignsInput drives the campaign performance report
type CampaignsInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Window
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1" example:"50"`
}

// Metrics is the shared performance block
type Metrics struct {
	Impressions int64   `json:"impressions" example:"12040"`
	Clicks      int64   `json:"clicks" example:"240"`
	Cost        float64 `json:"cost" example:"103.52"`
	Conversions float64 `json:"conversions" example:"12.5"`
	CTR         float64 `json:"ctr" example:"0.0199"`
	AverageCPC  float64 `json:"average_cpc" example:"0.43"`
}

// CampaignRow is one campaign performance row
type CampaignRow struct {
	CampaignID   string `json:"campaign_id" example:"111222333"`
	CampaignName string `json:"campaign_name" example:"Brand - Search"`
	Status       string `json:"status" example:"ENABLED"`
	Metrics
}

// AdGroupsInput drives the ad group performance report
type AdGroupsInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	CampaignID string `json:"campaign_id,omitempty" validate:"omitempty,customer_id" example:"111222333"`
	Window
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1" example:"50"`
}

// AdGroupRow is one ad group performance row
type AdGroupRow struct {
	AdGroupID    string `json:"ad_group_id" example:"555666777"`
	AdGroupName  string `json:"ad_group_name" example:"Brand - Exact"`
	CampaignName string `json:"campaign_name" example:"Brand - Search"`
	Status       string `json:"status" example:"ENABLED"`
	Metrics
}

// KeywordsInput drives the keyword performance report
type KeywordsInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID  string `json:"ad_group_id,omitempty" validate:"omitempty,customer_id" example:"555666777"`
	Window
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1" example:"100"`
}

// KeywordRow is one keyword performance row
type KeywordRow struct {
	CriterionID string `json:"criterion_id" example:"987654"`
	Text        string `json:"text" example:"running shoes"`
	MatchType   string `json:"match_type" example:"EXACT"`
	AdGroupName string `json:"ad_group_name" example:"Brand - Exact"`
	Metrics
}

// SearchTermsInput drives the search terms report
type SearchTermsInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	CampaignID string `json:"campaign_id,omitempty" validate:"omitempty,customer_id" example:"111222333"`
	Window
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1" example:"100"`
}

// SearchTermRow is one search term performance row
type SearchTermRow struct {
	SearchTerm   string `json:"search_term" example:"best running shoes 2026"`
	MatchedType  string `json:"matched_type" example:"NEAR_EXACT"`
	AdGroupName  string `json:"ad_group_name" example:"Brand - Exact"`
	CampaignName string `json:"campaign_name" example:"Brand - Search"`
	Metrics
}
