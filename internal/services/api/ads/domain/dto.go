// Package domain holds DTOs for ads http and service contracts
package domain

// ListInput lists responsive search ads, optionally scoped by ad group,
// campaign, or status
type ListInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID  string `json:"ad_group_id,omitempty" validate:"omitempty,customer_id" example:"555666777"`
	CampaignID string `json:"campaign_id,omitempty" validate:"omitempty,customer_id" example:"111222333"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=ENABLED PAUSED REMOVED" example:"ENABLED"`
	Limit      int    `json:"limit,omitempty" validate:"omitempty,min=1" example:"50"`
}

// Row is one ad in a listing
type Row struct {
	AdID         string   `json:"ad_id" example:"888999000"`
	Name         string   `json:"name,omitempty" example:"Spring Sale RSA"`
	Type         string   `json:"type" example:"RESPONSIVE_SEARCH_AD"`
	Status       string   `json:"status" example:"ENABLED"`
	FinalURLs    []string `json:"final_urls" example:"https://example.com/sale"`
	Headlines    []string `json:"headlines" example:"Spring Sale"`
	Descriptions []string `json:"descriptions" example:"Save big this spring"`
	AdStrength   string   `json:"ad_strength,omitempty" example:"GOOD"`
	AdGroupID    string   `json:"ad_group_id" example:"555666777"`
	AdGroupName  string   `json:"ad_group_name,omitempty" example:"Sale - Exact"`
}

// GetInput fetches one ad by ad group and ad id
type GetInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID  string `json:"ad_group_id" validate:"required,customer_id" example:"555666777"`
	AdID       string `json:"ad_id" validate:"required,customer_id" example:"888999000"`
}

// TextAsset is a headline or description with its optional pin
type TextAsset struct {
	Text        string `json:"text" example:"Spring Sale"`
	PinnedField string `json:"pinned_field,omitempty" example:"HEADLINE_1"`
}

// Detail is the full view of one ad
type Detail struct {
	AdID             string      `json:"ad_id" example:"888999000"`
	Name             string      `json:"name,omitempty" example:"Spring Sale RSA"`
	Type             string      `json:"type" example:"RESPONSIVE_SEARCH_AD"`
	Status           string      `json:"status" example:"ENABLED"`
	FinalURLs        []string    `json:"final_urls" example:"https://example.com/sale"`
	FinalMobileURLs  []string    `json:"final_mobile_urls,omitempty"`
	TrackingTemplate string      `json:"tracking_url_template,omitempty"`
	Headlines        []TextAsset `json:"headlines"`
	Descriptions     []TextAsset `json:"descriptions"`
	Path1            string      `json:"path1,omitempty" example:"deals"`
	Path2            string      `json:"path2,omitempty" example:"spring"`
	AdStrength       string      `json:"ad_strength,omitempty" example:"GOOD"`
	ApprovalStatus   string      `json:"approval_status,omitempty" example:"APPROVED"`
}

// CreateRSAInput creates a responsive search ad. New ads start PAUSED
// unless an explicit status is given
type CreateRSAInput struct {
	CustomerID   string   `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID    string   `json:"ad_group_id" validate:"required,customer_id" example:"555666777"`
	Headlines    []string `json:"headlines" validate:"required,min=3,max=15,dive,min=1,max=30" example:"Spring Sale"`
	Descriptions []string `json:"descriptions" validate:"required,min=2,max=4,dive,min=1,max=90" example:"Save big this spring"`
	FinalURL     string   `json:"final_url" validate:"required,url" example:"https://example.com/sale"`
	Path1        string   `json:"path1,omitempty" validate:"omitempty,max=15" example:"deals"`
	Path2        string   `json:"path2,omitempty" validate:"omitempty,max=15" example:"spring"`
	Status       string   `json:"status,omitempty" validate:"omitempty,oneof=ENABLED PAUSED" example:"PAUSED"`
}

// CreateResult reports the new ad and the status it starts in
type CreateResult struct {
	ResourceName string `json:"resource_name" example:"customers/1234567890/adGroupAds/555666777~888999000"`
	Status       string `json:"status" example:"PAUSED"`
}

// UpdateInput patches an ad's landing URL and display paths. Headlines
// and descriptions are immutable; create a new ad to change them.
// Path pointers distinguish clearing a path from leaving it alone
type UpdateInput struct {
	CustomerID string  `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID  string  `json:"ad_group_id" validate:"required,customer_id" example:"555666777"`
	AdID       string  `json:"ad_id" validate:"required,customer_id" example:"888999000"`
	FinalURL   string  `json:"final_url,omitempty" validate:"omitempty,url" example:"https://example.com/new"`
	Path1      *string `json:"path1,omitempty" validate:"omitempty,max=15" example:"deals"`
	Path2      *string `json:"path2,omitempty" validate:"omitempty,max=15" example:"summer"`
}

// StatusInput flips an ad between ENABLED and PAUSED or removes it
type StatusInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID  string `json:"ad_group_id" validate:"required,customer_id" example:"555666777"`
	AdID       string `json:"ad_id" validate:"required,customer_id" example:"888999000"`
	Status     string `json:"status" validate:"required,oneof=ENABLED PAUSED REMOVED" example:"PAUSED"`
}

// StrengthInput lists ad strength ratings for responsive search ads
type StrengthInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	AdGroupID  string `json:"ad_group_id,omitempty" validate:"omitempty,customer_id" example:"555666777"`
	CampaignID string `json:"campaign_id,omitempty" validate:"omitempty,customer_id" example:"111222333"`
	Limit      int    `json:"limit,omitempty" validate:"omitempty,min=1" example:"50"`
}

// StrengthRow is one ad's strength rating with its placement
type StrengthRow struct {
	AdID         string `json:"ad_id" example:"888999000"`
	AdStrength   string `json:"ad_strength" example:"POOR"`
	Status       string `json:"status" example:"ENABLED"`
	AdGroupID    string `json:"ad_group_id" example:"555666777"`
	AdGroupName  string `json:"ad_group_name" example:"Sale - Exact"`
	CampaignID   string `json:"campaign_id" example:"111222333"`
	CampaignName string `json:"campaign_name" example:"Brand - Search"`
}

// MutateResult reports the touched resource
type MutateResult struct {
	ResourceName string `json:"resource_name" example:"customers/1234567890/adGroupAds/555666777~888999000"`
}
