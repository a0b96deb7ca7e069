// Package domain holds DTOs for batch http and service contracts
package domain

import "adsbridge/internal/gads/batch"

// StatusChange is one resource status flip in a batch
type StatusChange struct {
	ResourceType string `json:"resource_type" validate:"required,oneof=campaign ad_group ad" example:"campaign"`
	ID           string `json:"id" validate:"required,customer_id" example:"111222333"`
	AdGroupID    string `json:"ad_group_id,omitempty" validate:"omitempty,customer_id" example:"555666777"`
	Status       string `json:"status" validate:"required,oneof=ENABLED PAUSED" example:"PAUSED"`
}

// StatusInput flips many resource statuses in one batch
type StatusInput struct {
	CustomerID   string         `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Changes      []StatusChange `json:"changes" validate:"required,min=1,dive"`
	ValidateOnly bool           `json:"validate_only,omitempty"`
}

// Conversion is one offline click conversion to import
type Conversion struct {
	GCLID              string  `json:"gclid" validate:"required" example:"Cj0KCQjw"`
	ConversionAction   string  `json:"conversion_action" validate:"required,customer_id" example:"998877"`
	ConversionDateTime string  `json:"conversion_datetime" validate:"required" example:"2026-08-20 14:05:00+00:00"`
	Value              float64 `json:"value" validate:"gte=0" example:"49.99"`
	CurrencyCode       string  `json:"currency_code,omitempty" validate:"omitempty,len=3,alpha" example:"USD"`
}

// ConversionsInput imports offline conversions in one batch
type ConversionsInput struct {
	CustomerID   string       `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Conversions  []Conversion `json:"conversions" validate:"required,min=1,dive"`
	ValidateOnly bool         `json:"validate_only,omitempty"`
}

// Sitelink is one sitelink asset to create
type Sitelink struct {
	LinkText     string `json:"link_text" validate:"required,min=1,max=25" example:"Shop sale"`
	FinalURL     string `json:"final_url" validate:"required,http_url" example:"https://example.com/sale"`
	Description1 string `json:"description1,omitempty" validate:"omitempty,max=35" example:"Up to 50% off"`
	Description2 string `json:"description2,omitempty" validate:"omitempty,max=35" example:"Ends Sunday"`
}

// SitelinksInput creates sitelink assets in one batch
type SitelinksInput struct {
	CustomerID   string     `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Sitelinks    []Sitelink `json:"sitelinks" validate:"required,min=1,dive"`
	ValidateOnly bool       `json:"validate_only,omitempty"`
}

// Result is the merged outcome of a batch execution
type Result = batch.Result
