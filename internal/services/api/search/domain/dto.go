// Package domain holds DTOs for search http and service contracts
package domain

import "encoding/json"

// QueryInput runs a raw GAQL SELECT against the account
type QueryInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Query      string `json:"query" validate:"required" example:"SELECT campaign.id, campaign.name FROM campaign LIMIT 10"`
	Limit      int    `json:"limit,omitempty" validate:"omitempty,min=1" example:"100"`
}

// QueryResult carries the raw rows plus a count for quick inspection
type QueryResult struct {
	RowCount int                          `json:"row_count" example:"10"`
	Rows     []map[string]json.RawMessage `json:"rows"`
}
