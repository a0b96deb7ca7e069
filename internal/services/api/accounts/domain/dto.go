// Package domain holds DTOs for accounts http and service contracts
package domain

// ListClientsInput lists accounts visible under the acting customer.
// An empty customer_id falls back to the configured default account
type ListClientsInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
	Limit      int    `json:"limit,omitempty" validate:"omitempty,min=1" example:"100"`
}

// ClientRow is one account under the manager tree
type ClientRow struct {
	ID              string `json:"id" example:"1234567890"`
	DescriptiveName string `json:"descriptive_name" example:"Acme Retail"`
	Level           int64  `json:"level" example:"1"`
	Manager         bool   `json:"manager"`
	Status          string `json:"status" example:"ENABLED"`
	CurrencyCode    string `json:"currency_code" example:"USD"`
	TimeZone        string `json:"time_zone" example:"Europe/Berlin"`
}

// AccessibleAccount is one customer the configured credentials can act on
type AccessibleAccount struct {
	ID           string `json:"id" example:"1234567890"`
	ResourceName string `json:"resource_name" example:"customers/1234567890"`
}

// InfoInput fetches the acting account's own details
type InfoInput struct {
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,customer_id" example:"123-456-7890"`
}

// Info is the account detail payload
type Info struct {
	ID              string `json:"id" example:"1234567890"`
	DescriptiveName string `json:"descriptive_name" example:"Acme Retail"`
	CurrencyCode    string `json:"currency_code" example:"USD"`
	TimeZone        string `json:"time_zone" example:"Europe/Berlin"`
	Manager         bool   `json:"manager"`
	TestAccount     bool   `json:"test_account"`
}
