// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyCustomerID ctxKey = "customer_id"

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, customerID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if customerID != "" {
		ctx = context.WithValue(ctx, keyCustomerID, customerID)
	}
	return ctx
}

// WithCustomer annotates context with the acting customer account id
func WithCustomer(ctx context.Context, customerID string) context.Context {
	if customerID != "" {
		ctx = context.WithValue(ctx, keyCustomerID, customerID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// CustomerID returns the customer account id on the context if present
func CustomerID(ctx context.Context) string {
	if v, ok := ctx.Value(keyCustomerID).(string); ok {
		return v
	}
	return ""
}
