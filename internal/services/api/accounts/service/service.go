// Package service contains accounts workflows
package service

import (
	"context"
	"fmt"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/services/api/accounts/domain"
)

// Service defines the accounts service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the accounts service
type Svc struct {
	ads   client.Transport
	creds auth.Credentials
}

// New constructs an accounts service
func New(ads client.Transport, creds auth.Credentials) *Svc {
	if ads == nil {
		panic("accounts.Service requires a non nil Transport")
	}
	return &Svc{ads: ads, creds: creds}
}

// ListAccessible enumerates the customers the configured refresh token can
// act on. Discovery rides a dedicated endpoint, so the transport must carry
// the optional lister surface
func (s *Svc) ListAccessible(ctx context.Context) ([]domain.AccessibleAccount, error) {
	al, ok := s.ads.(client.AccessibleLister)
	if !ok {
		return nil, perr.Unexpectedf("transport does not support account discovery")
	}
	ids, err := al.ListAccessible(ctx)
	if err != nil {
		return nil, perr.WithOp(err, "accounts.list_accessible")
	}
	out := make([]domain.AccessibleAccount, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.AccessibleAccount{
			ID:           id,
			ResourceName: "customers/" + id,
		})
	}
	return out, nil
}

// ListClients lists accounts under the acting customer's manager tree
func (s *Svc) ListClients(ctx context.Context, in domain.ListClientsInput) ([]domain.ClientRow, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit == 0 {
		limit = 100
	}
	if limit, err = validate.Limit(limit, 0); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT
  customer_client.id,
  customer_client.descriptive_name,
  customer_client.level,
  customer_client.manager,
  customer_client.status,
  customer_client.currency_code,
  customer_client.time_zone
FROM customer_client
ORDER BY customer_client.level
LIMIT %d`, limit)

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "accounts.list_clients")
	}

	out := make([]domain.ClientRow, 0, len(rows))
	for _, r := range rows {
		var cc struct {
			ID              string `json:"id"`
			DescriptiveName string `json:"descriptiveName"`
			Level           int64  `json:"level"`
			Manager         bool   `json:"manager"`
			Status          string `json:"status"`
			CurrencyCode    string `json:"currencyCode"`
			TimeZone        string `json:"timeZone"`
		}
		if ok, derr := r.Decode("customerClient", &cc); derr != nil || !ok {
			continue
		}
		out = append(out, domain.ClientRow{
			ID:              cc.ID,
			DescriptiveName: cc.DescriptiveName,
			Level:           cc.Level,
			Manager:         cc.Manager,
			Status:          cc.Status,
			CurrencyCode:    cc.CurrencyCode,
			TimeZone:        cc.TimeZone,
		})
	}
	return out, nil
}

// Info returns the acting account's own details
func (s *Svc) Info(ctx context.Context, in domain.InfoInput) (*domain.Info, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}

	q := `SELECT
  customer.id,
  customer.descriptive_name,
  customer.currency_code,
  customer.time_zone,
  customer.manager,
  customer.test_account
FROM customer
LIMIT 1`

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "accounts.info")
	}
	if len(rows) == 0 {
		return nil, perr.NotFoundf("customer %s not found", cid)
	}

	var c struct {
		ID              string `json:"id"`
		DescriptiveName string `json:"descriptiveName"`
		CurrencyCode    string `json:"currencyCode"`
		TimeZone        string `json:"timeZone"`
		Manager         bool   `json:"manager"`
		TestAccount     bool   `json:"testAccount"`
	}
	if _, err := rows[0].Decode("customer", &c); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnexpected, "malformed customer row")
	}
	return &domain.Info{
		ID:              c.ID,
		DescriptiveName: c.DescriptiveName,
		CurrencyCode:    c.CurrencyCode,
		TimeZone:        c.TimeZone,
		Manager:         c.Manager,
		TestAccount:     c.TestAccount,
	}, nil
}
