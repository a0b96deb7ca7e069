// Package service contains the raw GAQL passthrough workflow
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/gads/gaql"
	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/services/api/search/domain"
)

// Service defines the search service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the search service
type Svc struct {
	ads   client.Transport
	creds auth.Credentials
}

// New constructs a search service
func New(ads client.Transport, creds auth.Credentials) *Svc {
	if ads == nil {
		panic("search.Service requires a non nil Transport")
	}
	return &Svc{ads: ads, creds: creds}
}

// Query runs a guarded raw GAQL SELECT. The guard rejects anything that
// is not a plain read before the query leaves the process
func (s *Svc) Query(ctx context.Context, in domain.QueryInput) (*domain.QueryResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	q, err := gaql.GuardSelectOnly(in.Query)
	if err != nil {
		return nil, err
	}
	if in.Limit > 0 {
		limit, err := validate.Limit(in.Limit, 0)
		if err != nil {
			return nil, err
		}
		// append a LIMIT only when the caller's query carries none
		if !gaql.ContainsKeyword(q, "LIMIT") {
			q = fmt.Sprintf("%s LIMIT %d", q, limit)
		}
	}

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "search.query")
	}

	out := &domain.QueryResult{
		RowCount: len(rows),
		Rows:     make([]map[string]json.RawMessage, 0, len(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, r)
	}
	return out, nil
}
