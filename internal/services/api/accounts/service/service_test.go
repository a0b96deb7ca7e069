package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/services/api/accounts/domain"
)

type fakeTransport struct {
	rows []client.Row

	searchQueries []string
	searchErr     error

	accessible    []string
	accessibleErr error
}

func (f *fakeTransport) Search(_ context.Context, _, query string) ([]client.Row, error) {
	f.searchQueries = append(f.searchQueries, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.rows, nil
}

func (f *fakeTransport) Mutate(
	_ context.Context, _ string, _ []client.Operation, _ client.MutateOptions,
) (*client.MutateResponse, error) {
	return &client.MutateResponse{}, nil
}

func (f *fakeTransport) ListAccessible(_ context.Context) ([]string, error) {
	if f.accessibleErr != nil {
		return nil, f.accessibleErr
	}
	return f.accessible, nil
}

// searchOnly lacks the discovery surface on purpose
type searchOnly struct{}

func (searchOnly) Search(_ context.Context, _, _ string) ([]client.Row, error) {
	return nil, nil
}

func (searchOnly) Mutate(
	_ context.Context, _ string, _ []client.Operation, _ client.MutateOptions,
) (*client.MutateResponse, error) {
	return &client.MutateResponse{}, nil
}

func testCreds() auth.Credentials {
	return auth.Credentials{DefaultCustomerID: "1234567890"}
}

func TestListAccessibleBuildsResourceNames(t *testing.T) {
	tr := &fakeTransport{accessible: []string{"1234567890", "9876543210"}}
	s := New(tr, testCreds())

	out, err := s.ListAccessible(context.Background())
	if err != nil {
		t.Fatalf("ListAccessible: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("accounts = %d, want 2", len(out))
	}
	if out[0].ID != "1234567890" || out[0].ResourceName != "customers/1234567890" {
		t.Fatalf("account = %+v", out[0])
	}
}

func TestListAccessibleRequiresDiscoverySurface(t *testing.T) {
	s := New(searchOnly{}, testCreds())

	_, err := s.ListAccessible(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnexpected) {
		t.Fatalf("code = %v, want unexpected", perr.CodeOf(err))
	}
}

func TestListClientsDecodesAndLimits(t *testing.T) {
	tr := &fakeTransport{rows: []client.Row{{
		"customerClient": json.RawMessage(`{
			"id": "555",
			"descriptiveName": "Acme Retail",
			"level": 1,
			"manager": false,
			"status": "ENABLED",
			"currencyCode": "USD",
			"timeZone": "Europe/Berlin"
		}`),
	}}}
	s := New(tr, testCreds())

	rows, err := s.ListClients(context.Background(), domain.ListClientsInput{})
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "555" || rows[0].CurrencyCode != "USD" {
		t.Fatalf("rows = %+v", rows)
	}

	q := tr.searchQueries[0]
	if !strings.Contains(q, "FROM customer_client") {
		t.Fatalf("query missing resource:\n%s", q)
	}
	if !strings.Contains(q, "LIMIT 100") {
		t.Fatalf("query missing default limit:\n%s", q)
	}
}

func TestInfoNotFoundOnEmptyResult(t *testing.T) {
	tr := &fakeTransport{}
	s := New(tr, testCreds())

	_, err := s.Info(context.Background(), domain.InfoInput{CustomerID: "111-222-3330"})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("code = %v, want not found", perr.CodeOf(err))
	}
	if !strings.Contains(tr.searchQueries[0], "FROM customer") {
		t.Fatalf("query = %q", tr.searchQueries[0])
	}
}
