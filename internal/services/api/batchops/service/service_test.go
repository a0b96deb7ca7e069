package service

import (
	"context"
	"testing"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/services/api/batchops/domain"
)

type fakeTransport struct {
	ops  [][]client.Operation
	opts []client.MutateOptions
}

func (f *fakeTransport) Search(context.Context, string, string) ([]client.Row, error) {
	return nil, nil
}

func (f *fakeTransport) Mutate(
	_ context.Context, _ string, ops []client.Operation, opts client.MutateOptions,
) (*client.MutateResponse, error) {
	f.ops = append(f.ops, ops)
	f.opts = append(f.opts, opts)
	out := &client.MutateResponse{}
	for range ops {
		out.Results = append(out.Results, client.MutateResult{ResourceName: "customers/1234567890/things/1"})
	}
	return out, nil
}

func testCreds() auth.Credentials {
	return auth.Credentials{DefaultCustomerID: "1234567890"}
}

func TestSetStatusesDedupsAndMerges(t *testing.T) {
	tr := &fakeTransport{}
	s := New(tr, testCreds())

	res, err := s.SetStatuses(context.Background(), domain.StatusInput{
		Changes: []domain.StatusChange{
			{ResourceType: "campaign", ID: "11", Status: "PAUSED"},
			{ResourceType: "campaign", ID: "11", Status: "PAUSED"},
			{ResourceType: "ad_group", ID: "22", Status: "ENABLED"},
		},
	})
	if err != nil {
		t.Fatalf("SetStatuses: %v", err)
	}
	if res.Submitted != 3 || res.Duplicates != 1 {
		t.Fatalf("submitted=%d duplicates=%d", res.Submitted, res.Duplicates)
	}
	if len(tr.ops[0]) != 2 {
		t.Fatalf("ops = %d, want 2 after dedup", len(tr.ops[0]))
	}
	if !tr.opts[0].PartialFailure {
		t.Fatalf("batches must run with partial failure")
	}
	if len(res.Succeeded) != 3 {
		t.Fatalf("succeeded = %d, want 3 (duplicate mirrors first)", len(res.Succeeded))
	}
}

func TestSetStatusesCeiling(t *testing.T) {
	tr := &fakeTransport{}
	s := New(tr, testCreds())

	changes := make([]domain.StatusChange, 101)
	for i := range changes {
		changes[i] = domain.StatusChange{ResourceType: "campaign", ID: "1", Status: "PAUSED"}
	}
	_, err := s.SetStatuses(context.Background(), domain.StatusInput{Changes: changes})
	if perr.CodeOf(err) != perr.ErrorCodeBatchTooLarge {
		t.Fatalf("code = %v, want batch too large", perr.CodeOf(err))
	}
	if len(tr.ops) != 0 {
		t.Fatalf("oversize batch must not reach the transport")
	}
}

func TestSetStatusesLocalFailureDoesNotAbort(t *testing.T) {
	tr := &fakeTransport{}
	s := New(tr, testCreds())

	res, err := s.SetStatuses(context.Background(), domain.StatusInput{
		Changes: []domain.StatusChange{
			{ResourceType: "campaign", ID: "11", Status: "PAUSED"},
			// REMOVED stays outside the batch status allow-list
			{ResourceType: "campaign", ID: "12", Status: "REMOVED"},
		},
	})
	if err != nil {
		t.Fatalf("SetStatuses: %v", err)
	}
	if len(res.Succeeded) != 1 || len(res.Failed) != 1 {
		t.Fatalf("succeeded=%d failed=%d", len(res.Succeeded), len(res.Failed))
	}
	if len(tr.ops[0]) != 1 {
		t.Fatalf("only the valid change should ship, got %d ops", len(tr.ops[0]))
	}
}

func TestImportConversionsValidateOnly(t *testing.T) {
	tr := &fakeTransport{}
	s := New(tr, testCreds())

	res, err := s.ImportConversions(context.Background(), domain.ConversionsInput{
		ValidateOnly: true,
		Conversions: []domain.Conversion{{
			GCLID:              "Cj0KCQjw",
			ConversionAction:   "998877",
			ConversionDateTime: "2026-08-20 14:05:00+00:00",
			Value:              49.99,
			CurrencyCode:       "USD",
		}},
	})
	if err != nil {
		t.Fatalf("ImportConversions: %v", err)
	}
	if !tr.opts[0].ValidateOnly {
		t.Fatalf("validate_only must pass through")
	}
	if len(res.Succeeded) != 1 {
		t.Fatalf("succeeded = %d, want 1", len(res.Succeeded))
	}

	op := tr.ops[0][0]
	conv, ok := op["clickConversion"].(map[string]any)
	if !ok {
		t.Fatalf("op = %+v", op)
	}
	if conv["conversionAction"] != "customers/1234567890/conversionActions/998877" {
		t.Fatalf("conversionAction = %v", conv["conversionAction"])
	}
}

func TestCreateSitelinksCasefoldDedup(t *testing.T) {
	tr := &fakeTransport{}
	s := New(tr, testCreds())

	res, err := s.CreateSitelinks(context.Background(), domain.SitelinksInput{
		Sitelinks: []domain.Sitelink{
			{LinkText: "Shop Sale", FinalURL: "https://example.com/sale"},
			{LinkText: "shop sale", FinalURL: "HTTPS://EXAMPLE.COM/SALE"},
		},
	})
	if err != nil {
		t.Fatalf("CreateSitelinks: %v", err)
	}
	if res.Duplicates != 1 {
		t.Fatalf("duplicates = %d, want 1", res.Duplicates)
	}
	if len(tr.ops[0]) != 1 {
		t.Fatalf("ops = %d, want 1 after casefold dedup", len(tr.ops[0]))
	}
}
