// Package client speaks the Google Ads REST surface. Services consume the
// Transport interface; the REST implementation rides the auth manager's
// handle and runs every failure through the error classifier
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"adsbridge/internal/gads/auth"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/platform/logger"
)

const (
	baseURL     = "https://googleads.googleapis.com/v23"
	callTimeout = 30 * time.Second
)

// Row is one result row from a search call, keyed by resource
// (campaign, adGroup, metrics, segments, ...)
type Row map[string]json.RawMessage

// Operation is one mutate operation in REST form, e.g.
// {"campaignOperation": {"create": {...}}}
type Operation map[string]any

// MutateOptions tunes a mutate call
type MutateOptions struct {
	// PartialFailure lets valid operations land while invalid ones report
	// per-operation errors instead of failing the whole call
	PartialFailure bool
	// ValidateOnly runs server-side validation without applying anything
	ValidateOnly bool
}

// MutateResult is the outcome of one operation
type MutateResult struct {
	ResourceName string
}

// ItemError is a per-operation failure extracted from a partial failure
type ItemError struct {
	Index   int
	Message string
}

// MutateResponse is the merged outcome of a mutate call
type MutateResponse struct {
	Results    []MutateResult
	ItemErrors []ItemError
}

// Transport is the outbound surface services depend on
type Transport interface {
	Search(ctx context.Context, customerID, query string) ([]Row, error)
	Mutate(ctx context.Context, customerID string, ops []Operation, opts MutateOptions) (*MutateResponse, error)
}

// AccessibleLister is the optional discovery surface: transports that can
// enumerate the customer ids reachable with the configured credentials
// implement it. Callers type-assert because discovery rides a dedicated
// endpoint, not GAQL
type AccessibleLister interface {
	ListAccessible(ctx context.Context) ([]string, error)
}

// REST implements Transport against googleads.googleapis.com
type REST struct {
	mgr *auth.Manager

	// base is swappable for tests
	base string
}

// NewREST builds the real transport over the auth manager
func NewREST(mgr *auth.Manager) *REST {
	return &REST{mgr: mgr, base: baseURL}
}

// Search runs a GAQL query through searchStream and returns the flattened rows
func (c *REST) Search(ctx context.Context, customerID, query string) ([]Row, error) {
	body := map[string]any{"query": query}
	raw, err := c.post(ctx, fmt.Sprintf("/customers/%s/googleAds:searchStream", customerID), body)
	if err != nil {
		return nil, err
	}

	// searchStream returns an array of result batches
	var batches []struct {
		Results []Row `json:"results"`
	}
	if err := json.Unmarshal(raw, &batches); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnexpected, "malformed search response")
	}
	var rows []Row
	for _, b := range batches {
		rows = append(rows, b.Results...)
	}
	return rows, nil
}

// Mutate submits operations through googleAds:mutate
func (c *REST) Mutate(
	ctx context.Context,
	customerID string,
	ops []Operation,
	opts MutateOptions,
) (*MutateResponse, error) {
	body := map[string]any{
		"mutateOperations": ops,
		"partialFailure":   opts.PartialFailure,
	}
	if opts.ValidateOnly {
		body["validateOnly"] = true
	}
	raw, err := c.post(ctx, fmt.Sprintf("/customers/%s/googleAds:mutate", customerID), body)
	if err != nil {
		return nil, err
	}

	var wire struct {
		Responses []struct {
			CampaignResult       *resourceResult `json:"campaignResult"`
			AdGroupResult        *resourceResult `json:"adGroupResult"`
			AdGroupAdResult      *resourceResult `json:"adGroupAdResult"`
			AdGroupCriterionRes  *resourceResult `json:"adGroupCriterionResult"`
			CampaignCriterionRes *resourceResult `json:"campaignCriterionResult"`
			CampaignBudgetResult *resourceResult `json:"campaignBudgetResult"`
			AssetResult          *resourceResult `json:"assetResult"`
			ConversionResult     *resourceResult `json:"conversionActionResult"`
		} `json:"mutateOperationResponses"`
		PartialFailureError *json.RawMessage `json:"partialFailureError"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnexpected, "malformed mutate response")
	}

	out := &MutateResponse{}
	for _, r := range wire.Responses {
		name := ""
		for _, res := range []*resourceResult{
			r.CampaignResult, r.AdGroupResult, r.AdGroupAdResult,
			r.AdGroupCriterionRes, r.CampaignCriterionRes,
			r.CampaignBudgetResult, r.AssetResult, r.ConversionResult,
		} {
			if res != nil {
				name = res.ResourceName
				break
			}
		}
		out.Results = append(out.Results, MutateResult{ResourceName: name})
	}
	if wire.PartialFailureError != nil {
		out.ItemErrors = decodePartialFailure(*wire.PartialFailureError)
	}
	return out, nil
}

// ListAccessible enumerates customers the refresh token can act on.
// Returns bare customer ids, not resource names
func (c *REST) ListAccessible(ctx context.Context) ([]string, error) {
	raw, err := c.get(ctx, "/customers:listAccessibleCustomers")
	if err != nil {
		return nil, err
	}

	var wire struct {
		ResourceNames []string `json:"resourceNames"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnexpected, "malformed customer list response")
	}
	out := make([]string, 0, len(wire.ResourceNames))
	for _, rn := range wire.ResourceNames {
		out = append(out, strings.TrimPrefix(rn, "customers/"))
	}
	return out, nil
}

type resourceResult struct {
	ResourceName string `json:"resourceName"`
}

// post sends one JSON call with the per-call timeout and classifies failures
func (c *REST) post(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnexpected, "encode request")
	}
	return c.do(ctx, http.MethodPost, path, payload)
}

// get sends one body-less call with the per-call timeout
func (c *REST) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *REST) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	h, err := c.mgr.Client(ctx)
	if err != nil {
		return nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(cctx, method, c.base+path, body)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnexpected, "build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("developer-token", h.DeveloperToken)
	if h.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", h.LoginCustomerID)
	}

	start := time.Now()
	resp, err := h.HTTP.Do(req)
	if err != nil {
		return nil, perr.FromGoogleAdsf(err, "google ads call failed: %s", path)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.C(ctx).Warn().Err(cerr).Msg("close response body")
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, perr.FromGoogleAdsf(err, "read response: %s", path)
	}

	logger.C(ctx).Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("google ads call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, perr.FromGoogleAdsf(
			perr.DecodeAPIError(resp.StatusCode, raw),
			"google ads call failed: %s", path,
		)
	}
	return raw, nil
}

// decodePartialFailure pulls per-operation failures out of the
// google.rpc.Status payload. Each error's location names the operation
// index it belongs to
func decodePartialFailure(raw json.RawMessage) []ItemError {
	var status struct {
		Details []struct {
			Errors []struct {
				Message  string `json:"message"`
				Location struct {
					FieldPathElements []struct {
						FieldName string `json:"fieldName"`
						Index     *int   `json:"index"`
					} `json:"fieldPathElements"`
				} `json:"location"`
			} `json:"errors"`
		} `json:"details"`
	}
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil
	}
	var out []ItemError
	for _, d := range status.Details {
		for _, e := range d.Errors {
			idx := -1
			for _, fp := range e.Location.FieldPathElements {
				if fp.FieldName == "mutate_operations" || fp.FieldName == "operations" {
					if fp.Index != nil {
						idx = *fp.Index
					}
					break
				}
			}
			out = append(out, ItemError{Index: idx, Message: e.Message})
		}
	}
	return out
}
