// Package service contains adgroups workflows
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/gads/gaql"
	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/services/api/adgroups/domain"
)

// Service defines the adgroups service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the adgroups service
type Svc struct {
	ads   client.Transport
	creds auth.Credentials
}

// New constructs an adgroups service
func New(ads client.Transport, creds auth.Credentials) *Svc {
	if ads == nil {
		panic("adgroups.Service requires a non nil Transport")
	}
	return &Svc{ads: ads, creds: creds}
}

const listFields = `SELECT
  ad_group.id,
  ad_group.name,
  ad_group.status,
  ad_group.type,
  ad_group.cpc_bid_micros,
  campaign.id,
  campaign.name
FROM ad_group`

// List returns ad groups, scoped to one campaign when requested
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Row, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit == 0 {
		limit = 50
	}
	if limit, err = validate.Limit(limit, 0); err != nil {
		return nil, err
	}

	var conds []gaql.Condition
	if in.CampaignID != "" {
		campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
		if err != nil {
			return nil, err
		}
		conds = append(conds, gaql.EqID("campaign.id", campaignID))
	}
	if in.Status != "" {
		c, err := gaql.StatusEq("ad_group.status", in.Status)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}

	q := listFields
	if w := gaql.Where(conds...); w != "" {
		q += "\n" + w
	}
	q += fmt.Sprintf("\nORDER BY ad_group.id\nLIMIT %d", limit)

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "adgroups.list")
	}

	out := make([]domain.Row, 0, len(rows))
	for _, r := range rows {
		row, err := decodeRow(r)
		if err != nil {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

// Get fetches one ad group by id
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (*domain.Row, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
	if err != nil {
		return nil, err
	}

	q := listFields + "\n" + gaql.Where(gaql.EqID("ad_group.id", adGroupID)) + "\nLIMIT 1"
	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "adgroups.get")
	}
	if len(rows) == 0 {
		return nil, perr.NotFoundf("ad group %s not found", adGroupID)
	}
	return decodeRow(rows[0])
}

// Create makes an ad group under a campaign. Starts PAUSED unless the
// caller explicitly asks for ENABLED
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = "PAUSED"
	}

	create := map[string]any{
		"name":     in.Name,
		"status":   status,
		"campaign": client.ResourceName("campaigns", cid, campaignID),
		"type":     "SEARCH_STANDARD",
	}
	if in.CPCBid > 0 {
		create["cpcBidMicros"] = strconv.FormatInt(client.Micros(in.CPCBid), 10)
	}

	op := client.Operation{"adGroupOperation": map[string]any{"create": create}}
	return s.mutateOne(ctx, cid, op, "adgroups.create")
}

// Update patches ad group name and default CPC bid
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
	if err != nil {
		return nil, err
	}

	update := map[string]any{
		"resourceName": client.ResourceName("adGroups", cid, adGroupID),
	}
	var mask []string
	if in.Name != "" {
		update["name"] = in.Name
		mask = append(mask, "name")
	}
	if in.CPCBid > 0 {
		update["cpcBidMicros"] = strconv.FormatInt(client.Micros(in.CPCBid), 10)
		mask = append(mask, "cpc_bid_micros")
	}
	if len(mask) == 0 {
		return nil, perr.Validationf("update requires at least one of name, cpc_bid")
	}

	op := client.Operation{"adGroupOperation": map[string]any{
		"update":     update,
		"updateMask": strings.Join(mask, ","),
	}}
	return s.mutateOne(ctx, cid, op, "adgroups.update")
}

// SetStatus flips an ad group between ENABLED, PAUSED, and REMOVED
func (s *Svc) SetStatus(ctx context.Context, in domain.StatusInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
	if err != nil {
		return nil, err
	}
	status, err := validate.Status(in.Status)
	if err != nil {
		return nil, err
	}

	op := client.Operation{"adGroupOperation": map[string]any{
		"update": map[string]any{
			"resourceName": client.ResourceName("adGroups", cid, adGroupID),
			"status":       status,
		},
		"updateMask": "status",
	}}
	return s.mutateOne(ctx, cid, op, "adgroups.set_status")
}

func (s *Svc) mutateOne(ctx context.Context, cid string, op client.Operation, opName string) (*domain.MutateResult, error) {
	resp, err := s.ads.Mutate(ctx, cid, []client.Operation{op}, client.MutateOptions{})
	if err != nil {
		return nil, perr.WithOp(err, opName)
	}
	if len(resp.Results) == 0 {
		return nil, perr.Unexpectedf("mutate returned no result")
	}
	return &domain.MutateResult{ResourceName: resp.Results[0].ResourceName}, nil
}

func decodeRow(r client.Row) (*domain.Row, error) {
	var ag struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Status       string `json:"status"`
		Type         string `json:"type"`
		CPCBidMicros string `json:"cpcBidMicros"`
	}
	if ok, err := r.Decode("adGroup", &ag); err != nil || !ok {
		return nil, perr.Unexpectedf("malformed ad group row")
	}
	row := &domain.Row{
		ID:     ag.ID,
		Name:   ag.Name,
		Status: ag.Status,
		Type:   ag.Type,
	}
	if ag.CPCBidMicros != "" {
		if micros, convErr := strconv.ParseInt(ag.CPCBidMicros, 10, 64); convErr == nil {
			row.CPCBid = client.Units(micros)
		}
	}

	var c struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if ok, err := r.Decode("campaign", &c); err == nil && ok {
		row.CampaignID = c.ID
		row.CampaignName = c.Name
	}
	return row, nil
}
