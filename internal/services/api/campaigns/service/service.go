// Package service contains campaigns workflows
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
	"adsbridge/internal/services/api/campaigns/domain"
)

// Service defines the campaigns service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the campaigns service
type Svc struct {
	ads   client.Transport
	creds auth.Credentials
}

// New constructs a campaigns service
func New(ads client.Transport, creds auth.Credentials) *Svc {
	if ads == nil {
		panic("campaigns.Service requires a non nil Transport")
	}
	return &Svc{ads: ads, creds: creds}
}

const listFields = `SELECT
  campaign.id,
  campaign.name,
  campaign.status,
  campaign.advertising_channel_type,
  campaign.bidding_strategy_type,
  campaign.campaign_budget,
  campaign.start_date,
  campaign.end_date,
  campaign.serving_status,
  campaign.optimization_score,
  campaign_budget.amount_micros
FROM campaign`

// List returns campaigns in the account, optionally filtered by status
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

	var statusCond gaql.Condition
	if in.Status != "" {
		if statusCond, err = gaql.StatusEq("campaign.status", in.Status); err != nil {
			return nil, err
		}
	}

	q := listFields
	if w := gaql.Where(statusCond); w != "" {
		q += "\n" + w
	}
	q += fmt.Sprintf("\nORDER BY campaign.id\nLIMIT %d", limit)

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "campaigns.list")
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

// Get fetches one campaign by id
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (*domain.Row, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
	if err != nil {
		return nil, err
	}

	q := listFields + "\n" + gaql.Where(gaql.EqID("campaign.id", campaignID)) + "\nLIMIT 1"
	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "campaigns.get")
	}
	if len(rows) == 0 {
		return nil, perr.NotFoundf("campaign %s not found", campaignID)
	}
	return decodeRow(rows[0])
}

// Create makes a new campaign. New campaigns start PAUSED unless the
// caller explicitly asks for ENABLED, so nothing spends by accident
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}

	channel := in.ChannelType
	if channel == "" {
		channel = "SEARCH"
	}
	if channel, err = validate.Enum("channel_type", channel); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = "PAUSED"
	}
	if err := orderedDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	create := map[string]any{
		"name":                   in.Name,
		"status":                 status,
		"advertisingChannelType": channel,
		"campaignBudget":         in.BudgetResource,
	}
	if in.StartDate != "" {
		create["startDate"] = in.StartDate
	}
	if in.EndDate != "" {
		create["endDate"] = in.EndDate
	}
	if channel == "SEARCH" {
		ns := map[string]any{"targetGoogleSearch": true, "targetSearchNetwork": false}
		if in.TargetGoogleSrch != nil {
			ns["targetGoogleSearch"] = *in.TargetGoogleSrch
		}
		if in.TargetSearchNet != nil {
			ns["targetSearchNetwork"] = *in.TargetSearchNet
		}
		create["networkSettings"] = ns
	}

	op := client.Operation{"campaignOperation": map[string]any{"create": create}}
	return s.mutateOne(ctx, cid, op, "campaigns.create")
}

// Update patches name and flight dates on an existing campaign
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
	if err != nil {
		return nil, err
	}
	if err := orderedDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	update := map[string]any{
		"resourceName": client.ResourceName("campaigns", cid, campaignID),
	}
	var mask []string
	if in.Name != "" {
		update["name"] = in.Name
		mask = append(mask, "name")
	}
	if in.StartDate != "" {
		update["startDate"] = in.StartDate
		mask = append(mask, "start_date")
	}
	if in.EndDate != "" {
		update["endDate"] = in.EndDate
		mask = append(mask, "end_date")
	}
	if len(mask) == 0 {
		return nil, perr.Validationf("update requires at least one of name, start_date, end_date")
	}

	op := client.Operation{"campaignOperation": map[string]any{
		"update":     update,
		"updateMask": strings.Join(mask, ","),
	}}
	return s.mutateOne(ctx, cid, op, "campaigns.update")
}

// SetStatus flips a campaign between ENABLED, PAUSED, and REMOVED
func (s *Svc) SetStatus(ctx context.Context, in domain.StatusInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
	if err != nil {
		return nil, err
	}
	status, err := validate.Status(in.Status)
	if err != nil {
		return nil, err
	}

	op := client.Operation{"campaignOperation": map[string]any{
		"update": map[string]any{
			"resourceName": client.ResourceName("campaigns", cid, campaignID),
			"status":       status,
		},
		"updateMask": "status",
	}}
	return s.mutateOne(ctx, cid, op, "campaigns.set_status")
}

// Remove deletes a campaign. The API keeps removed campaigns readable
// but they never serve again
func (s *Svc) Remove(ctx context.Context, in domain.RemoveInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
	if err != nil {
		return nil, err
	}

	op := client.Operation{"campaignOperation": map[string]any{
		"remove": client.ResourceName("campaigns", cid, campaignID),
	}}
	return s.mutateOne(ctx, cid, op, "campaigns.remove")
}

// mutateOne submits a single operation without partial failure, so any
// rejection surfaces as a classified error
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
	var c struct {
		ID                     string  `json:"id"`
		Name                   string  `json:"name"`
		Status                 string  `json:"status"`
		AdvertisingChannelType string  `json:"advertisingChannelType"`
		BiddingStrategyType    string  `json:"biddingStrategyType"`
		CampaignBudget         string  `json:"campaignBudget"`
		StartDate              string  `json:"startDate"`
		EndDate                string  `json:"endDate"`
		ServingStatus          string  `json:"servingStatus"`
		OptimizationScore      float64 `json:"optimizationScore"`
	}
	if ok, err := r.Decode("campaign", &c); err != nil || !ok {
		return nil, perr.Unexpectedf("malformed campaign row")
	}
	row := &domain.Row{
		ID:                  c.ID,
		Name:                c.Name,
		Status:              c.Status,
		ChannelType:         c.AdvertisingChannelType,
		BiddingStrategyType: c.BiddingStrategyType,
		BudgetResourceName:  c.CampaignBudget,
		StartDate:           c.StartDate,
		EndDate:             c.EndDate,
		ServingStatus:       c.ServingStatus,
		OptimizationScore:   c.OptimizationScore,
	}

	// REST renders int64 amounts as strings
	var b struct {
		AmountMicros string `json:"amountMicros"`
	}
	if ok, err := r.Decode("campaignBudget", &b); err == nil && ok && b.AmountMicros != "" {
		if micros, convErr := strconv.ParseInt(b.AmountMicros, 10, 64); convErr == nil {
			row.BudgetAmount = client.Units(micros)
		}
	}
	return row, nil
}

// orderedDates rejects a flight where the start is after the end
func orderedDates(start, end string) error {
	if start != "" {
		if _, err := validate.Date(start); err != nil {
			return perr.WithField(err, "start_date")
		}
	}
	if end != "" {
		if _, err := validate.Date(end); err != nil {
			return perr.WithField(err, "end_date")
		}
	}
	if start != "" && end != "" && start > end {
		return perr.WithField(perr.Validationf("start_date %s is after end_date %s", start, end), "start_date")
	}
	return nil
}
