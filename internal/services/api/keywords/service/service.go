// Package service contains keywords workflows
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/batch"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/gads/gaql"
	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/services/api/keywords/domain"
)

// Service defines the keywords service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the keywords service
type Svc struct {
	ads   client.Transport
	creds auth.Credentials
}

// New constructs a keywords service
func New(ads client.Transport, creds auth.Credentials) *Svc {
	if ads == nil {
		panic("keywords.Service requires a non nil Transport")
	}
	return &Svc{ads: ads, creds: creds}
}

// List returns keyword criteria under an ad group or campaign
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Row, error) {
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

	conds := []gaql.Condition{gaql.Eq("ad_group_criterion.type", "KEYWORD")}
	if in.CampaignID != "" {
		campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
		if err != nil {
			return nil, err
		}
		conds = append(conds, gaql.EqID("campaign.id", campaignID))
	}
	if in.AdGroupID != "" {
		adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
		if err != nil {
			return nil, err
		}
		conds = append(conds, gaql.EqID("ad_group.id", adGroupID))
	}
	if in.Status != "" {
		c, err := gaql.StatusEq("ad_group_criterion.status", in.Status)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}

	q := fmt.Sprintf(`SELECT
  ad_group_criterion.criterion_id,
  ad_group_criterion.keyword.text,
  ad_group_criterion.keyword.match_type,
  ad_group_criterion.status,
  ad_group_criterion.cpc_bid_micros,
  ad_group_criterion.negative,
  ad_group.id
FROM keyword_view
%s
LIMIT %d`, gaql.Where(conds...), limit)

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "keywords.list")
	}

	out := make([]domain.Row, 0, len(rows))
	for _, r := range rows {
		var agc struct {
			CriterionID string `json:"criterionId"`
			Status      string `json:"status"`
			CPCBid      string `json:"cpcBidMicros"`
			Negative    bool   `json:"negative"`
			Keyword     struct {
				Text      string `json:"text"`
				MatchType string `json:"matchType"`
			} `json:"keyword"`
		}
		if ok, derr := r.Decode("adGroupCriterion", &agc); derr != nil || !ok {
			continue
		}
		row := domain.Row{
			CriterionID: agc.CriterionID,
			Text:        agc.Keyword.Text,
			MatchType:   agc.Keyword.MatchType,
			Status:      agc.Status,
			Negative:    agc.Negative,
		}
		if agc.CPCBid != "" {
			if micros, convErr := strconv.ParseInt(agc.CPCBid, 10, 64); convErr == nil {
				row.CPCBid = client.Units(micros)
			}
		}
		var ag struct {
			ID string `json:"id"`
		}
		if ok, derr := r.Decode("adGroup", &ag); derr == nil && ok {
			row.AdGroupID = ag.ID
		}
		out = append(out, row)
	}
	return out, nil
}

// Add submits a keyword batch against one ad group. Duplicate text plus
// match type pairs collapse to the first occurrence
func (s *Svc) Add(ctx context.Context, in domain.AddInput) (*domain.BatchResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]batch.Item, 0, len(in.Keywords))
	for _, kw := range in.Keywords {
		items = append(items, batch.KeywordItem{
			AdGroupID: in.AdGroupID,
			Status:    kw.Status,
			Keyword: validate.KeywordInput{
				Text:         kw.Text,
				MatchType:    kw.MatchType,
				CPCBidMicros: client.Micros(kw.CPCBid),
			},
		})
	}
	res, err := batch.Execute(ctx, s.ads, batch.KindKeywordAdd, cid, items, batch.Options{
		ValidateOnly: in.ValidateOnly,
	})
	if err != nil {
		return nil, perr.WithOp(err, "keywords.add")
	}
	return res, nil
}

// Update patches bid, status, or final URL on one keyword criterion
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
	if err != nil {
		return nil, err
	}
	criterionID, err := validate.NumericID(in.CriterionID, "criterion_id")
	if err != nil {
		return nil, err
	}

	update := map[string]any{
		"resourceName": client.CompositeResourceName("adGroupCriteria", cid, adGroupID, criterionID),
	}
	var mask []string
	if in.CPCBid > 0 {
		update["cpcBidMicros"] = strconv.FormatInt(client.Micros(in.CPCBid), 10)
		mask = append(mask, "cpc_bid_micros")
	}
	if in.Status != "" {
		status, err := validate.Status(in.Status)
		if err != nil {
			return nil, err
		}
		update["status"] = status
		mask = append(mask, "status")
	}
	if in.FinalURL != "" {
		update["finalUrls"] = []string{in.FinalURL}
		mask = append(mask, "final_urls")
	}
	if len(mask) == 0 {
		return nil, perr.Validationf("update requires at least one of cpc_bid, status, final_url")
	}

	op := client.Operation{"adGroupCriterionOperation": map[string]any{
		"update":     update,
		"updateMask": strings.Join(mask, ","),
	}}
	return s.mutateOne(ctx, cid, op, "keywords.update")
}

// Remove deletes one keyword criterion
func (s *Svc) Remove(ctx context.Context, in domain.RemoveInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
	if err != nil {
		return nil, err
	}
	criterionID, err := validate.NumericID(in.CriterionID, "criterion_id")
	if err != nil {
		return nil, err
	}

	op := client.Operation{"adGroupCriterionOperation": map[string]any{
		"remove": client.CompositeResourceName("adGroupCriteria", cid, adGroupID, criterionID),
	}}
	return s.mutateOne(ctx, cid, op, "keywords.remove")
}

// AddNegative attaches a negative keyword at the campaign level
func (s *Svc) AddNegative(ctx context.Context, in domain.NegativeInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
	if err != nil {
		return nil, err
	}
	matchType, err := validate.Enum("match_type", in.MatchType)
	if err != nil {
		return nil, err
	}

	op := client.Operation{"campaignCriterionOperation": map[string]any{
		"create": map[string]any{
			"campaign": client.ResourceName("campaigns", cid, campaignID),
			"negative": true,
			"keyword": map[string]any{
				"text":      in.Text,
				"matchType": matchType,
			},
		},
	}}
	return s.mutateOne(ctx, cid, op, "keywords.add_negative")
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
