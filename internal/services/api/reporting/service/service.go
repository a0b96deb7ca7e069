// Package service contains reporting workflows
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/gads/gaql"
	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/services/api/reporting/domain"
)

// Service defines the reporting service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the reporting service
type Svc struct {
	ads   client.Transport
	creds auth.Credentials
}

// New constructs a reporting service
func New(ads client.Transport, creds auth.Credentials) *Svc {
	if ads == nil {
		panic("reporting.Service requires a non nil Transport")
	}
	return &Svc{ads: ads, creds: creds}
}

const metricFields = `metrics.impressions,
  metrics.clicks,
  metrics.cost_micros,
  metrics.conversions,
  metrics.ctr,
  metrics.average_cpc`

// Campaigns runs the campaign performance report over the window
func (s *Svc) Campaigns(ctx context.Context, in domain.CampaignsInput) ([]domain.CampaignRow, error) {
	cid, limit, dateCond, err := s.reportScope(in.CustomerID, in.Limit, 50, in.Window)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT
  campaign.id,
  campaign.name,
  campaign.status,
  %s
FROM campaign
%s
ORDER BY metrics.cost_micros DESC
LIMIT %d`, metricFields, gaql.Where(dateCond), limit)

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "reporting.campaigns")
	}

	out := make([]domain.CampaignRow, 0, len(rows))
	for _, r := range rows {
		var c struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Status string `json:"status"`
		}
		if ok, derr := r.Decode("campaign", &c); derr != nil || !ok {
			continue
		}
		out = append(out, domain.CampaignRow{
			CampaignID:   c.ID,
			CampaignName: c.Name,
			Status:       c.Status,
			Metrics:      decodeMetrics(r),
		})
	}
	return out, nil
}

// AdGroups runs the ad group performance report over the window
func (s *Svc) AdGroups(ctx context.Context, in domain.AdGroupsInput) ([]domain.AdGroupRow, error) {
	cid, limit, dateCond, err := s.reportScope(in.CustomerID, in.Limit, 50, in.Window)
	if err != nil {
		return nil, err
	}

	conds := []gaql.Condition{dateCond}
	if in.CampaignID != "" {
		campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
		if err != nil {
			return nil, err
		}
		conds = append(conds, gaql.EqID("campaign.id", campaignID))
	}

	q := fmt.Sprintf(`SELECT
  ad_group.id,
  ad_group.name,
  ad_group.status,
  campaign.name,
  %s
FROM ad_group
%s
ORDER BY metrics.cost_micros DESC
LIMIT %d`, metricFields, gaql.Where(conds...), limit)

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "reporting.adgroups")
	}

	out := make([]domain.AdGroupRow, 0, len(rows))
	for _, r := range rows {
		var ag struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Status string `json:"status"`
		}
		if ok, derr := r.Decode("adGroup", &ag); derr != nil || !ok {
			continue
		}
		row := domain.AdGroupRow{
			AdGroupID:   ag.ID,
			AdGroupName: ag.Name,
			Status:      ag.Status,
			Metrics:     decodeMetrics(r),
		}
		var c struct {
			Name string `json:"name"`
		}
		if ok, derr := r.Decode("campaign", &c); derr == nil && ok {
			row.CampaignName = c.Name
		}
		out = append(out, row)
	}
	return out, nil
}

// Keywords runs the keyword performance report over the window
func (s *Svc) Keywords(ctx context.Context, in domain.KeywordsInput) ([]domain.KeywordRow, error) {
	cid, limit, dateCond, err := s.reportScope(in.CustomerID, in.Limit, 100, in.Window)
	if err != nil {
		return nil, err
	}

	conds := []gaql.Condition{dateCond}
	if in.AdGroupID != "" {
		adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
		if err != nil {
			return nil, err
		}
		conds = append(conds, gaql.EqID("ad_group.id", adGroupID))
	}

	q := fmt.Sprintf(`SELECT
  ad_group_criterion.criterion_id,
  ad_group_criterion.keyword.text,
  ad_group_criterion.keyword.match_type,
  ad_group.name,
  %s
FROM keyword_view
%s
ORDER BY metrics.cost_micros DESC
LIMIT %d`, metricFields, gaql.Where(conds...), limit)

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "reporting.keywords")
	}

	out := make([]domain.KeywordRow, 0, len(rows))
	for _, r := range rows {
		var agc struct {
			CriterionID string `json:"criterionId"`
			Keyword     struct {
				Text      string `json:"text"`
				MatchType string `json:"matchType"`
			} `json:"keyword"`
		}
		if ok, derr := r.Decode("adGroupCriterion", &agc); derr != nil || !ok {
			continue
		}
		row := domain.KeywordRow{
			CriterionID: agc.CriterionID,
			Text:        agc.Keyword.Text,
			MatchType:   agc.Keyword.MatchType,
			Metrics:     decodeMetrics(r),
		}
		var ag struct {
			Name string `json:"name"`
		}
		if ok, derr := r.Decode("adGroup", &ag); derr == nil && ok {
			row.AdGroupName = ag.Name
		}
		out = append(out, row)
	}
	return out, nil
}

// SearchTerms runs the search terms report over the window
func (s *Svc) SearchTerms(ctx context.Context, in domain.SearchTermsInput) ([]domain.SearchTermRow, error) {
	cid, limit, dateCond, err := s.reportScope(in.CustomerID, in.Limit, 100, in.Window)
	if err != nil {
		return nil, err
	}

	conds := []gaql.Condition{dateCond}
	if in.CampaignID != "" {
		campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
		if err != nil {
			return nil, err
		}
		conds = append(conds, gaql.EqID("campaign.id", campaignID))
	}

	q := fmt.Sprintf(`SELECT
  search_term_view.search_term,
  segments.search_term_match_type,
  ad_group.name,
  campaign.name,
  %s
FROM search_term_view
%s
ORDER BY metrics.impressions DESC
LIMIT %d`, metricFields, gaql.Where(conds...), limit)

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "reporting.search_terms")
	}

	out := make([]domain.SearchTermRow, 0, len(rows))
	for _, r := range rows {
		var stv struct {
			SearchTerm string `json:"searchTerm"`
		}
		if ok, derr := r.Decode("searchTermView", &stv); derr != nil || !ok {
			continue
		}
		row := domain.SearchTermRow{
			SearchTerm: stv.SearchTerm,
			Metrics:    decodeMetrics(r),
		}
		var seg struct {
			SearchTermMatchType string `json:"searchTermMatchType"`
		}
		if ok, derr := r.Decode("segments", &seg); derr == nil && ok {
			row.MatchedType = seg.SearchTermMatchType
		}
		var ag struct {
			Name string `json:"name"`
		}
		if ok, derr := r.Decode("adGroup", &ag); derr == nil && ok {
			row.AdGroupName = ag.Name
		}
		var c struct {
			Name string `json:"name"`
		}
		if ok, derr := r.Decode("campaign", &c); derr == nil && ok {
			row.CampaignName = c.Name
		}
		out = append(out, row)
	}
	return out, nil
}

// reportScope resolves the shared customer, limit, and window preamble
func (s *Svc) reportScope(customerID string, limit, defaultLimit int, w domain.Window) (string, int, gaql.Condition, error) {
	cid, err := s.creds.ResolveCustomerID(customerID)
	if err != nil {
		return "", 0, "", err
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if limit, err = validate.Limit(limit, 0); err != nil {
		return "", 0, "", err
	}
	dateCond, err := gaql.BuildDateClause(w.DateRange, w.StartDate, w.EndDate, "")
	if err != nil {
		return "", 0, "", err
	}
	return cid, limit, dateCond, nil
}

// decodeMetrics pulls the shared metrics block out of a row. The REST
// surface renders int64 counters as JSON strings
func decodeMetrics(r client.Row) domain.Metrics {
	var m struct {
		Impressions json.Number `json:"impressions"`
		Clicks      json.Number `json:"clicks"`
		CostMicros  json.Number `json:"costMicros"`
		Conversions float64     `json:"conversions"`
		CTR         float64     `json:"ctr"`
		AverageCPC  float64     `json:"averageCpc"`
	}
	out := domain.Metrics{}
	if ok, err := r.Decode("metrics", &m); err != nil || !ok {
		return out
	}
	out.Impressions = asInt64(m.Impressions)
	out.Clicks = asInt64(m.Clicks)
	out.Cost = client.Units(asInt64(m.CostMicros))
	out.Conversions = m.Conversions
	out.CTR = m.CTR
	// averageCpc arrives in micros
	out.AverageCPC = client.Units(int64(m.AverageCPC))
	return out
}

func asInt64(n json.Number) int64 {
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
