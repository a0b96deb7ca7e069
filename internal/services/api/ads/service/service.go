// Package service contains ads workflows
package service

import (
	"context"
	"fmt"
	"strings"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/gads/gaql"
	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/services/api/ads/domain"
)

// Service defines the ads service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the ads service
type Svc struct {
	ads   client.Transport
	creds auth.Credentials
}

// New constructs an ads service
func New(ads client.Transport, creds auth.Credentials) *Svc {
	if ads == nil {
		panic("ads.Service requires a non nil Transport")
	}
	return &Svc{ads: ads, creds: creds}
}

// Responsive search ad asset bounds, enforced before anything leaves the
// process
const (
	minHeadlines   = 3
	maxHeadlines   = 15
	maxHeadlineLen = 30

	minDescriptions   = 2
	maxDescriptions   = 4
	maxDescriptionLen = 90

	maxPathLen = 15
)

const listFields = `SELECT
  ad_group_ad.ad.id,
  ad_group_ad.ad.name,
  ad_group_ad.ad.type,
  ad_group_ad.status,
  ad_group_ad.ad.final_urls,
  ad_group_ad.ad.responsive_search_ad.headlines,
  ad_group_ad.ad.responsive_search_ad.descriptions,
  ad_group_ad.ad_strength,
  ad_group.id,
  ad_group.name
FROM ad_group_ad`

// List returns ads, optionally scoped by ad group, campaign, or status
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
	if in.AdGroupID != "" {
		adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
		if err != nil {
			return nil, err
		}
		conds = append(conds, gaql.EqID("ad_group.id", adGroupID))
	}
	if in.CampaignID != "" {
		campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
		if err != nil {
			return nil, err
		}
		conds = append(conds, gaql.EqID("campaign.id", campaignID))
	}
	if in.Status != "" {
		c, err := gaql.StatusEq("ad_group_ad.status", in.Status)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}

	q := listFields
	if w := gaql.Where(conds...); w != "" {
		q += "\n" + w
	}
	q += fmt.Sprintf("\nORDER BY ad_group_ad.ad.id ASC\nLIMIT %d", limit)

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "ads.list")
	}

	out := make([]domain.Row, 0, len(rows))
	for _, r := range rows {
		row, err := decodeListRow(r)
		if err != nil {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

const detailFields = `SELECT
  ad_group_ad.ad.id,
  ad_group_ad.ad.name,
  ad_group_ad.ad.type,
  ad_group_ad.status,
  ad_group_ad.ad.final_urls,
  ad_group_ad.ad.final_mobile_urls,
  ad_group_ad.ad.tracking_url_template,
  ad_group_ad.ad.responsive_search_ad.headlines,
  ad_group_ad.ad.responsive_search_ad.descriptions,
  ad_group_ad.ad.responsive_search_ad.path1,
  ad_group_ad.ad.responsive_search_ad.path2,
  ad_group_ad.ad_strength,
  ad_group_ad.policy_summary.approval_status
FROM ad_group_ad`

// Get fetches one ad with its full asset and policy view
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (*domain.Detail, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
	if err != nil {
		return nil, err
	}
	adID, err := validate.NumericID(in.AdID, "ad_id")
	if err != nil {
		return nil, err
	}

	q := detailFields + "\n" +
		gaql.Where(gaql.EqID("ad_group.id", adGroupID), gaql.EqID("ad_group_ad.ad.id", adID)) +
		"\nLIMIT 1"
	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "ads.get")
	}
	if len(rows) == 0 {
		return nil, perr.NotFoundf("ad %s not found in ad group %s", adID, adGroupID)
	}
	return decodeDetail(rows[0])
}

// CreateRSA makes a responsive search ad. New ads start PAUSED unless the
// caller explicitly asks for ENABLED, so nothing serves by accident
func (s *Svc) CreateRSA(ctx context.Context, in domain.CreateRSAInput) (*domain.CreateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
	if err != nil {
		return nil, err
	}
	if err := rsaAssetBounds(in.Headlines, in.Descriptions); err != nil {
		return nil, err
	}
	if err := pathBounds("path1", in.Path1); err != nil {
		return nil, err
	}
	if err := pathBounds("path2", in.Path2); err != nil {
		return nil, err
	}
	if in.FinalURL == "" {
		return nil, perr.WithField(perr.Validationf("final_url is required"), "final_url")
	}
	status := in.Status
	if status == "" {
		status = "PAUSED"
	}

	rsa := map[string]any{
		"headlines":    textAssets(in.Headlines),
		"descriptions": textAssets(in.Descriptions),
	}
	if in.Path1 != "" {
		rsa["path1"] = in.Path1
	}
	if in.Path2 != "" {
		rsa["path2"] = in.Path2
	}

	op := client.Operation{"adGroupAdOperation": map[string]any{
		"create": map[string]any{
			"adGroup": client.ResourceName("adGroups", cid, adGroupID),
			"status":  status,
			"ad": map[string]any{
				"finalUrls":          []string{in.FinalURL},
				"responsiveSearchAd": rsa,
			},
		},
	}}
	res, err := s.mutateOne(ctx, cid, op, "ads.create_rsa")
	if err != nil {
		return nil, err
	}
	return &domain.CreateResult{ResourceName: res.ResourceName, Status: status}, nil
}

// Update patches the landing URL and display paths. Headlines and
// descriptions are immutable on a live ad; a change means a new ad
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
	if err != nil {
		return nil, err
	}
	adID, err := validate.NumericID(in.AdID, "ad_id")
	if err != nil {
		return nil, err
	}

	ad := map[string]any{
		"resourceName": client.ResourceName("ads", cid, adID),
	}
	rsa := map[string]any{}
	var mask []string
	if in.FinalURL != "" {
		ad["finalUrls"] = []string{in.FinalURL}
		mask = append(mask, "ad.final_urls")
	}
	if in.Path1 != nil {
		if err := pathBounds("path1", *in.Path1); err != nil {
			return nil, err
		}
		rsa["path1"] = *in.Path1
		mask = append(mask, "ad.responsive_search_ad.path1")
	}
	if in.Path2 != nil {
		if err := pathBounds("path2", *in.Path2); err != nil {
			return nil, err
		}
		rsa["path2"] = *in.Path2
		mask = append(mask, "ad.responsive_search_ad.path2")
	}
	if len(mask) == 0 {
		return nil, perr.Validationf("update requires at least one of final_url, path1, path2")
	}
	if len(rsa) > 0 {
		ad["responsiveSearchAd"] = rsa
	}

	op := client.Operation{"adGroupAdOperation": map[string]any{
		"update": map[string]any{
			"resourceName": client.CompositeResourceName("adGroupAds", cid, adGroupID, adID),
			"ad":           ad,
		},
		"updateMask": strings.Join(mask, ","),
	}}
	return s.mutateOne(ctx, cid, op, "ads.update")
}

// SetStatus flips an ad between ENABLED, PAUSED, and REMOVED
func (s *Svc) SetStatus(ctx context.Context, in domain.StatusInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
	if err != nil {
		return nil, err
	}
	adID, err := validate.NumericID(in.AdID, "ad_id")
	if err != nil {
		return nil, err
	}
	status, err := validate.Status(in.Status)
	if err != nil {
		return nil, err
	}

	op := client.Operation{"adGroupAdOperation": map[string]any{
		"update": map[string]any{
			"resourceName": client.CompositeResourceName("adGroupAds", cid, adGroupID, adID),
			"status":       status,
		},
		"updateMask": "status",
	}}
	return s.mutateOne(ctx, cid, op, "ads.set_status")
}

// Strength lists ad strength ratings for responsive search ads, weakest
// first, to surface optimization candidates
func (s *Svc) Strength(ctx context.Context, in domain.StrengthInput) ([]domain.StrengthRow, error) {
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

	conds := []gaql.Condition{gaql.Eq("ad_group_ad.ad.type", "RESPONSIVE_SEARCH_AD")}
	if in.AdGroupID != "" {
		adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
		if err != nil {
			return nil, err
		}
		conds = append(conds, gaql.EqID("ad_group.id", adGroupID))
	}
	if in.CampaignID != "" {
		campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
		if err != nil {
			return nil, err
		}
		conds = append(conds, gaql.EqID("campaign.id", campaignID))
	}

	q := `SELECT
  ad_group_ad.ad.id,
  ad_group_ad.ad_strength,
  ad_group_ad.status,
  ad_group.id,
  ad_group.name,
  campaign.id,
  campaign.name
FROM ad_group_ad
` + gaql.Where(conds...) + fmt.Sprintf("\nORDER BY ad_group_ad.ad_strength ASC\nLIMIT %d", limit)

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "ads.strength")
	}

	out := make([]domain.StrengthRow, 0, len(rows))
	for _, r := range rows {
		var aga struct {
			Ad struct {
				ID string `json:"id"`
			} `json:"ad"`
			Status     string `json:"status"`
			AdStrength string `json:"adStrength"`
		}
		if ok, err := r.Decode("adGroupAd", &aga); err != nil || !ok {
			continue
		}
		row := domain.StrengthRow{
			AdID:       aga.Ad.ID,
			AdStrength: aga.AdStrength,
			Status:     aga.Status,
		}
		var ag struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if ok, err := r.Decode("adGroup", &ag); err == nil && ok {
			row.AdGroupID, row.AdGroupName = ag.ID, ag.Name
		}
		var c struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if ok, err := r.Decode("campaign", &c); err == nil && ok {
			row.CampaignID, row.CampaignName = c.ID, c.Name
		}
		out = append(out, row)
	}
	return out, nil
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

func rsaAssetBounds(headlines, descriptions []string) error {
	if len(headlines) < minHeadlines || len(headlines) > maxHeadlines {
		return perr.WithField(
			perr.Validationf("headlines must number between %d and %d", minHeadlines, maxHeadlines),
			"headlines",
		)
	}
	for _, h := range headlines {
		if h == "" || len(h) > maxHeadlineLen {
			return perr.WithField(
				perr.Validationf("headline %q must be 1-%d characters", validate.Preview(h), maxHeadlineLen),
				"headlines",
			)
		}
	}
	if len(descriptions) < minDescriptions || len(descriptions) > maxDescriptions {
		return perr.WithField(
			perr.Validationf("descriptions must number between %d and %d", minDescriptions, maxDescriptions),
			"descriptions",
		)
	}
	for _, d := range descriptions {
		if d == "" || len(d) > maxDescriptionLen {
			return perr.WithField(
				perr.Validationf("description %q must be 1-%d characters", validate.Preview(d), maxDescriptionLen),
				"descriptions",
			)
		}
	}
	return nil
}

func pathBounds(field, p string) error {
	if len(p) > maxPathLen {
		return perr.WithField(
			perr.Validationf("%s must be at most %d characters", field, maxPathLen),
			field,
		)
	}
	return nil
}

func textAssets(texts []string) []map[string]any {
	out := make([]map[string]any, 0, len(texts))
	for _, t := range texts {
		out = append(out, map[string]any{"text": t})
	}
	return out
}

type adPayload struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	FinalURLs          []string `json:"finalUrls"`
	FinalMobileURLs    []string `json:"finalMobileUrls"`
	TrackingTemplate   string   `json:"trackingUrlTemplate"`
	ResponsiveSearchAd struct {
		Headlines []struct {
			Text        string `json:"text"`
			PinnedField string `json:"pinnedField"`
		} `json:"headlines"`
		Descriptions []struct {
			Text        string `json:"text"`
			PinnedField string `json:"pinnedField"`
		} `json:"descriptions"`
		Path1 string `json:"path1"`
		Path2 string `json:"path2"`
	} `json:"responsiveSearchAd"`
}

type adGroupAdPayload struct {
	Ad            adPayload `json:"ad"`
	Status        string    `json:"status"`
	AdStrength    string    `json:"adStrength"`
	PolicySummary struct {
		ApprovalStatus string `json:"approvalStatus"`
	} `json:"policySummary"`
}

func decodeListRow(r client.Row) (*domain.Row, error) {
	var aga adGroupAdPayload
	if ok, err := r.Decode("adGroupAd", &aga); err != nil || !ok {
		return nil, perr.Unexpectedf("malformed ad row")
	}
	row := &domain.Row{
		AdID:       aga.Ad.ID,
		Name:       aga.Ad.Name,
		Type:       aga.Ad.Type,
		Status:     aga.Status,
		FinalURLs:  aga.Ad.FinalURLs,
		AdStrength: aga.AdStrength,
	}
	for _, h := range aga.Ad.ResponsiveSearchAd.Headlines {
		row.Headlines = append(row.Headlines, h.Text)
	}
	for _, d := range aga.Ad.ResponsiveSearchAd.Descriptions {
		row.Descriptions = append(row.Descriptions, d.Text)
	}
	var ag struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if ok, err := r.Decode("adGroup", &ag); err == nil && ok {
		row.AdGroupID, row.AdGroupName = ag.ID, ag.Name
	}
	return row, nil
}

func decodeDetail(r client.Row) (*domain.Detail, error) {
	var aga adGroupAdPayload
	if ok, err := r.Decode("adGroupAd", &aga); err != nil || !ok {
		return nil, perr.Unexpectedf("malformed ad row")
	}
	d := &domain.Detail{
		AdID:             aga.Ad.ID,
		Name:             aga.Ad.Name,
		Type:             aga.Ad.Type,
		Status:           aga.Status,
		FinalURLs:        aga.Ad.FinalURLs,
		FinalMobileURLs:  aga.Ad.FinalMobileURLs,
		TrackingTemplate: aga.Ad.TrackingTemplate,
		Path1:            aga.Ad.ResponsiveSearchAd.Path1,
		Path2:            aga.Ad.ResponsiveSearchAd.Path2,
		AdStrength:       aga.AdStrength,
		ApprovalStatus:   aga.PolicySummary.ApprovalStatus,
	}
	for _, h := range aga.Ad.ResponsiveSearchAd.Headlines {
		d.Headlines = append(d.Headlines, domain.TextAsset{Text: h.Text, PinnedField: h.PinnedField})
	}
	for _, desc := range aga.Ad.ResponsiveSearchAd.Descriptions {
		d.Descriptions = append(d.Descriptions, domain.TextAsset{Text: desc.Text, PinnedField: desc.PinnedField})
	}
	return d, nil
}
