// Package service contains labels workflows
package service

import (
	"context"
	"fmt"
	"strings"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/services/api/labels/domain"
)

// Service defines the labels service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the labels service
type Svc struct {
	ads   client.Transport
	creds auth.Credentials
}

// New constructs a labels service
func New(ads client.Transport, creds auth.Credentials) *Svc {
	if ads == nil {
		panic("labels.Service requires a non nil Transport")
	}
	return &Svc{ads: ads, creds: creds}
}

// List returns labels in the account, ordered by name
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

	q := fmt.Sprintf(`SELECT
  label.id,
  label.name,
  label.status,
  label.text_label.description,
  label.text_label.background_color
FROM label
ORDER BY label.name ASC
LIMIT %d`, limit)

	rows, err := s.ads.Search(ctx, cid, q)
	if err != nil {
		return nil, perr.WithOp(err, "labels.list")
	}

	out := make([]domain.Row, 0, len(rows))
	for _, r := range rows {
		var l struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			Status    string `json:"status"`
			TextLabel struct {
				Description     string `json:"description"`
				BackgroundColor string `json:"backgroundColor"`
			} `json:"textLabel"`
		}
		if ok, err := r.Decode("label", &l); err != nil || !ok {
			continue
		}
		out = append(out, domain.Row{
			LabelID:         l.ID,
			Name:            l.Name,
			Description:     l.TextLabel.Description,
			BackgroundColor: l.TextLabel.BackgroundColor,
			Status:          l.Status,
		})
	}
	return out, nil
}

// Create makes a new label
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, perr.WithField(perr.Validationf("name is required"), "name")
	}

	create := map[string]any{"name": in.Name}
	textLabel := map[string]any{}
	if in.Description != "" {
		textLabel["description"] = in.Description
	}
	if in.BackgroundColor != "" {
		textLabel["backgroundColor"] = in.BackgroundColor
	}
	if len(textLabel) > 0 {
		create["textLabel"] = textLabel
	}

	op := client.Operation{"labelOperation": map[string]any{"create": create}}
	return s.mutateOne(ctx, cid, op, "labels.create")
}

// Remove deletes a label permanently; associations fall away with it
func (s *Svc) Remove(ctx context.Context, in domain.RemoveInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	labelID, err := validate.NumericID(in.LabelID, "label_id")
	if err != nil {
		return nil, err
	}

	op := client.Operation{"labelOperation": map[string]any{
		"remove": client.ResourceName("labels", cid, labelID),
	}}
	return s.mutateOne(ctx, cid, op, "labels.remove")
}

// associationOps maps a resource type to its label association operation key
var associationOps = map[string]string{
	"campaign": "campaignLabelOperation",
	"ad_group": "adGroupLabelOperation",
	"ad":       "adGroupAdLabelOperation",
	"keyword":  "adGroupCriterionLabelOperation",
}

// Apply attaches a label to a campaign, ad group, ad, or keyword
func (s *Svc) Apply(ctx context.Context, in domain.ApplyInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	labelID, err := validate.NumericID(in.LabelID, "label_id")
	if err != nil {
		return nil, err
	}
	opKey, ok := associationOps[in.ResourceType]
	if !ok {
		return nil, perr.WithField(
			perr.Validationf("resource_type must be campaign, ad_group, ad, or keyword"),
			"resource_type",
		)
	}

	create := map[string]any{"label": client.ResourceName("labels", cid, labelID)}
	switch in.ResourceType {
	case "campaign":
		campaignID, err := validate.NumericID(in.CampaignID, "campaign_id")
		if err != nil {
			return nil, err
		}
		create["campaign"] = client.ResourceName("campaigns", cid, campaignID)
	case "ad_group":
		adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
		if err != nil {
			return nil, err
		}
		create["adGroup"] = client.ResourceName("adGroups", cid, adGroupID)
	case "ad":
		adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
		if err != nil {
			return nil, err
		}
		adID, err := validate.NumericID(in.AdID, "ad_id")
		if err != nil {
			return nil, err
		}
		create["adGroupAd"] = client.CompositeResourceName("adGroupAds", cid, adGroupID, adID)
	case "keyword":
		adGroupID, err := validate.NumericID(in.AdGroupID, "ad_group_id")
		if err != nil {
			return nil, err
		}
		criterionID, err := validate.NumericID(in.CriterionID, "criterion_id")
		if err != nil {
			return nil, err
		}
		create["adGroupCriterion"] = client.CompositeResourceName("adGroupCriteria", cid, adGroupID, criterionID)
	}

	op := client.Operation{opKey: map[string]any{"create": create}}
	return s.mutateOne(ctx, cid, op, "labels.apply")
}

// Detach removes a label association by its resource name, as returned
// when the label was applied
func (s *Svc) Detach(ctx context.Context, in domain.DetachInput) (*domain.MutateResult, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	opKey, ok := associationOps[in.ResourceType]
	if !ok {
		return nil, perr.WithField(
			perr.Validationf("resource_type must be campaign, ad_group, ad, or keyword"),
			"resource_type",
		)
	}
	if in.ResourceName == "" {
		return nil, perr.WithField(perr.Validationf("resource_name is required"), "resource_name")
	}

	op := client.Operation{opKey: map[string]any{"remove": in.ResourceName}}
	return s.mutateOne(ctx, cid, op, "labels.detach")
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
