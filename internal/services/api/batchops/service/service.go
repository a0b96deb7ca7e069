// Package service contains batch workflows
package service

import (
	"context"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/batch"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/gads/validate"
	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/services/api/batchops/domain"
)

// Service defines the batch service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the batch service
type Svc struct {
	ads   client.Transport
	creds auth.Credentials
}

// New constructs a batch service
func New(ads client.Transport, creds auth.Credentials) *Svc {
	if ads == nil {
		panic("batch.Service requires a non nil Transport")
	}
	return &Svc{ads: ads, creds: creds}
}

// SetStatuses flips many resource statuses in one partial-failure batch
func (s *Svc) SetStatuses(ctx context.Context, in domain.StatusInput) (*domain.Result, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]batch.Item, 0, len(in.Changes))
	for _, ch := range in.Changes {
		items = append(items, batch.StatusItem{
			ResourceType: ch.ResourceType,
			ID:           ch.ID,
			AdGroupID:    ch.AdGroupID,
			Status:       ch.Status,
		})
	}
	res, err := batch.Execute(ctx, s.ads, batch.KindStatusSet, cid, items, batch.Options{
		ValidateOnly: in.ValidateOnly,
	})
	if err != nil {
		return nil, perr.WithOp(err, "batch.set_statuses")
	}
	return res, nil
}

// ImportConversions imports offline click conversions in one batch
func (s *Svc) ImportConversions(ctx context.Context, in domain.ConversionsInput) (*domain.Result, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]batch.Item, 0, len(in.Conversions))
	for _, c := range in.Conversions {
		items = append(items, batch.ConversionItem{
			Conversion: validate.ConversionInput{
				GCLID:              c.GCLID,
				ConversionAction:   c.ConversionAction,
				ConversionDateTime: c.ConversionDateTime,
				Value:              c.Value,
				CurrencyCode:       c.CurrencyCode,
			},
		})
	}
	res, err := batch.Execute(ctx, s.ads, batch.KindConversionImport, cid, items, batch.Options{
		ValidateOnly: in.ValidateOnly,
	})
	if err != nil {
		return nil, perr.WithOp(err, "batch.import_conversions")
	}
	return res, nil
}

// CreateSitelinks creates sitelink assets in one batch
func (s *Svc) CreateSitelinks(ctx context.Context, in domain.SitelinksInput) (*domain.Result, error) {
	cid, err := s.creds.ResolveCustomerID(in.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]batch.Item, 0, len(in.Sitelinks))
	for _, sl := range in.Sitelinks {
		items = append(items, batch.SitelinkItem{
			Sitelink: validate.SitelinkInput{
				LinkText:     sl.LinkText,
				FinalURL:     sl.FinalURL,
				Description1: sl.Description1,
				Description2: sl.Description2,
			},
		})
	}
	res, err := batch.Execute(ctx, s.ads, batch.KindAssetAdd, cid, items, batch.Options{
		ValidateOnly: in.ValidateOnly,
	})
	if err != nil {
		return nil, perr.WithOp(err, "batch.create_sitelinks")
	}
	return res, nil
}
