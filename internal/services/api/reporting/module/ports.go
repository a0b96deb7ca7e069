package module

import (
	"context"

	"adsbridge/internal/services/api/reporting/domain"
	reportingsvc "adsbridge/internal/services/api/reporting/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptReportingPort struct{ svc reportingsvc.Service }

// Campaigns runs the campaign performance report
func (a adaptReportingPort) Campaigns(ctx context.Context, in domain.CampaignsInput) ([]domain.CampaignRow, error) {
	return a.svc.Campaigns(ctx, in)
}

// AdGroups runs the ad group performance report
func (a adaptReportingPort) AdGroups(ctx context.Context, in domain.AdGroupsInput) ([]domain.AdGroupRow, error) {
	return a.svc.AdGroups(ctx, in)
}

// Keywords runs the keyword performance report
func (a adaptReportingPort) Keywords(ctx context.Context, in domain.KeywordsInput) ([]domain.KeywordRow, error) {
	return a.svc.Keywords(ctx, in)
}

// SearchTerms runs the search terms report
func (a adaptReportingPort) SearchTerms(ctx context.Context, in domain.SearchTermsInput) ([]domain.SearchTermRow, error) {
	return a.svc.SearchTerms(ctx, in)
}
