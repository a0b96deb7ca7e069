package domain

import "context"

// ServicePort is the reporting service contract
type ServicePort interface {
	Campaigns(ctx context.Context, in CampaignsInput) ([]CampaignRow, error)
	AdGroups(ctx context.Context, in AdGroupsInput) ([]AdGroupRow, error)
	Keywords(ctx context.Context, in KeywordsInput) ([]KeywordRow, error)
	SearchTerms(ctx context.Context, in SearchTermsInput) ([]SearchTermRow, error)
}
