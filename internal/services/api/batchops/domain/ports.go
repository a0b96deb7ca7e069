package domain

import "context"

// ServicePort is the batch service contract
type ServicePort interface {
	SetStatuses(ctx context.Context, in StatusInput) (*Result, error)
	ImportConversions(ctx context.Context, in ConversionsInput) (*Result, error)
	CreateSitelinks(ctx context.Context, in SitelinksInput) (*Result, error)
}
