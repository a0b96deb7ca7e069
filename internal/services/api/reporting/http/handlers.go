// Package http provides http transport for reporting
package http

import (
	stdhttp "net/http"

	"adsbridge/internal/modkit/httpkit"
	"adsbridge/internal/services/api/reporting/domain"
	svc "adsbridge/internal/services/api/reporting/service"
)

// Register mounts reporting endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CampaignsInput](r, "/campaigns", h.campaigns)
	httpkit.PostJSON[domain.AdGroupsInput](r, "/adgroups", h.adGroups)
	httpkit.PostJSON[domain.KeywordsInput](r, "/keywords", h.keywords)
	httpkit.PostJSON[domain.SearchTermsInput](r, "/search-terms", h.searchTerms)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /reporting/campaigns Reporting reportingCampaigns
// @Summary Campaign performance report
// @Tags Reporting
// @Accept json
// @Produce json
// @Param payload body domain.CampaignsInput true "Window"
// @Success 200 {array} domain.CampaignRow "ok"
// @Router /reporting/campaigns [post]
func (h *handlers) campaigns(r *stdhttp.Request, in domain.CampaignsInput) (any, error) {
	return h.svc.Campaigns(r.Context(), in)
}

// swagger:route POST /reporting/adgroups Reporting reportingAdGroups
// @Summary Ad group performance report
// @Tags Reporting
// @Accept json
// @Produce json
// @Param payload body domain.AdGroupsInput true "Window"
// @Success 200 {array} domain.AdGroupRow "ok"
// @Router /reporting/adgroups [post]
func (h *handlers) adGroups(r *stdhttp.Request, in domain.AdGroupsInput) (any, error) {
	return h.svc.AdGroups(r.Context(), in)
}

// swagger:route POST /reporting/keywords Reporting reportingKeywords
// @Summary Keyword performance report
// @Tags Reporting
// @Accept json
// @Produce json
// @Param payload body domain.KeywordsInput true "Window"
// @Success 200 {array} domain.KeywordRow "ok"
// @Router /reporting/keywords [post]
func (h *handlers) keywords(r *stdhttp.Request, in domain.KeywordsInput) (any, error) {
	return h.svc.Keywords(r.Context(), in)
}

// swagger:route POST /reporting/search-terms Reporting reportingSearchTerms
// @Summary Search terms report
// @Tags Reporting
// @Accept json
// @Produce json
// @Param payload body domain.SearchTermsInput true "Window"
// @Success 200 {array} domain.SearchTermRow "ok"
// @Router /reporting/search-terms [post]
func (h *handlers) searchTerms(r *stdhttp.Request, in domain.SearchTermsInput) (any, error) {
	return h.svc.SearchTerms(r.Context(), in)
}
