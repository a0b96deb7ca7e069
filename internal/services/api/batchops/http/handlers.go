// Package http provides http transport for batch operations
package http

import (
	stdhttp "net/http"

	"adsbridge/internal/modkit/httpkit"
	"adsbridge/internal/services/api/batchops/domain"
	svc "adsbridge/internal/services/api/batchops/service"
)

// Register mounts batch endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.StatusInput](r, "/status", h.setStatuses)
	httpkit.PostJSON[domain.ConversionsInput](r, "/conversions", h.importConversions)
	httpkit.PostJSON[domain.SitelinksInput](r, "/sitelinks", h.createSitelinks)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /batch/status Batch batchStatus
// @Summary Flip many resource statuses
// @Tags Batch
// @Accept json
// @Produce json
// @Param payload body domain.StatusInput true "Batch"
// @Success 200 {object} domain.Result "ok"
// @Router /batch/status [post]
func (h *handlers) setStatuses(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	return h.svc.SetStatuses(r.Context(), in)
}

// swagger:route POST /batch/conversions Batch batchConversions
// @Summary Import offline click conversions
// @Tags Batch
// @Accept json
// @Produce json
// @Param payload body domain.ConversionsInput true "Batch"
// @Success 200 {object} domain.Result "ok"
// @Router /batch/conversions [post]
func (h *handlers) importConversions(r *stdhttp.Request, in domain.ConversionsInput) (any, error) {
	return h.svc.ImportConversions(r.Context(), in)
}

// swagger:route POST /batch/sitelinks Batch batchSitelinks
// @Summary Create sitelink assets
// @Tags Batch
// @Accept json
// @Produce json
// @Param payload body domain.SitelinksInput true "Batch"
// @Success 200 {object} domain.Result "ok"
// @Router /batch/sitelinks [post]
func (h *handlers) createSitelinks(r *stdhttp.Request, in domain.SitelinksInput) (any, error) {
	return h.svc.CreateSitelinks(r.Context(), in)
}
