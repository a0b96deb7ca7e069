// Package http provides http transport for campaigns
package http

import (
	stdhttp "net/http"

	"adsbridge/internal/modkit/httpkit"
	"adsbridge/internal/services/api/campaigns/domain"
	svc "adsbridge/internal/services/api/campaigns/service"
)

// Register mounts campaigns endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.UpdateInput](r, "/update", h.update)
	httpkit.PostJSON[domain.StatusInput](r, "/status", h.setStatus)
	httpkit.PostJSON[domain.RemoveInput](r, "/remove", h.remove)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /campaigns/list Campaigns campaignsList
// @Summary List campaigns
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {array} domain.Row "ok"
// @Router /campaigns/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /campaigns/get Campaigns campaignsGet
// @Summary Get a campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Query"
// @Success 200 {object} domain.Row "ok"
// @Router /campaigns/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// swagger:route POST /campaigns/create Campaigns campaignsCreate
// @Summary Create a campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Campaign"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /campaigns/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /campaigns/update Campaigns campaignsUpdate
// @Summary Update campaign name or flight dates
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /campaigns/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

// swagger:route POST /campaigns/status Campaigns campaignsStatus
// @Summary Set campaign status
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param payload body domain.StatusInput true "Status change"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /campaigns/status [post]
func (h *handlers) setStatus(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	return h.svc.SetStatus(r.Context(), in)
}

// swagger:route POST /campaigns/remove Campaigns campaignsRemove
// @Summary Remove a campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param payload body domain.RemoveInput true "Target"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /campaigns/remove [post]
func (h *handlers) remove(r *stdhttp.Request, in domain.RemoveInput) (any, error) {
	return h.svc.Remove(r.Context(), in)
}
