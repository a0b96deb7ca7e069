// Package http provides http transport for adgroups
package http

import (
	stdhttp "net/http"

	"adsbridge/internal/modkit/httpkit"
	"adsbridge/internal/services/api/adgroups/domain"
	svc "adsbridge/internal/services/api/adgroups/service"
)

// Register mounts adgroups endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.UpdateInput](r, "/update", h.update)
	httpkit.PostJSON[domain.StatusInput](r, "/status", h.setStatus)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /adgroups/list AdGroups adGroupsList
// @Summary List ad groups
// @Tags AdGroups
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {array} domain.Row "ok"
// @Router /adgroups/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /adgroups/get AdGroups adGroupsGet
// @Summary Get an ad group
// @Tags AdGroups
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Query"
// @Success 200 {object} domain.Row "ok"
// @Router /adgroups/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// swagger:route POST /adgroups/create AdGroups adGroupsCreate
// @Summary Create an ad group
// @Tags AdGroups
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Ad group"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /adgroups/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /adgroups/update AdGroups adGroupsUpdate
// @Summary Update ad group name or CPC bid
// @Tags AdGroups
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /adgroups/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

// swagger:route POST /adgroups/status AdGroups adGroupsStatus
// @Summary Set ad group status
// @Tags AdGroups
// @Accept json
// @Produce json
// @Param payload body domain.StatusInput true "Status change"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /adgroups/status [post]
func (h *handlers) setStatus(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	return h.svc.SetStatus(r.Context(), in)
}
