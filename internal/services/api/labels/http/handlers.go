// Package http provides http transport for labels
package http

import (
	stdhttp "net/http"

	"adsbridge/internal/modkit/httpkit"
	"adsbridge/internal/services/api/labels/domain"
	svc "adsbridge/internal/services/api/labels/service"
)

// Register mounts labels endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.RemoveInput](r, "/remove", h.remove)
	httpkit.PostJSON[domain.ApplyInput](r, "/apply", h.apply)
	httpkit.PostJSON[domain.DetachInput](r, "/detach", h.detach)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /labels/list Labels labelsList
// @Summary List labels
// @Tags Labels
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {array} domain.Row "ok"
// @Router /labels/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /labels/create Labels labelsCreate
// @Summary Create a label
// @Tags Labels
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Label"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /labels/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /labels/remove Labels labelsRemove
// @Summary Remove a label permanently
// @Tags Labels
// @Accept json
// @Produce json
// @Param payload body domain.RemoveInput true "Target"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /labels/remove [post]
func (h *handlers) remove(r *stdhttp.Request, in domain.RemoveInput) (any, error) {
	return h.svc.Remove(r.Context(), in)
}

// swagger:route POST /labels/apply Labels labelsApply
// @Summary Apply a label to a campaign, ad group, ad, or keyword
// @Tags Labels
// @Accept json
// @Produce json
// @Param payload body domain.ApplyInput true "Association"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /labels/apply [post]
func (h *handlers) apply(r *stdhttp.Request, in domain.ApplyInput) (any, error) {
	return h.svc.Apply(r.Context(), in)
}

// swagger:route POST /labels/detach Labels labelsDetach
// @Summary Remove a label association
// @Tags Labels
// @Accept json
// @Produce json
// @Param payload body domain.DetachInput true "Association"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /labels/detach [post]
func (h *handlers) detach(r *stdhttp.Request, in domain.DetachInput) (any, error) {
	return h.svc.Detach(r.Context(), in)
}
