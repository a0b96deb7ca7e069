// Package http provides http transport for keywords
package http

import (
	stdhttp "net/http"

	"adsbridge/internal/modkit/httpkit"
	"adsbridge/internal/services/api/keywords/domain"
	svc "adsbridge/internal/services/api/keywords/service"
)

// Register mounts keywords endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.AddInput](r, "/add", h.add)
	httpkit.PostJSON[domain.UpdateInput](r, "/update", h.update)
	httpkit.PostJSON[domain.RemoveInput](r, "/remove", h.remove)
	httpkit.PostJSON[domain.NegativeInput](r, "/negative", h.addNegative)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /keywords/list Keywords keywordsList
// @Summary List keywords
// @Tags Keywords
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {array} domain.Row "ok"
// @Router /keywords/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /keywords/add Keywords keywordsAdd
// @Summary Add keywords to an ad group
// @Tags Keywords
// @Accept json
// @Produce json
// @Param payload body domain.AddInput true "Batch"
// @Success 200 {object} domain.BatchResult "ok"
// @Router /keywords/add [post]
func (h *handlers) add(r *stdhttp.Request, in domain.AddInput) (any, error) {
	return h.svc.Add(r.Context(), in)
}

// swagger:route POST /keywords/update Keywords keywordsUpdate
// @Summary Update a keyword criterion
// @Tags Keywords
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /keywords/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

// swagger:route POST /keywords/remove Keywords keywordsRemove
// @Summary Remove a keyword criterion
// @Tags Keywords
// @Accept json
// @Produce json
// @Param payload body domain.RemoveInput true "Target"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /keywords/remove [post]
func (h *handlers) remove(r *stdhttp.Request, in domain.RemoveInput) (any, error) {
	return h.svc.Remove(r.Context(), in)
}

// swagger:route POST /keywords/negative Keywords keywordsNegative
// @Summary Add a campaign negative keyword
// @Tags Keywords
// @Accept json
// @Produce json
// @Param payload body domain.NegativeInput true "Negative keyword"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /keywords/negative [post]
func (h *handlers) addNegative(r *stdhttp.Request, in domain.NegativeInput) (any, error) {
	return h.svc.AddNegative(r.Context(), in)
}
