// Package http provides http transport for budgets
package http

import (
	stdhttp "net/http"

	"adsbridge/internal/modkit/httpkit"
	"adsbridge/internal/services/api/budgets/domain"
	svc "adsbridge/internal/services/api/budgets/service"
)

// Register mounts budgets endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.UpdateInput](r, "/update", h.update)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /budgets/list Budgets budgetsList
// @Summary List campaign budgets
// @Tags Budgets
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {array} domain.Row "ok"
// @Router /budgets/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /budgets/get Budgets budgetsGet
// @Summary Get a budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Query"
// @Success 200 {object} domain.Row "ok"
// @Router /budgets/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// swagger:route POST /budgets/create Budgets budgetsCreate
// @Summary Create a campaign budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Budget"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /budgets/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /budgets/update Budgets budgetsUpdate
// @Summary Update budget name or amount
// @Tags Budgets
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /budgets/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}
