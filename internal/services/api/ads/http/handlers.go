// Package http provides http transport for ads
package http

import (
	stdhttp "net/http"

	"adsbridge/internal/modkit/httpkit"
	"adsbridge/internal/services/api/ads/domain"
	svc "adsbridge/internal/services/api/ads/service"
)

// Register mounts ads endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.CreateRSAInput](r, "/create-rsa", h.createRSA)
	httpkit.PostJSON[domain.UpdateInput](r, "/update", h.update)
	httpkit.PostJSON[domain.StatusInput](r, "/status", h.setStatus)
	httpkit.PostJSON[domain.StrengthInput](r, "/strength", h.strength)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /ads/list Ads adsList
// @Summary List responsive search ads
// @Tags Ads
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {array} domain.Row "ok"
// @Router /ads/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /ads/get Ads adsGet
// @Summary Get one ad with assets and policy state
// @Tags Ads
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Query"
// @Success 200 {object} domain.Detail "ok"
// @Router /ads/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// swagger:route POST /ads/create-rsa Ads adsCreateRSA
// @Summary Create a responsive search ad
// @Tags Ads
// @Accept json
// @Produce json
// @Param payload body domain.CreateRSAInput true "Ad"
// @Success 200 {object} domain.CreateResult "ok"
// @Router /ads/create-rsa [post]
func (h *handlers) createRSA(r *stdhttp.Request, in domain.CreateRSAInput) (any, error) {
	return h.svc.CreateRSA(r.Context(), in)
}

// swagger:route POST /ads/update Ads adsUpdate
// @Summary Update ad landing URL and display paths
// @Tags Ads
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /ads/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

// swagger:route POST /ads/status Ads adsStatus
// @Summary Set ad status
// @Tags Ads
// @Accept json
// @Produce json
// @Param payload body domain.StatusInput true "Status change"
// @Success 200 {object} domain.MutateResult "ok"
// @Router /ads/status [post]
func (h *handlers) setStatus(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	return h.svc.SetStatus(r.Context(), in)
}

// swagger:route POST /ads/strength Ads adsStrength
// @Summary List ad strength ratings, weakest first
// @Tags Ads
// @Accept json
// @Produce json
// @Param payload body domain.StrengthInput true "Query"
// @Success 200 {array} domain.StrengthRow "ok"
// @Router /ads/strength [post]
func (h *handlers) strength(r *stdhttp.Request, in domain.StrengthInput) (any, error) {
	return h.svc.Strength(r.Context(), in)
}
