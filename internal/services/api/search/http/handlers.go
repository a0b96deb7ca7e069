// Package http provides http transport for search
package http

import (
	stdhttp "net/http"

	"adsbridge/internal/modkit/httpkit"
	"adsbridge/internal/services/api/search/domain"
	svc "adsbridge/internal/services/api/search/service"
)

// Register mounts search endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.QueryInput](r, "/gaql", h.query)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /search/gaql Search searchGAQL
// @Summary Run a raw GAQL SELECT
// @Tags Search
// @Accept json
// @Produce json
// @Param payload body domain.QueryInput true "Query"
// @Success 200 {object} domain.QueryResult "ok"
// @Router /search/gaql [post]
func (h *handlers) query(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	return h.svc.Query(r.Context(), in)
}
