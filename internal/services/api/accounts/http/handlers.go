// Package http provides http transport for accounts
package http

import (
	stdhttp "net/http"

	"adsbridge/internal/modkit/httpkit"
	"adsbridge/internal/services/api/accounts/domain"
	svc "adsbridge/internal/services/api/accounts/service"
)

// Register mounts accounts endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// credential-level discovery
	httpkit.Get(r, "/accessible", h.accessible)

	// accounts under the manager tree
	httpkit.PostJSON[domain.ListClientsInput](r, "/list", h.listClients)

	// acting account detail
	httpkit.PostJSON[domain.InfoInput](r, "/info", h.info)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /accounts/accessible Accounts accountsAccessible
// @Summary List customers reachable with the configured credentials
// @Tags Accounts
// @Produce json
// @Success 200 {array} domain.AccessibleAccount "ok"
// @Router /accounts/accessible [get]
func (h *handlers) accessible(r *stdhttp.Request) (any, error) {
	return h.svc.ListAccessible(r.Context())
}

// swagger:route POST /accounts/list Accounts accountsList
// @Summary List accessible client accounts
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.ListClientsInput true "Query"
// @Success 200 {array} domain.ClientRow "ok"
// @Router /accounts/list [post]
func (h *handlers) listClients(r *stdhttp.Request, in domain.ListClientsInput) (any, error) {
	return h.svc.ListClients(r.Context(), in)
}

// swagger:route POST /accounts/info Accounts accountsInfo
// @Summary Account details
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.InfoInput true "Query"
// @Success 200 {object} domain.Info "ok"
// @Router /accounts/info [post]
func (h *handlers) info(r *stdhttp.Request, in domain.InfoInput) (any, error) {
	return h.svc.Info(r.Context(), in)
}
