// Package api provides the HTTP API for the application
package api

import (
	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/gads/validate"
	"adsbridge/internal/platform/config"
	phttp "adsbridge/internal/platform/net/http"

	"adsbridge/internal/modkit"
	"adsbridge/internal/modkit/httpkit"
	"adsbridge/internal/modkit/module"
	"adsbridge/internal/modkit/swaggerkit"

	accountsmod "adsbridge/internal/services/api/accounts/module"
	adgroupsmod "adsbridge/internal/services/api/adgroups/module"
	adsmod "adsbridge/internal/services/api/ads/module"
	batchmod "adsbridge/internal/services/api/batchops/module"
	budgetsmod "adsbridge/internal/services/api/budgets/module"
	campaignsmod "adsbridge/internal/services/api/campaigns/module"
	keywordsmod "adsbridge/internal/services/api/keywords/module"
	labelsmod "adsbridge/internal/services/api/labels/module"
	metamod "adsbridge/internal/services/api/meta/module"
	reportingmod "adsbridge/internal/services/api/reporting/module"
	searchmod "adsbridge/internal/services/api/search/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Ads            client.Transport
	Auth           *auth.Manager
	Creds          auth.Credentials
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// domain validation tags must exist before any payload binds
	validate.RegisterTags()

	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		Ads:   opt.Ads,
		Auth:  opt.Auth,
		Creds: opt.Creds,
	}

	mods := []module.Module{
		metamod.New(deps),
		accountsmod.New(deps),
		campaignsmod.New(deps),
		adgroupsmod.New(deps),
		adsmod.New(deps),
		keywordsmod.New(deps),
		labelsmod.New(deps),
		budgetsmod.New(deps),
		reportingmod.New(deps),
		searchmod.New(deps),
		batchmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
