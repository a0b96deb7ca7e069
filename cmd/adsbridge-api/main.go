// @title         Adsbridge API
// @version       0.1.0
// @description   Safe request and execution layer for the Google Ads API

package main

import (
	"context"

	"github.com/joho/godotenv"

	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/platform/config"
	"adsbridge/internal/platform/logger"
	phttp "adsbridge/internal/platform/net/http"

	"adsbridge/internal/services/api"
)

func main() {
	// local development convenience; a missing .env is fine
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// Google Ads session: credentials from GOOGLE_ADS_*, token exchange
	// deferred until the first call needs it
	creds := auth.CredentialsFromConf(root)
	mgr := auth.NewManager(creds)
	ads := client.NewREST(mgr)

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Ads:            ads,
			Auth:           mgr,
			Creds:          creds,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
