// Package modkit provides module wiring and core deps
package modkit

import (
	"adsbridge/internal/gads/auth"
	"adsbridge/internal/gads/client"
	"adsbridge/internal/platform/config"
	"adsbridge/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log  logger.Logger
	Cfg  config.Conf
	Ads  client.Transport
	Auth *auth.Manager
	// Creds carries the resolved account defaults for customer id fallback
	Creds auth.Credentials
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the transport
func (d Deps) ZeroOK() bool { return true }
