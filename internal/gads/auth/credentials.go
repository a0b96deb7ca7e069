// Package auth owns the authenticated Google Ads client lifecycle: loading
// credentials from the environment, the one-time OAuth2 handshake, and the
// shared handle every outbound call rides on
package auth

import (
	"adsbridge/internal/gads/validate"
	"adsbridge/internal/platform/config"
	perr "adsbridge/internal/platform/errors"
)

// Credentials is the full set required to talk to the Google Ads API.
// The first five are mandatory; DefaultCustomerID is the fallback account
// for requests that do not name one
type Credentials struct {
	ClientID          string
	ClientSecret      string
	DeveloperToken    string
	RefreshToken      string
	LoginCustomerID   string
	DefaultCustomerID string
}

// CredentialsFromConf reads GOOGLE_ADS_* credentials. Missing mandatory
// values panic through the config layer, which is the intended fatal
// startup behavior; a process without credentials has nothing to do
func CredentialsFromConf(cfg config.Conf) Credentials {
	g := cfg.Prefix("GOOGLE_ADS_")
	return Credentials{
		ClientID:          g.MustString("CLIENT_ID"),
		ClientSecret:      g.MustString("CLIENT_SECRET"),
		DeveloperToken:    g.MustString("DEVELOPER_TOKEN"),
		RefreshToken:      g.MustString("REFRESH_TOKEN"),
		LoginCustomerID:   g.MustString("LOGIN_CUSTOMER_ID"),
		DefaultCustomerID: g.MayString("CUSTOMER_ID", ""),
	}
}

// ResolveCustomerID picks the acting account: the explicit id when given,
// otherwise the configured default. The result is hyphen-stripped digits
func (c Credentials) ResolveCustomerID(explicit string) (string, error) {
	id := explicit
	if id == "" {
		id = c.DefaultCustomerID
	}
	if id == "" {
		return "", perr.WithField(
			perr.Validationf("no customer_id given and no default configured"),
			"customer_id",
		)
	}
	return validate.NumericID(id, "customer_id")
}
