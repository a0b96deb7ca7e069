package auth

import (
	"context"
	stderrs "errors"
	"net/http"
	"sync/atomic"
	"time"

	perr "adsbridge/internal/platform/errors"
	"adsbridge/internal/platform/logger"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// tokenURL is Google's OAuth2 token endpoint for the refresh-token grant
const tokenURL = "https://oauth2.googleapis.com/token"

const (
	maxAttempts  = 3
	baseDelay    = 500 * time.Millisecond
	tokenTimeout = 15 * time.Second
)

// Handle is the shared, ready-to-use client state. The embedded http.Client
// refreshes its access token transparently; DeveloperToken and
// LoginCustomerID go out as headers on every API call
type Handle struct {
	HTTP            *http.Client
	DeveloperToken  string
	LoginCustomerID string
}

// Manager lazily constructs the Handle on first use and then returns the
// same one to every caller. Construction is collapsed across concurrent
// callers; a failed construction leaves the manager uninitialized so a later
// request may try again.
//
// Once ready, the handle is never rebuilt behind callers' backs: external
// credential revocation is not observed. Operators rotating credentials call
// Invalidate to force a fresh handshake on the next request
type Manager struct {
	creds  Credentials
	handle atomic.Pointer[Handle]
	group  singleflight.Group

	// seams for tests
	fetchToken func(ctx context.Context) (*oauth2.Token, oauth2.TokenSource, error)
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewManager builds a manager around validated credentials
func NewManager(creds Credentials) *Manager {
	m := &Manager{creds: creds}
	m.fetchToken = m.exchangeRefreshToken
	m.sleep = sleepCtx
	return m
}

// NewManagerForTest returns a manager already holding a ready handle around
// the given http client, skipping the handshake. For tests and stubs only
func NewManagerForTest(creds Credentials, hc *http.Client) *Manager {
	m := NewManager(creds)
	m.handle.Store(&Handle{
		HTTP:            hc,
		DeveloperToken:  creds.DeveloperToken,
		LoginCustomerID: creds.LoginCustomerID,
	})
	return m
}

// Ready reports whether a handle has been constructed
func (m *Manager) Ready() bool { return m.handle.Load() != nil }

// Invalidate drops the current handle. The next Client call performs a full
// handshake with whatever credentials the manager holds
func (m *Manager) Invalidate() {
	m.handle.Store(nil)
	logger.Named("gads.auth").Info().Msg("client handle invalidated")
}

// Client returns the shared handle, constructing it on first use.
// Concurrent first callers share one construction attempt and all receive
// its outcome
func (m *Manager) Client(ctx context.Context) (*Handle, error) {
	if h := m.handle.Load(); h != nil {
		return h, nil
	}
	v, err, _ := m.group.Do("client", func() (any, error) {
		// a racing caller may have finished construction already
		if h := m.handle.Load(); h != nil {
			return h, nil
		}
		h, err := m.construct(ctx)
		if err != nil {
			return nil, err
		}
		m.handle.Store(h)
		return h, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Handle), nil
}

// construct performs the OAuth2 refresh-token handshake with bounded
// retries. Only faults the classifier marks retryable are retried; the
// delay doubles between attempts. Exhaustion or a hard rejection surfaces
// as an authentication failure to the calling request
func (m *Manager) construct(ctx context.Context) (*Handle, error) {
	log := logger.Named("gads.auth")

	delay := baseDelay
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		tok, src, err := m.fetchToken(ctx)
		if err == nil {
			log.Info().Int("attempt", attempt).Msg("google ads client ready")
			return &Handle{
				HTTP:            oauth2.NewClient(ctx, oauth2.ReuseTokenSource(tok, src)),
				DeveloperToken:  m.creds.DeveloperToken,
				LoginCustomerID: m.creds.LoginCustomerID,
			}, nil
		}

		lastErr = classifyTokenError(err)
		if !perr.Retryable(lastErr) || attempt == maxAttempts {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Dur("backoff", delay).
			Msg("token handshake failed; retrying")
		if serr := m.sleep(ctx, delay); serr != nil {
			lastErr = perr.Wrap(serr, perr.ErrorCodeTransientService, "token handshake interrupted")
			break
		}
		delay *= 2
	}

	log.Error().Err(lastErr).Msg("google ads client construction failed")
	return nil, perr.Wrap(lastErr, perr.ErrorCodeAuthentication,
		"could not authenticate with the Google Ads API")
}

// exchangeRefreshToken performs the real token fetch
func (m *Manager) exchangeRefreshToken(ctx context.Context) (*oauth2.Token, oauth2.TokenSource, error) {
	conf := &oauth2.Config{
		ClientID:     m.creds.ClientID,
		ClientSecret: m.creds.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
	}
	tctx, cancel := context.WithTimeout(ctx, tokenTimeout)
	defer cancel()

	src := conf.TokenSource(tctx, &oauth2.Token{RefreshToken: m.creds.RefreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, nil, err
	}
	// rebuild the source on the long-lived context for the handle
	return tok, conf.TokenSource(context.WithoutCancel(ctx),
		&oauth2.Token{RefreshToken: m.creds.RefreshToken}), nil
}

// classifyTokenError maps token endpoint failures onto the taxonomy.
// Server-side trouble at the endpoint is transient; a rejected grant is not
func classifyTokenError(err error) error {
	var re *oauth2.RetrieveError
	if stderrs.As(err, &re) {
		if re.Response != nil {
			sc := re.Response.StatusCode
			if sc == http.StatusTooManyRequests {
				return perr.Wrap(err, perr.ErrorCodeRateLimit, "token endpoint throttled")
			}
			if sc >= 500 {
				return perr.Wrap(err, perr.ErrorCodeTransientService, "token endpoint unavailable")
			}
		}
		return perr.Wrap(err, perr.ErrorCodeAuthentication, "refresh token rejected")
	}
	return perr.Wrap(err, perr.TransportErrorCode(err), "token handshake failed")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
