package auth

import (
	"context"
	stderrs "errors"
	"net/http"
	"sync"
	"testing"
	"time"

	perr "adsbridge/internal/platform/errors"

	"golang.org/x/oauth2"
)

func testCreds() Credentials {
	return Credentials{
		ClientID:          "cid",
		ClientSecret:      "secret",
		DeveloperToken:    "devtok",
		RefreshToken:      "refresh",
		LoginCustomerID:   "1112223333",
		DefaultCustomerID: "123-456-7890",
	}
}

// fakeManager returns a manager whose handshake is driven by outcomes:
// each call pops the next error; nil means success. Sleeps are recorded
// instead of slept
func fakeManager(t *testing.T, outcomes []error) (*Manager, *int, *[]time.Duration) {
	t.Helper()
	m := NewManager(testCreds())
	calls := 0
	var delays []time.Duration
	var mu sync.Mutex

	m.fetchToken = func(ctx context.Context) (*oauth2.Token, oauth2.TokenSource, error) {
		mu.Lock()
		defer mu.Unlock()
		var err error
		if calls < len(outcomes) {
			err = outcomes[calls]
		}
		calls++
		if err != nil {
			return nil, nil, err
		}
		tok := &oauth2.Token{AccessToken: "at", Expiry: time.Now().Add(time.Hour)}
		return tok, oauth2.StaticTokenSource(tok), nil
	}
	m.sleep = func(ctx context.Context, d time.Duration) error {
		mu.Lock()
		defer mu.Unlock()
		delays = append(delays, d)
		return nil
	}
	return m, &calls, &delays
}

func serverErr(status int) error {
	return &oauth2.RetrieveError{Response: &http.Response{StatusCode: status}}
}

func TestClientConstructsOnceAndIsShared(t *testing.T) {
	m, calls, _ := fakeManager(t, nil)

	h1, err := m.Client(context.Background())
	if err != nil {
		t.Fatalf("first Client: %v", err)
	}
	if h1.DeveloperToken != "devtok" || h1.LoginCustomerID != "1112223333" {
		t.Fatalf("handle headers wrong: %+v", h1)
	}
	h2, err := m.Client(context.Background())
	if err != nil {
		t.Fatalf("second Client: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("expected the same handle on repeat calls")
	}
	if *calls != 1 {
		t.Fatalf("handshake ran %d times, want 1", *calls)
	}
	if !m.Ready() {
		t.Fatalf("manager should report ready")
	}
}

func TestClientConcurrentCallersShareOneConstruction(t *testing.T) {
	m, calls, _ := fakeManager(t, nil)

	const n = 16
	handles := make([]*Handle, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i], errs[i] = m.Client(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if handles[i] != handles[0] {
			t.Fatalf("caller %d got a different handle", i)
		}
	}
	if *calls != 1 {
		t.Fatalf("handshake ran %d times, want 1", *calls)
	}
}

func TestClientRetriesTransientFaults(t *testing.T) {
	m, calls, delays := fakeManager(t, []error{serverErr(503), serverErr(429), nil})

	if _, err := m.Client(context.Background()); err != nil {
		t.Fatalf("Client after transient faults: %v", err)
	}
	if *calls != 3 {
		t.Fatalf("handshake attempts = %d, want 3", *calls)
	}
	// doubling backoff between attempts
	d := *delays
	if len(d) != 2 || d[1] != 2*d[0] {
		t.Fatalf("backoff delays = %v, want doubling pair", d)
	}
}

func TestClientAbortsOnHardRejection(t *testing.T) {
	m, calls, _ := fakeManager(t, []error{serverErr(400), nil})

	_, err := m.Client(context.Background())
	if err == nil {
		t.Fatalf("rejected grant should fail")
	}
	if !perr.IsCode(err, perr.ErrorCodeAuthentication) {
		t.Fatalf("code = %v, want authentication", perr.CodeOf(err))
	}
	if *calls != 1 {
		t.Fatalf("non-retryable fault retried: %d attempts", *calls)
	}
	if m.Ready() {
		t.Fatalf("failed construction must leave manager uninitialized")
	}
}

func TestClientExhaustsRetriesThenFails(t *testing.T) {
	m, calls, _ := fakeManager(t, []error{serverErr(503), serverErr(503), serverErr(503), nil})

	_, err := m.Client(context.Background())
	if err == nil {
		t.Fatalf("exhausted retries should fail")
	}
	if !perr.IsCode(err, perr.ErrorCodeAuthentication) {
		t.Fatalf("code = %v, want authentication", perr.CodeOf(err))
	}
	if *calls != maxAttempts {
		t.Fatalf("attempts = %d, want %d", *calls, maxAttempts)
	}

	// the manager is not wedged; the next call may succeed
	if _, err := m.Client(context.Background()); err != nil {
		t.Fatalf("retry after failed construction: %v", err)
	}
}

func TestInvalidateForcesReconstruction(t *testing.T) {
	m, calls, _ := fakeManager(t, nil)

	h1, err := m.Client(context.Background())
	if err != nil {
		t.Fatalf("first Client: %v", err)
	}
	m.Invalidate()
	if m.Ready() {
		t.Fatalf("Invalidate should drop the handle")
	}
	h2, err := m.Client(context.Background())
	if err != nil {
		t.Fatalf("Client after Invalidate: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected a fresh handle after Invalidate")
	}
	if *calls != 2 {
		t.Fatalf("handshake ran %d times, want 2", *calls)
	}
}

func TestClassifyTokenError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want perr.ErrorCode
	}{
		{"throttled", serverErr(429), perr.ErrorCodeRateLimit},
		{"server down", serverErr(500), perr.ErrorCodeTransientService},
		{"bad gateway", serverErr(502), perr.ErrorCodeTransientService},
		{"rejected grant", serverErr(400), perr.ErrorCodeAuthentication},
		{"forbidden", serverErr(403), perr.ErrorCodeAuthentication},
		{"deadline", context.DeadlineExceeded, perr.ErrorCodeTransientService},
		{"dial failure", stderrs.New("dial tcp: connection refused"), perr.ErrorCodeTransientService},
	}
	for _, c := range cases {
		if got := perr.CodeOf(classifyTokenError(c.err)); got != c.want {
			t.Fatalf("%s: code = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestResolveCustomerID(t *testing.T) {
	creds := testCreds()

	if got, err := creds.ResolveCustomerID("987-654-3210"); err != nil || got != "9876543210" {
		t.Fatalf("explicit id: %q, %v", got, err)
	}
	if got, err := creds.ResolveCustomerID(""); err != nil || got != "1234567890" {
		t.Fatalf("default id: %q, %v", got, err)
	}
	if _, err := creds.ResolveCustomerID("abc"); err == nil {
		t.Fatalf("junk id should reject")
	}

	none := creds
	none.DefaultCustomerID = ""
	if _, err := none.ResolveCustomerID(""); err == nil {
		t.Fatalf("missing id with no default should reject")
	} else if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
}
