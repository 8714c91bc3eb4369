package clients

import (
	"net/http"
)

// TokenSource yields the bearer token to attach to outgoing requests.
// An empty token means unauthenticated, the request goes out bare.
// *session.Session satisfies this.
type TokenSource interface {
	Token() string
}

// Transport attaches the bearer token to every outgoing request. The
// token is read from the source before each request, so a login or
// logout between two calls is picked up without rebuilding anything.
type Transport struct {
	// Base performs the actual round trip. http.DefaultTransport
	// when nil.
	Base http.RoundTripper

	Tokens TokenSource

	// OnUnauthorized, when set, is invoked every time the remote
	// service answers 401. Typical use: clear the local session.
	OnUnauthorized func()
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") == "" && t.Tokens != nil {
		if token := t.Tokens.Token(); token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	res, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode == http.StatusUnauthorized && t.OnUnauthorized != nil {
		t.OnUnauthorized()
	}

	return res, nil
}

// NewHTTPClient builds the *http.Client shared by the REST and GraphQL
// clients. No timeout is configured here, callers bound requests with
// their context.
func NewHTTPClient(tokens TokenSource, onUnauthorized func()) *http.Client {
	return &http.Client{
		Transport: &Transport{
			Tokens:         tokens,
			OnUnauthorized: onUnauthorized,
		},
	}
}
