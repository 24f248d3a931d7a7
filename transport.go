package printforge

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var orderDetailPattern = regexp.MustCompile(`/orders/\d+`)

// isOrderScopedPath reports whether path belongs to the order-detail or
// order-history endpoints. Those return 401 for per-order authorization
// reasons that do not mean the session expired, so the transport must not
// clear the token for them.
func isOrderScopedPath(path string) bool {
	return orderDetailPattern.MatchString(path) || strings.HasSuffix(path, "/history")
}

// AuthTransport is an http.RoundTripper that attaches the stored bearer
// token to every outgoing request and reacts to 401 responses by clearing
// the token, except for order-scoped endpoints. A missing token is logged
// but never blocks a request; some endpoints are public.
type AuthTransport struct {
	// Base is the underlying round tripper, http.DefaultTransport when nil.
	Base http.RoundTripper

	Store  TokenStore
	Logger Logger

	// OnUnauthorized runs after a non-carved-out 401 cleared the token.
	// The embedding application decides what "redirect to login" means.
	OnUnauthorized func()
}

var _ http.RoundTripper = (*AuthTransport)(nil)

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *AuthTransport) logger() Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return defLogger{}
}

// RoundTrip satisfies http.RoundTripper. The request is cloned before
// mutation per the RoundTripper contract.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := t.logger()

	clone := req.Clone(req.Context())
	if clone.Header.Get("X-Request-ID") == "" {
		clone.Header.Set("X-Request-ID", uuid.NewString())
	}

	if t.Store != nil {
		token, err := t.Store.Load(req.Context())
		switch {
		case err == nil:
			clone.Header.Set("Authorization", "Bearer "+token)
		case errors.Is(err, ErrNoToken):
			logger.Debug("no token stored, sending %s %s unauthenticated", req.Method, req.URL.Path)
		default:
			logger.Error("token store read failed: %v", err)
		}
	}

	resp, err := t.base().RoundTrip(clone)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !isOrderScopedPath(clone.URL.Path) {
		logger.Info("401 on %s %s, clearing stored token", req.Method, req.URL.Path)
		if t.Store != nil {
			if cerr := t.Store.Clear(req.Context()); cerr != nil {
				logger.Error("token clear failed: %v", cerr)
			}
		}
		if t.OnUnauthorized != nil {
			t.OnUnauthorized()
		}
	}

	return resp, nil
}
