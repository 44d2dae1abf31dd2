// Package identity issues the anonymous browser identity used in place of
// authentication to scope "one vote per device".
package identity

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/erwinjamescodes/sinotoriables/internal/domain"
)

// CookieName is fixed by the public contract with existing browsers; changing
// it would orphan every previously issued identity.
const CookieName = "user_id"

const cookieMaxAge = 365 * 24 * time.Hour // 1 year

// Provider issues and returns browser identities through an injected cookie
// accessor. It never overwrites an existing identity.
type Provider struct {
	secure bool
}

var _ domain.IdentityProvider = (*Provider)(nil)

// NewProvider creates a Provider. secure controls the cookie Secure flag and
// should be true in production.
func NewProvider(secure bool) *Provider {
	return &Provider{secure: secure}
}

// GetOrCreate returns the browser's identity, minting and persisting a new one
// if the cookie is absent. Cookie storage failure maps to
// domain.ErrStorageUnavailable; there is no fallback identity scheme.
func (p *Provider) GetOrCreate(cookies domain.CookieAccessor) (domain.BrowserID, error) {
	if cookies == nil {
		return "", domain.ErrStorageUnavailable
	}

	cookie, err := cookies.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		return domain.BrowserID(cookie.Value), nil
	}
	if err != nil && !errors.Is(err, http.ErrNoCookie) {
		return "", fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}

	id := domain.BrowserID(uuid.NewString())
	cookies.SetCookie(p.newCookie(id))
	return id, nil
}

// Current returns the existing identity without creating one.
func (p *Provider) Current(cookies domain.CookieAccessor) (domain.BrowserID, bool) {
	if cookies == nil {
		return "", false
	}
	cookie, err := cookies.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return domain.BrowserID(cookie.Value), true
}

func (p *Provider) newCookie(id domain.BrowserID) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    id.String(),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
