package domain

import "net/http"

// BrowserID is the opaque anonymous identity token held in the user_id cookie.
// Once issued it stays stable for the browser's lifetime; only cookie deletion
// or expiry outside this system replaces it.
type BrowserID string

func (b BrowserID) String() string { return string(b) }

// CookieAccessor abstracts cookie storage so the identity provider never
// touches ambient request state directly.
type CookieAccessor interface {
	Cookie(name string) (*http.Cookie, error)
	SetCookie(cookie *http.Cookie)
}

// IdentityProvider issues and returns the anonymous browser identity.
type IdentityProvider interface {
	// GetOrCreate returns the existing identity unchanged, or mints and
	// persists a new one. Returns ErrStorageUnavailable when cookie storage
	// cannot be used; there is no fallback identity scheme.
	GetOrCreate(cookies CookieAccessor) (BrowserID, error)

	// Current returns the existing identity without ever creating one.
	// ok is false when the browser has no identity yet.
	Current(cookies CookieAccessor) (id BrowserID, ok bool)
}
