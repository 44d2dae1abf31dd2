package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/erwinjamescodes/sinotoriables/internal/domain"
)

// echoCookies adapts an echo request/response pair to the cookie accessor the
// identity provider expects.
type echoCookies struct {
	c echo.Context
}

var _ domain.CookieAccessor = echoCookies{}

func newEchoCookies(c echo.Context) echoCookies {
	return echoCookies{c: c}
}

func (e echoCookies) Cookie(name string) (*http.Cookie, error) {
	return e.c.Cookie(name)
}

func (e echoCookies) SetCookie(cookie *http.Cookie) {
	e.c.SetCookie(cookie)
}
