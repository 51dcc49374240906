package token

import "net/http"

// CookieName is the fixed name of the session cookie.
const CookieName = "jwt"

// NewAuthCookie wraps a signed token for transport. HttpOnly keeps it away
// from scripts, Secure restricts it to TLS, and SameSite=Lax blocks
// cross-site POSTs from carrying it.
func NewAuthCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearAuthCookie returns a cookie that instructs the client to drop the
// session cookie immediately.
func ClearAuthCookie() *http.Cookie {
	c := NewAuthCookie("")
	c.MaxAge = -1
	return c
}
