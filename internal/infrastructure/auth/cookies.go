package auth

import (
	"net/http"
	"time"
)

// Cookie names shared with the web client.
const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// CookieWriter sets and clears the HttpOnly auth cookies.
type CookieWriter struct {
	Secure bool
}

// Set writes an HttpOnly cookie that expires after ttl.
func (c CookieWriter) Set(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: sameSite(c.Secure),
	})
}

// Clear expires a cookie immediately.
func (c CookieWriter) Clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: sameSite(c.Secure),
	})
}

// Cross-site cookies are only accepted by browsers when Secure is set.
func sameSite(secure bool) http.SameSite {
	if secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
