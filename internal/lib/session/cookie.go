package session

import (
	"net/http"
	"time"
)

// Cookie describes the session cookie the service issues: HTTP-only,
// SameSite=Strict, Secure outside local deployments.
type Cookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Set writes the session cookie carrying the given token.
func (c Cookie) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear expires the session cookie on the client. The token itself
// stays valid until its expiry; see the package comment.
func (c Cookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
