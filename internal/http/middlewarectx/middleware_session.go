// Package middlewarectx contains the HTTP middleware of the service:
// session-cookie authentication and request rate limiting.
//
// SessionMiddleware reads the session cookie, verifies the signed token
// and puts the resolved user uid into the request context for the
// handlers. Missing, malformed, tampered and expired tokens all produce
// HTTP 401 with the standard error envelope.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/annakorobkova/inspira/internal/http/response"
	"github.com/annakorobkova/inspira/internal/lib/session"
	"github.com/annakorobkova/inspira/internal/lib/sl"
)

// Key is the type of the request context keys set by this package.
type Key string

// UserUID is the context key holding the authenticated user uid.
const UserUID Key = "user_uid"

// SessionMiddleware returns the middleware enforcing a valid session
// cookie on every request of the group.
func SessionMiddleware(maker session.Maker, cookieName string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				log.Error("missing session cookie")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			claims, err := maker.ParseToken(cookie.Value)
			if err != nil {
				log.Error("invalid or expired session token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired session"))
				return
			}

			ctx := context.WithValue(r.Context(), UserUID, claims.UserUID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserUIDFromContext returns the authenticated user uid set by
// SessionMiddleware.
func UserUIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UserUID).(string)
	return uid, ok && uid != ""
}
