package middleware

import (
	"context"
	"net/http"

	"capstone/internal/models"
)

const SessionCookie = "session"

type contextKey string

const identityContextKey contextKey = "identity"

type SessionReader interface {
	GetSession(ctx context.Context, token string) (models.Identity, error)
}

// Session resolves the session cookie to an Identity and stores it on the
// request context. Requests without a live session carry the anonymous identity.
func Session(store SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			cookie, err := req.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, req)
				return
			}

			id, err := store.GetSession(req.Context(), cookie.Value)
			if err != nil || id.IsAnonymous() {
				next.ServeHTTP(w, req)
				return
			}

			next.ServeHTTP(w, req.WithContext(WithIdentity(req.Context(), id)))
		})
	}
}

func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

func IdentityFromContext(ctx context.Context) models.Identity {
	id, _ := ctx.Value(identityContextKey).(models.Identity)
	return id
}
