package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"capstone/internal/models"
)

type fakeSessions map[string]models.Identity

func (f fakeSessions) GetSession(_ context.Context, token string) (models.Identity, error) {
	if token == "broken" {
		return models.Identity{}, errors.New("db down")
	}
	return f[token], nil
}

func TestSession(t *testing.T) {
	store := fakeSessions{
		"u": models.UserIdentity(5, "Ann"),
		"a": models.AdminIdentity(1),
	}

	tests := []struct {
		name   string
		cookie string
		want   models.Identity
	}{
		{name: "no cookie", want: models.Identity{}},
		{name: "user session", cookie: "u", want: models.UserIdentity(5, "Ann")},
		{name: "admin session", cookie: "a", want: models.AdminIdentity(1)},
		{name: "unknown token", cookie: "zzz", want: models.Identity{}},
		{name: "store error", cookie: "broken", want: models.Identity{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Identity
			h := Session(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = IdentityFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}
