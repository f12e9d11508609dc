package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name      string
		id        Identity
		user      bool
		admin     bool
		anonymous bool
	}{
		{name: "zero value", id: Identity{}, anonymous: true},
		{name: "user", id: UserIdentity(3, "Ann"), user: true},
		{name: "admin", id: AdminIdentity(1), admin: true},
		{name: "user kind without id", id: Identity{Kind: UserKind}, anonymous: true},
		{name: "unknown kind", id: Identity{Kind: "guest", ID: 9}, anonymous: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.user, tt.id.IsUser())
			assert.Equal(t, tt.admin, tt.id.IsAdmin())
			assert.Equal(t, tt.anonymous, tt.id.IsAnonymous())
		})
	}
}
