package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIsAuthenticated(t *testing.T) {
	t.Parallel()

	user := &User{ID: "1", Email: "a@x.com", Role: RoleUser}

	tests := []struct {
		name string
		sess Session
		want bool
	}{
		{name: "empty session", sess: Session{}, want: false},
		{name: "token without user", sess: Session{Token: "t"}, want: false},
		{name: "user without token", sess: Session{User: user}, want: false},
		{name: "both present", sess: Session{User: user, Token: "t"}, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.sess.IsAuthenticated())
		})
	}
}

func TestSessionHasRole(t *testing.T) {
	t.Parallel()

	admin := Session{User: &User{ID: "1", Role: RoleAdmin}, Token: "t"}
	user := Session{User: &User{ID: "2", Role: RoleUser}, Token: "t"}

	assert.True(t, admin.HasRole(RoleAdmin))
	assert.True(t, admin.HasRole(RoleAdmin, RoleUser))
	assert.False(t, user.HasRole(RoleAdmin))
	assert.True(t, user.HasRole(), "empty role list admits any authenticated user")
	assert.False(t, Session{}.HasRole(), "unauthenticated session has no roles")
}

func TestUserUnmarshalLowercase(t *testing.T) {
	t.Parallel()

	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":"u-1","name":"Ada","email":"ada@x.com","role":"USER"}`), &u))
	assert.Equal(t, User{ID: "u-1", Name: "Ada", Email: "ada@x.com", Role: RoleUser}, u)
}

func TestUserUnmarshalUppercaseAndNumericID(t *testing.T) {
	t.Parallel()

	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"ID":42,"NAME":"Grace","EMAIL":"grace@x.com","ROLE":"ADMIN"}`), &u))
	assert.Equal(t, User{ID: "42", Name: "Grace", Email: "grace@x.com", Role: RoleAdmin}, u)
}

func TestUserUnmarshalPrefersLowercase(t *testing.T) {
	t.Parallel()

	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":"u-1","ID":"u-2","email":"a@x.com"}`), &u))
	assert.Equal(t, "u-1", u.ID)
}
