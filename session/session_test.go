package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamdesk"
)

func TestSession_SetClear(t *testing.T) {
	store := &MemStore{}
	s := New(store)
	require.NoError(t, s.Init())

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())

	user := teamdesk.User{ID: uuid.New(), Username: "alice", Email: "a@x.com", Role: teamdesk.RoleManager}
	require.NoError(t, s.Set("tok", user))

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsManager())
	assert.False(t, s.IsMember())
	assert.Equal(t, "tok", s.Token())

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, user, current)

	// The pair must be persisted together
	token, persisted, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok", token)
	assert.Equal(t, user, persisted)

	require.NoError(t, s.Clear())
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	_, _, ok, err = store.Load()
	require.NoError(t, err)
	assert.False(t, ok, "clear should also wipe the store")
}

func TestSession_InitFromStore(t *testing.T) {
	store := &MemStore{}
	user := teamdesk.User{ID: uuid.New(), Username: "bob", Email: "b@x.com", Role: teamdesk.RoleMember}
	require.NoError(t, store.Save("persisted", user))

	s := New(store)
	require.NoError(t, s.Init())

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsMember())
	assert.Equal(t, "persisted", s.Token())
}

func TestSession_Expiry(t *testing.T) {
	s := New(&MemStore{})

	// No token
	_, ok := s.Expiry()
	assert.False(t, ok)

	// Opaque token
	require.NoError(t, s.Set("not-a-jwt", teamdesk.User{}))
	_, ok = s.Expiry()
	assert.False(t, ok)

	// Real JWT with an expiry two hours out
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("key"))
	require.NoError(t, err)

	require.NoError(t, s.Set(signed, teamdesk.User{}))
	got, ok := s.Expiry()
	require.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())
	assert.False(t, s.Expired())
}
