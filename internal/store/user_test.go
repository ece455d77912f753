package store

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fruitmall/fruitmall-client/internal/localstore"
	"github.com/fruitmall/fruitmall-client/internal/logger"
	"github.com/fruitmall/fruitmall-client/internal/model"
)

func newUserFixture(t *testing.T) (*UserStore, *fakeGateway, *localstore.Store) {
	t.Helper()
	gateway := newFakeGateway()
	local := localstore.NewStore(test.NewApp())
	users := NewUserStore(gateway, local, logger.Nop())
	return users, gateway, local
}

func TestUserStore_LoginInstallsSession(t *testing.T) {
	users, gateway, local := newUserFixture(t)
	gateway.respond("POST /auth/login", `{
		"user": {"id": 7, "username": "alice", "roles": ["ROLE_USER"]},
		"token": "tok-777"
	}`)

	user, err := users.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, model.UserStatusActive, user.Status, "status should default to ACTIVE")

	assert.True(t, users.IsAuthenticated())
	assert.False(t, users.IsAdmin())

	// User and token are persisted together
	require.NotNil(t, local.User())
	assert.Equal(t, "alice", local.User().Username)
	assert.Equal(t, "tok-777", local.Token())
}

func TestUserStore_LoginFailureLeavesNoSession(t *testing.T) {
	users, gateway, local := newUserFixture(t)
	gateway.fail("POST /auth/login", errors.New("bad credentials"))

	_, err := users.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.False(t, users.IsAuthenticated())
	assert.Nil(t, local.User())
	assert.Empty(t, local.Token())
}

func TestUserStore_LogoutClearsEverything(t *testing.T) {
	users, gateway, local := newUserFixture(t)
	gateway.respond("POST /auth/login", `{"user":{"id":1,"username":"bob"},"token":"tok-1"}`)
	_, err := users.Login(context.Background(), "bob", "pw")
	require.NoError(t, err)

	// Logout clears local state even when the backend call fails
	gateway.fail("POST /auth/logout", errors.New("offline"))
	users.Logout(context.Background())

	assert.False(t, users.IsAuthenticated())
	assert.Nil(t, users.Current())
	assert.Nil(t, local.User())
	assert.Empty(t, local.Token())
}

func TestUserStore_RestoresPersistedSession(t *testing.T) {
	gateway := newFakeGateway()
	local := localstore.NewStore(test.NewApp())
	require.NoError(t, local.SaveSession(&model.User{ID: 3, Username: "carol", Roles: []string{model.RoleAdmin}}, "tok-3"))

	users := NewUserStore(gateway, local, logger.Nop())
	assert.True(t, users.IsAuthenticated())
	assert.True(t, users.IsAdmin())
	assert.Equal(t, "carol", users.Current().Username)
}

func TestUserStore_UpdateProfileMergesAndPersists(t *testing.T) {
	users, gateway, local := newUserFixture(t)
	gateway.respond("POST /auth/login", `{"user":{"id":1,"username":"bob","email":"old@x.com"},"token":"t"}`)
	_, err := users.Login(context.Background(), "bob", "pw")
	require.NoError(t, err)

	// Backend answers with a bare ack; the edit fields merge locally
	gateway.respond("PUT /users/profile", `{"result":1,"message":"OK","code":200}`)
	updated, err := users.UpdateProfile(context.Background(), ProfileUpdate{Email: "new@x.com", Address: "上海市"})
	require.NoError(t, err)

	assert.Equal(t, "new@x.com", updated.Email)
	assert.Equal(t, "上海市", updated.Address)
	assert.Equal(t, "bob", updated.Username, "unset fields keep their values")
	assert.Equal(t, "new@x.com", local.User().Email)
}

func TestUserStore_UpdateProfileUsesBackendRecord(t *testing.T) {
	users, gateway, _ := newUserFixture(t)
	gateway.respond("POST /auth/login", `{"user":{"id":1,"username":"bob"},"token":"t"}`)
	_, err := users.Login(context.Background(), "bob", "pw")
	require.NoError(t, err)

	gateway.respond("PUT /users/profile", `{"id":1,"username":"bobby","email":"b@x.com","roles":["ROLE_USER"]}`)
	updated, err := users.UpdateProfile(context.Background(), ProfileUpdate{Username: "bobby"})
	require.NoError(t, err)
	assert.Equal(t, "bobby", updated.Username)
	assert.Equal(t, "b@x.com", updated.Email)
}

func TestUserStore_RegisterDoesNotOpenSession(t *testing.T) {
	users, gateway, local := newUserFixture(t)
	gateway.respond("POST /auth/register", `{"result":1,"message":"OK","code":200}`)

	require.NoError(t, users.Register(context.Background(), RegisterRequest{Username: "dave", Password: "pw"}))
	assert.False(t, users.IsAuthenticated())
	assert.Nil(t, local.User())

	gateway.fail("POST /auth/register", errors.New("username taken"))
	require.Error(t, users.Register(context.Background(), RegisterRequest{Username: "dave", Password: "pw"}))
}

func TestUserStore_ListUsersDecodesWrappedShape(t *testing.T) {
	users, gateway, _ := newUserFixture(t)
	gateway.respond("GET /users", `{"data":{"items":[
		{"id":1,"username":"alice","roles":["ROLE_ADMIN"]},
		{"id":2,"username":"bob","roles":["ROLE_USER"]}
	]}}`)

	got, err := users.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsAdmin())
	assert.False(t, got[1].IsAdmin())
}

func TestUserStore_UpdateProfileFailurePropagates(t *testing.T) {
	users, gateway, _ := newUserFixture(t)
	gateway.respond("POST /auth/login", `{"user":{"id":1,"username":"bob"},"token":"t"}`)
	_, err := users.Login(context.Background(), "bob", "pw")
	require.NoError(t, err)

	gateway.fail("PUT /users/profile", errors.New("validation failed"))
	_, err = users.UpdateProfile(context.Background(), ProfileUpdate{Email: "bad"})
	require.Error(t, err)
	assert.Equal(t, "bob", users.Current().Username, "snapshot untouched on failure")
}
