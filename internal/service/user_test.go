package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserServiceCreateAssignsIdentity(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(newTestServer(), users)

	user, err := svc.Create(context.Background(), "alice")
	require.NoError(t, err)

	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserServiceCreateAllowsDuplicateUsernames(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(newTestServer(), users)

	first, err := svc.Create(context.Background(), "alice")
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), "alice")
	require.NoError(t, err)

	// Identity is the id, not the username.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUserServiceList(t *testing.T) {
	users := newFakeUserStore()
	users.seed("alice")
	users.seed("bob")
	svc := NewUserService(newTestServer(), users)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUserServiceRename(t *testing.T) {
	users := newFakeUserStore()
	alice := users.seed("alice")
	svc := NewUserService(newTestServer(), users)

	renamed, err := svc.Rename(context.Background(), alice.ID, "alicia")
	require.NoError(t, err)
	assert.Equal(t, "alicia", renamed.Username)
	assert.Equal(t, alice.ID, renamed.ID)
}

func TestUserServiceRenameUnknownUser(t *testing.T) {
	svc := NewUserService(newTestServer(), newFakeUserStore())

	_, err := svc.Rename(context.Background(), primitive.NewObjectID(), "alicia")

	httpErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "User not found in the database", httpErr.Message)
}

func TestUserServiceDeleteReturnsDeletedUser(t *testing.T) {
	users := newFakeUserStore()
	alice := users.seed("alice")
	svc := NewUserService(newTestServer(), users)

	deleted, err := svc.Delete(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", deleted.Username)
}

func TestUserServiceDeleteTwiceIsNotFound(t *testing.T) {
	users := newFakeUserStore()
	alice := users.seed("alice")
	svc := NewUserService(newTestServer(), users)

	_, err := svc.Delete(context.Background(), alice.ID)
	require.NoError(t, err)

	// The second delete finds nothing; that is a 404, not a 500.
	_, err = svc.Delete(context.Background(), alice.ID)
	requireStatus(t, err, http.StatusNotFound)
}
