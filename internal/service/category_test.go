package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCategoryFixture() (*fakeUserStore, *fakeCategoryStore, *CategoryService) {
	users := newFakeUserStore()
	categories := newFakeCategoryStore()
	svc := NewCategoryService(newTestServer(), users, categories)
	return users, categories, svc
}

func TestCategoryServiceListRequiresUser(t *testing.T) {
	_, categories, svc := newCategoryFixture()

	_, err := svc.List(context.Background(), primitive.NewObjectID())

	httpErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "User not found in the database", httpErr.Message)
	assert.Empty(t, categories.categories)
}

func TestCategoryServiceListScopedToOwner(t *testing.T) {
	users, categories, svc := newCategoryFixture()
	alice := users.seed("alice")
	bob := users.seed("bob")
	categories.seed(alice.ID, "Go")
	categories.seed(alice.ID, "Databases")
	categories.seed(bob.ID, "Cooking")

	got, err := svc.List(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCategoryServiceCreate(t *testing.T) {
	users, _, svc := newCategoryFixture()
	alice := users.seed("alice")

	category, err := svc.Create(context.Background(), alice.ID, "Go")
	require.NoError(t, err)

	assert.False(t, category.ID.IsZero())
	assert.Equal(t, "Go", category.Title)
	assert.Equal(t, alice.ID, category.User)
}

func TestCategoryServiceCreateUnknownUserDoesNotInsert(t *testing.T) {
	_, categories, svc := newCategoryFixture()

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), "Go")

	requireStatus(t, err, http.StatusNotFound)
	assert.Zero(t, categories.inserts)
}

func TestCategoryServiceUpdate(t *testing.T) {
	users, categories, svc := newCategoryFixture()
	alice := users.seed("alice")
	category := categories.seed(alice.ID, "Go")

	updated, err := svc.Update(context.Background(), alice.ID, category.ID, "Golang")
	require.NoError(t, err)
	assert.Equal(t, "Golang", updated.Title)
}

func TestCategoryServiceUpdateForeignOwnerReadsAsNotFound(t *testing.T) {
	users, categories, svc := newCategoryFixture()
	alice := users.seed("alice")
	bob := users.seed("bob")
	category := categories.seed(alice.ID, "Go")

	_, err := svc.Update(context.Background(), bob.ID, category.ID, "Stolen")

	// Same 404 as a genuinely absent category, and no write happened.
	httpErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Category not found in the database", httpErr.Message)
	assert.Zero(t, categories.updates)
	assert.Equal(t, "Go", categories.categories[category.ID].Title)
}

func TestCategoryServiceUpdateUnknownCategory(t *testing.T) {
	users, categories, svc := newCategoryFixture()
	alice := users.seed("alice")

	_, err := svc.Update(context.Background(), alice.ID, primitive.NewObjectID(), "Golang")

	requireStatus(t, err, http.StatusNotFound)
	assert.Zero(t, categories.updates)
}

func TestCategoryServiceDelete(t *testing.T) {
	users, categories, svc := newCategoryFixture()
	alice := users.seed("alice")
	category := categories.seed(alice.ID, "Go")

	require.NoError(t, svc.Delete(context.Background(), alice.ID, category.ID))
	assert.Empty(t, categories.categories)
}

func TestCategoryServiceDeleteForeignOwnerReadsAsNotFound(t *testing.T) {
	users, categories, svc := newCategoryFixture()
	alice := users.seed("alice")
	bob := users.seed("bob")
	category := categories.seed(alice.ID, "Go")

	err := svc.Delete(context.Background(), bob.ID, category.ID)

	requireStatus(t, err, http.StatusNotFound)
	assert.Zero(t, categories.deletes)
	assert.Len(t, categories.categories, 1)
}
