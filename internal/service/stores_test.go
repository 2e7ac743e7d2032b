package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rakhadavedra/blogstack/internal/errs"
	"github.com/rakhadavedra/blogstack/internal/model"
	"github.com/rakhadavedra/blogstack/internal/repository"
	"github.com/rakhadavedra/blogstack/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory stores standing in for the repositories. They return
// mongo.ErrNoDocuments exactly where the real ones would, and count
// mutations so tests can assert that a failed ownership check stopped
// the chain before any write.

func newTestServer() *server.Server {
	log := zerolog.Nop()
	return &server.Server{Logger: &log}
}

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, status, httpErr.Status)
	return httpErr
}

type fakeUserStore struct {
	users   map[primitive.ObjectID]model.User
	inserts int
	updates int
	deletes int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]model.User)}
}

func (f *fakeUserStore) seed(username string) model.User {
	now := time.Now().UTC()
	user := model.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) Find(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, user *model.User) error {
	f.inserts++
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &user, nil
}

func (f *fakeUserStore) UpdateUsername(ctx context.Context, id primitive.ObjectID, username string) (*model.User, error) {
	f.updates++
	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	user.Username = username
	user.UpdatedAt = time.Now().UTC()
	f.users[id] = user
	return &user, nil
}

func (f *fakeUserStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	f.deletes++
	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(f.users, id)
	return &user, nil
}

type fakeCategoryStore struct {
	categories map[primitive.ObjectID]model.Category
	inserts    int
	updates    int
	deletes    int
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[primitive.ObjectID]model.Category)}
}

func (f *fakeCategoryStore) seed(userID primitive.ObjectID, title string) model.Category {
	now := time.Now().UTC()
	category := model.Category{
		ID:        primitive.NewObjectID(),
		Title:     title,
		User:      userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.categories[category.ID] = category
	return category
}

func (f *fakeCategoryStore) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Category, error) {
	out := []model.Category{}
	for _, category := range f.categories {
		if category.User == userID {
			out = append(out, category)
		}
	}
	return out, nil
}

func (f *fakeCategoryStore) Insert(ctx context.Context, category *model.Category) error {
	f.inserts++
	now := time.Now().UTC()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = now
	category.UpdatedAt = now
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &category, nil
}

func (f *fakeCategoryStore) FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*model.Category, error) {
	category, ok := f.categories[id]
	if !ok || category.User != userID {
		return nil, mongo.ErrNoDocuments
	}
	return &category, nil
}

func (f *fakeCategoryStore) UpdateTitle(ctx context.Context, id primitive.ObjectID, title string) (*model.Category, error) {
	f.updates++
	category, ok := f.categories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	category.Title = title
	category.UpdatedAt = time.Now().UTC()
	f.categories[id] = category
	return &category, nil
}

func (f *fakeCategoryStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	f.deletes++
	if _, ok := f.categories[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.categories, id)
	return nil
}

type fakeBlogStore struct {
	blogs     map[primitive.ObjectID]model.Blog
	inserts   int
	updates   int
	deletes   int
	lastQuery repository.BlogQuery
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: make(map[primitive.ObjectID]model.Blog)}
}

func (f *fakeBlogStore) seed(userID, categoryID primitive.ObjectID, title, description string, createdAt time.Time) model.Blog {
	blog := model.Blog{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		User:        userID,
		Category:    categoryID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	f.blogs[blog.ID] = blog
	return blog
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (f *fakeBlogStore) Find(ctx context.Context, q repository.BlogQuery) ([]model.Blog, error) {
	f.lastQuery = q

	out := []model.Blog{}
	for _, blog := range f.blogs {
		if blog.User != q.User || blog.Category != q.Category {
			continue
		}
		if q.Keyword != "" && !containsFold(blog.Title, q.Keyword) && !containsFold(blog.Description, q.Keyword) {
			continue
		}
		if q.Start != nil && blog.CreatedAt.Before(*q.Start) {
			continue
		}
		if q.End != nil && blog.CreatedAt.After(*q.End) {
			continue
		}
		out = append(out, blog)
	}

	sort.Slice(out, func(i, j int) bool {
		if q.SortAscending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeBlogStore) Insert(ctx context.Context, blog *model.Blog) error {
	f.inserts++
	now := time.Now().UTC()
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	f.blogs[blog.ID] = *blog
	return nil
}

func (f *fakeBlogStore) FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*model.Blog, error) {
	blog, ok := f.blogs[id]
	if !ok || blog.User != userID {
		return nil, mongo.ErrNoDocuments
	}
	return &blog, nil
}

func (f *fakeBlogStore) FindOwnedInCategory(ctx context.Context, id, userID, categoryID primitive.ObjectID) (*model.Blog, error) {
	blog, ok := f.blogs[id]
	if !ok || blog.User != userID || blog.Category != categoryID {
		return nil, mongo.ErrNoDocuments
	}
	return &blog, nil
}

func (f *fakeBlogStore) Update(ctx context.Context, id primitive.ObjectID, title, description string) (*model.Blog, error) {
	f.updates++
	blog, ok := f.blogs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	blog.Title = title
	blog.Description = description
	blog.UpdatedAt = time.Now().UTC()
	f.blogs[id] = blog
	return &blog, nil
}

func (f *fakeBlogStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	f.deletes++
	if _, ok := f.blogs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.blogs, id)
	return nil
}
