// Package repository handles all interactions with the database.
//
// It contains the MongoDB queries and methods to fetch, persist,
// update, or delete documents, abstracting driver logic away from the
// service layer. Repositories never interpret errors: driver errors
// (including mongo.ErrNoDocuments) flow upward for the service layer
// and the dberr funnel to classify.
package repository

import (
	"github.com/rakhadavedra/blogstack/internal/server"
)

// Repositories is a container for all repository instances, wired once
// at startup and handed to the service layer.
type Repositories struct {
	Users      *UserRepository
	Categories *CategoryRepository
	Blogs      *BlogRepository
}

// NewRepositories constructs the repository container from the shared
// database handle on the application container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(s),
		Categories: NewCategoryRepository(s),
		Blogs:      NewBlogRepository(s),
	}
}
