// Package store holds the post collection behind a backend-agnostic contract.
package store

import (
	"context"
	"errors"

	"github.com/mathildeew/posts-api/internal/model"
)

var (
	// ErrPostNotFound is returned by Get, Update and Delete when no post
	// matches the given id.
	ErrPostNotFound = errors.New("post not found")
	// ErrTitleRequired is returned by Create when the title is empty.
	ErrTitleRequired = errors.New("title is required")
)

// Store is the contract every backend implements. All mutations go through
// it; handlers never touch the collection directly.
type Store interface {
	// List returns the first limit posts in collection order.
	// A non-positive limit returns the full collection.
	List(ctx context.Context, limit int) ([]model.Post, error)
	// Get returns the post with the given id.
	Get(ctx context.Context, id int64) (model.Post, error)
	// Create appends a new post with the given title and returns it.
	Create(ctx context.Context, title string) (model.Post, error)
	// Update overwrites the title of the matching post and returns the
	// mutated post.
	Update(ctx context.Context, id int64, title string) (model.Post, error)
	// Delete removes the matching post and returns it as it was before
	// removal. Relative order of the remaining posts is preserved.
	Delete(ctx context.Context, id int64) (model.Post, error)
}
