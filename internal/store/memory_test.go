package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathildeew/posts-api/internal/model"
)

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	posts, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []model.Post{
		{ID: 1, Title: "Post 1"},
		{ID: 2, Title: "Post 2"},
		{ID: 3, Title: "Post 3"},
	}, posts)

	posts, err = s.List(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []model.Post{
		{ID: 1, Title: "Post 1"},
		{ID: 2, Title: "Post 2"},
	}, posts)

	// A limit beyond the collection size returns everything.
	posts, err = s.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	// Non-positive limits return everything.
	posts, err = s.List(ctx, -1)
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}

func TestMemoryStoreGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	post, err := s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.Post{ID: 2, Title: "Post 2"}, post)

	_, err = s.Get(ctx, 99)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestMemoryStoreCreate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	post, err := s.Create(ctx, "Post 4")
	require.NoError(t, err)
	assert.Equal(t, model.Post{ID: 4, Title: "Post 4"}, post)

	posts, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 4)

	// Empty title is rejected and nothing is appended.
	_, err = s.Create(ctx, "")
	assert.ErrorIs(t, err, ErrTitleRequired)

	posts, err = s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 4)
}

func TestMemoryStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	post, err := s.Update(ctx, 2, "Updated")
	require.NoError(t, err)
	assert.Equal(t, model.Post{ID: 2, Title: "Updated"}, post)

	// Only the target's title changes; siblings keep their ids and titles.
	posts, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []model.Post{
		{ID: 1, Title: "Post 1"},
		{ID: 2, Title: "Updated"},
		{ID: 3, Title: "Post 3"},
	}, posts)

	_, err = s.Update(ctx, 99, "Updated")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	post, err := s.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.Post{ID: 2, Title: "Post 2"}, post)

	// Survivors keep their relative order.
	posts, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []model.Post{
		{ID: 1, Title: "Post 1"},
		{ID: 3, Title: "Post 3"},
	}, posts)

	_, err = s.Delete(ctx, 99)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

// Ids must stay unique after a delete. Deriving the next id from the current
// collection size would hand out id 4 twice in this sequence.
func TestMemoryStoreIDsUniqueAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	post, err := s.Create(ctx, "Post 4")
	require.NoError(t, err)
	assert.Equal(t, int64(4), post.ID)

	_, err = s.Delete(ctx, 2)
	require.NoError(t, err)

	post, err = s.Create(ctx, "Post 5")
	require.NoError(t, err)
	assert.Equal(t, int64(5), post.ID)

	posts, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []model.Post{
		{ID: 1, Title: "Post 1"},
		{ID: 3, Title: "Post 3"},
		{ID: 4, Title: "Post 4"},
		{ID: 5, Title: "Post 5"},
	}, posts)
}
