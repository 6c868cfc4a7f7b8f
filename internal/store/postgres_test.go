package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathildeew/posts-api/internal/db"
)

// TestPostgresStore needs a live database; set POSTS_TEST_DSN to run it.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("POSTS_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTS_TEST_DSN not set")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	s, err := NewPostgresStore(ctx, pool)
	require.NoError(t, err)

	created, err := s.Create(ctx, "Integration post")
	require.NoError(t, err)
	assert.Equal(t, "Integration post", created.Title)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := s.Update(ctx, created.ID, "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, created.ID, updated.ID)

	deleted, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, deleted)

	_, err = s.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = s.Create(ctx, "")
	assert.ErrorIs(t, err, ErrTitleRequired)
}
