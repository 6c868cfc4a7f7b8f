package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mathildeew/posts-api/internal/model"
)

// PostgresStore implements Store on a posts table. BIGSERIAL gives ids the
// same monotonic behavior the memory backend gets from its counter.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore ensures the posts table exists and returns the store.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	const schema = `
	CREATE TABLE IF NOT EXISTS posts (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL
	);`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure posts table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) List(ctx context.Context, limit int) ([]model.Post, error) {
	const q = `SELECT id, title FROM posts ORDER BY id;`
	const qLimit = `SELECT id, title FROM posts ORDER BY id LIMIT $1;`

	var rows pgx.Rows
	var err error
	if limit > 0 {
		rows, err = s.pool.Query(ctx, qLimit, limit)
	} else {
		rows, err = s.pool.Query(ctx, q)
	}
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var res []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Title); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (s *PostgresStore) Get(ctx context.Context, id int64) (model.Post, error) {
	const q = `SELECT id, title FROM posts WHERE id = $1;`
	var p model.Post
	if err := s.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Title); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, ErrPostNotFound
		}
		return model.Post{}, fmt.Errorf("query post %d: %w", id, err)
	}
	return p, nil
}

func (s *PostgresStore) Create(ctx context.Context, title string) (model.Post, error) {
	if title == "" {
		return model.Post{}, ErrTitleRequired
	}
	const q = `INSERT INTO posts (title) VALUES ($1) RETURNING id;`
	p := model.Post{Title: title}
	if err := s.pool.QueryRow(ctx, q, title).Scan(&p.ID); err != nil {
		return model.Post{}, fmt.Errorf("insert post: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Update(ctx context.Context, id int64, title string) (model.Post, error) {
	const q = `UPDATE posts SET title = $2 WHERE id = $1 RETURNING id, title;`
	var p model.Post
	if err := s.pool.QueryRow(ctx, q, id, title).Scan(&p.ID, &p.Title); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, ErrPostNotFound
		}
		return model.Post{}, fmt.Errorf("update post %d: %w", id, err)
	}
	return p, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) (model.Post, error) {
	const q = `DELETE FROM posts WHERE id = $1 RETURNING id, title;`
	var p model.Post
	if err := s.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Title); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, ErrPostNotFound
		}
		return model.Post{}, fmt.Errorf("delete post %d: %w", id, err)
	}
	return p, nil
}
