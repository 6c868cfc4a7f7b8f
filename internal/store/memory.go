package store

import (
	"context"
	"sync"

	"github.com/mathildeew/posts-api/internal/model"
)

// MemoryStore keeps the collection in an ordered slice guarded by a single
// mutex. The find-then-mutate sequences are not atomic on their own, so every
// operation holds the lock for its full duration.
//
// Ids come from a counter that only ever increments. Deriving the next id
// from the current size would reuse ids after a delete.
type MemoryStore struct {
	mu     sync.Mutex
	posts  []model.Post
	nextID int64
}

// NewMemoryStore returns a store seeded with three posts, ids 1 through 3.
func NewMemoryStore() *MemoryStore {
	seed := []model.Post{
		{ID: 1, Title: "Post 1"},
		{ID: 2, Title: "Post 2"},
		{ID: 3, Title: "Post 3"},
	}
	return &MemoryStore{
		posts:  seed,
		nextID: int64(len(seed)) + 1,
	}
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.posts)
	if limit > 0 && limit < n {
		n = limit
	}
	// Copy so callers never alias the slice the lock protects.
	out := make([]model.Post, n)
	copy(out, s.posts[:n])
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id int64) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Post{}, ErrPostNotFound
}

func (s *MemoryStore) Create(_ context.Context, title string) (model.Post, error) {
	if title == "" {
		return model.Post{}, ErrTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Post{ID: s.nextID, Title: title}
	s.nextID++
	s.posts = append(s.posts, p)
	return p, nil
}

func (s *MemoryStore) Update(_ context.Context, id int64, title string) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Title = title
			return s.posts[i], nil
		}
	}
	return model.Post{}, ErrPostNotFound
}

func (s *MemoryStore) Delete(_ context.Context, id int64) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return p, nil
		}
	}
	return model.Post{}, ErrPostNotFound
}
