package repository

import (
	"sync"

	"github.com/masterblog/masterblog-api/internal/post"
)

// MemoryStore keeps the collection in memory. Used by unit tests and when no
// storage file is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	posts []post.Post
}

func NewMemoryStore(seed ...post.Post) *MemoryStore {
	s := &MemoryStore{posts: make([]post.Post, len(seed))}
	copy(s.posts, seed)
	return s
}

func (s *MemoryStore) Load() ([]post.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]post.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *MemoryStore) Save(posts []post.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = make([]post.Post, len(posts))
	copy(s.posts, posts)
	return nil
}
