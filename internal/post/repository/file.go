package repository

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/masterblog/masterblog-api/internal/post"
)

// Store is the persistence boundary for the post collection. Implementations
// load and save the whole collection; callers own ordering and mutation.
type Store interface {
	Load() ([]post.Post, error)
	Save(posts []post.Post) error
}

// FileStore persists posts as an indented JSON array in a single file.
// A missing file is treated as an empty collection (first run); a file that
// exists but cannot be read, parsed or written is a storage failure.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() ([]post.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []post.Post{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read posts file %s", s.path)
	}

	var posts []post.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, errors.Wrapf(err, "decode posts file %s", s.path)
	}
	if posts == nil {
		posts = []post.Post{}
	}
	return posts, nil
}

func (s *FileStore) Save(posts []post.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(posts, "", "    ")
	if err != nil {
		return errors.Wrap(err, "encode posts")
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "write posts file %s", s.path)
	}
	return nil
}
