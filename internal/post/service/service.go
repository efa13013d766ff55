package service

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/masterblog/masterblog-api/internal/post"
	"github.com/masterblog/masterblog-api/internal/post/repository"
)

var ErrNotFound = errors.New("post not found")

// Service defines the post business operations used by the handler layer.
// Every call reloads the collection from the store, so the store stays the
// single owner of all post records.
type Service interface {
	List(sortKey, direction string) ([]post.Post, error)
	Search(f post.Filter) ([]post.Post, error)
	Create(p post.Post) (post.Post, error)
	Update(id int, upd post.Update) (post.Post, error)
	Delete(id int) error
}

func New(store repository.Store) Service {
	return &postService{store: store}
}

type postService struct {
	store repository.Store
}

// List returns all posts, optionally sorted by one of the post fields.
// Without a sort key posts come back in storage order and direction is
// ignored. Text fields compare case-insensitively, dates chronologically.
func (s *postService) List(sortKey, direction string) ([]post.Post, error) {
	posts, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if sortKey == "" {
		return posts, nil
	}

	var key func(p post.Post) string
	switch sortKey {
	case "title":
		key = func(p post.Post) string { return p.Title }
	case "content":
		key = func(p post.Post) string { return p.Content }
	case "author":
		key = func(p post.Post) string { return p.Author }
	case "date":
		key = func(p post.Post) string { return p.Date }
	default:
		return nil, &post.ValidationError{Field: "sort", Message: "Invalid sort request."}
	}
	if direction != "asc" && direction != "desc" {
		return nil, &post.ValidationError{Field: "direction", Message: "Invalid direction."}
	}

	less := func(a, b post.Post) bool {
		if sortKey == "date" {
			ta, _ := time.Parse(post.DateLayout, a.Date)
			tb, _ := time.Parse(post.DateLayout, b.Date)
			return ta.Before(tb)
		}
		return strings.ToLower(key(a)) < strings.ToLower(key(b))
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if direction == "desc" {
			i, j = j, i
		}
		return less(posts[i], posts[j])
	})
	return posts, nil
}

// Search returns posts matching every supplied filter. Text filters match as
// case-insensitive substrings; the date filter matches exactly. With no
// filters at all the result is empty.
func (s *postService) Search(f post.Filter) ([]post.Post, error) {
	if f.Empty() {
		return []post.Post{}, nil
	}
	posts, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	matched := make([]post.Post, 0, len(posts))
	for _, p := range posts {
		if matches(p, f) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func matches(p post.Post, f post.Filter) bool {
	if f.Title != "" && !containsFold(p.Title, f.Title) {
		return false
	}
	if f.Content != "" && !containsFold(p.Content, f.Content) {
		return false
	}
	if f.Author != "" && !containsFold(p.Author, f.Author) {
		return false
	}
	if f.Date != "" && p.Date != f.Date {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Create validates the post, assigns the next id and appends it.
func (s *postService) Create(p post.Post) (post.Post, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return post.Post{}, err
	}
	posts, err := s.store.Load()
	if err != nil {
		return post.Post{}, err
	}
	p.ID = nextID(posts)
	posts = append(posts, p)
	if err := s.store.Save(posts); err != nil {
		return post.Post{}, err
	}
	return p, nil
}

func nextID(posts []post.Post) int {
	max := 0
	for _, p := range posts {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// Update overwrites the supplied fields of an existing post. Every supplied
// field is re-validated against the same rules as creation; the id is fixed.
func (s *postService) Update(id int, upd post.Update) (post.Post, error) {
	posts, err := s.store.Load()
	if err != nil {
		return post.Post{}, err
	}
	i := indexOf(posts, id)
	if i < 0 {
		return post.Post{}, ErrNotFound
	}
	merged := posts[i]
	if upd.Title != nil {
		merged.Title = *upd.Title
	}
	if upd.Content != nil {
		merged.Content = *upd.Content
	}
	if upd.Author != nil {
		merged.Author = *upd.Author
	}
	if upd.Date != nil {
		merged.Date = *upd.Date
	}
	merged.Normalize()
	if err := merged.Validate(); err != nil {
		return post.Post{}, err
	}
	posts[i] = merged
	if err := s.store.Save(posts); err != nil {
		return post.Post{}, err
	}
	return merged, nil
}

// Delete removes a post by id.
func (s *postService) Delete(id int) error {
	posts, err := s.store.Load()
	if err != nil {
		return err
	}
	i := indexOf(posts, id)
	if i < 0 {
		return ErrNotFound
	}
	posts = append(posts[:i], posts[i+1:]...)
	return s.store.Save(posts)
}

func indexOf(posts []post.Post, id int) int {
	for i, p := range posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
