package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/masterblog/masterblog-api/internal/post"
	"github.com/masterblog/masterblog-api/internal/post/repository"
	"github.com/masterblog/masterblog-api/internal/post/service"
)

func newAPI(seed ...post.Post) *gin.Engine {
	g := gin.New()
	RegisterPostRoutes(g, service.New(repository.NewMemoryStore(seed...)))
	return g
}

func do(t *testing.T, g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func decodePosts(t *testing.T, w *httptest.ResponseRecorder) []post.Post {
	t.Helper()
	var posts []post.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	return posts
}

func TestPostRoutes_CreateThenListRoundTrip(t *testing.T) {
	g := newAPI()

	w := do(t, g, http.MethodPost, "/api/posts", `{"title":"First","content":"Hello","author":"Jane","date":"2024-06-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created post.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, 1, created.ID)

	w = do(t, g, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, w.Code)
	posts := decodePosts(t, w)
	require.Len(t, posts, 1)
	require.Equal(t, post.Post{ID: 1, Title: "First", Content: "Hello", Author: "Jane", Date: "2024-06-01"}, posts[0])
}

func TestPostRoutes_CreateValidation(t *testing.T) {
	g := newAPI()

	w := do(t, g, http.MethodPost, "/api/posts", `{"title":"t","content":"c","date":"2024-06-01"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Valid author is required")

	w = do(t, g, http.MethodPost, "/api/posts", `{"title":"t","content":"c","author":"a","date":"2023-13-40"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Date must be YYYY-MM-DD")

	w = do(t, g, http.MethodPost, "/api/posts", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "JSON body required")

	// nothing persisted
	w = do(t, g, http.MethodGet, "/api/posts", "")
	require.Empty(t, decodePosts(t, w))
}

func TestPostRoutes_ListSorted(t *testing.T) {
	g := newAPI(
		post.Post{ID: 1, Title: "b", Content: "c", Author: "a", Date: "2024-03-05"},
		post.Post{ID: 2, Title: "A", Content: "c", Author: "a", Date: "2024-06-01"},
	)

	w := do(t, g, http.MethodGet, "/api/posts?sort=date&direction=desc", "")
	require.Equal(t, http.StatusOK, w.Code)
	posts := decodePosts(t, w)
	require.Equal(t, "2024-06-01", posts[0].Date)

	w = do(t, g, http.MethodGet, "/api/posts?sort=title", "")
	require.Equal(t, http.StatusOK, w.Code)
	posts = decodePosts(t, w)
	require.Equal(t, 2, posts[0].ID)

	w = do(t, g, http.MethodGet, "/api/posts?sort=rating", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid sort request.")

	w = do(t, g, http.MethodGet, "/api/posts?sort=title&direction=up", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid direction.")
}

func TestPostRoutes_Search(t *testing.T) {
	g := newAPI(
		post.Post{ID: 1, Title: "Go", Content: "c", Author: "John Smith", Date: "2024-03-05"},
		post.Post{ID: 2, Title: "Rust", Content: "c", Author: "Jane", Date: "2024-06-01"},
	)

	w := do(t, g, http.MethodGet, "/api/posts/search?author=john", "")
	require.Equal(t, http.StatusOK, w.Code)
	posts := decodePosts(t, w)
	require.Len(t, posts, 1)
	require.Equal(t, "John Smith", posts[0].Author)

	// no filters -> empty result, not the full collection
	w = do(t, g, http.MethodGet, "/api/posts/search", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decodePosts(t, w))
}

func TestPostRoutes_Update(t *testing.T) {
	g := newAPI(post.Post{ID: 1, Title: "Old", Content: "c", Author: "a", Date: "2024-03-05"})

	w := do(t, g, http.MethodPut, "/api/posts/1", `{"title":"New"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated post.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "New", updated.Title)
	require.Equal(t, "a", updated.Author)

	w = do(t, g, http.MethodPut, "/api/posts/1", `{"date":"bad"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, g, http.MethodPut, "/api/posts/99", `{"title":"x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Post Not Found")

	// empty body is a no-op update
	w = do(t, g, http.MethodPut, "/api/posts/1", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPostRoutes_Delete(t *testing.T) {
	g := newAPI(post.Post{ID: 1, Title: "t", Content: "c", Author: "a", Date: "2024-03-05"})

	w := do(t, g, http.MethodDelete, "/api/posts/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, g, http.MethodDelete, "/api/posts/abc", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, g, http.MethodDelete, "/api/posts/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Post 1 has been deleted.")

	w = do(t, g, http.MethodGet, "/api/posts", "")
	require.Empty(t, decodePosts(t, w))
}

func TestPostRoutes_StorageFailureIs500(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o644))

	g := gin.New()
	RegisterPostRoutes(g, service.New(repository.NewFileStore(path)))

	w := do(t, g, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
