package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/masterblog/masterblog-api/internal/post"
	"github.com/masterblog/masterblog-api/internal/post/service"
	"github.com/masterblog/masterblog-api/pkg/metrics"
)

// RegisterPostRoutes registers the blog post REST endpoints.
func RegisterPostRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/api/posts", func(c *gin.Context) {
		posts, err := svc.List(c.Query("sort"), c.DefaultQuery("direction", "asc"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
	})

	r.GET("/api/posts/search", func(c *gin.Context) {
		f := post.Filter{
			Title:   c.Query("title"),
			Content: c.Query("content"),
			Author:  c.Query("author"),
			Date:    c.Query("date"),
		}
		posts, err := svc.Search(f)
		if err != nil {
			writeError(c, err)
			return
		}
		metrics.SearchQueries.Inc()
		c.JSON(http.StatusOK, posts)
	})

	r.POST("/api/posts", func(c *gin.Context) {
		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
			Author  string `json:"author"`
			Date    string `json:"date"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "JSON body required"})
			return
		}
		created, err := svc.Create(post.Post{Title: req.Title, Content: req.Content, Author: req.Author, Date: req.Date})
		if err != nil {
			writeError(c, err)
			return
		}
		metrics.PostsCreated.Inc()
		c.JSON(http.StatusCreated, created)
	})

	r.PUT("/api/posts/:id", func(c *gin.Context) {
		id, ok := postID(c)
		if !ok {
			return
		}
		var upd post.Update
		// an absent body means "change nothing", matching the PUT contract
		if err := c.ShouldBindJSON(&upd); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "JSON body required"})
			return
		}
		updated, err := svc.Update(id, upd)
		if err != nil {
			writeError(c, err)
			return
		}
		metrics.PostsUpdated.Inc()
		c.JSON(http.StatusOK, updated)
	})

	r.DELETE("/api/posts/:id", func(c *gin.Context) {
		id, ok := postID(c)
		if !ok {
			return
		}
		if err := svc.Delete(id); err != nil {
			writeError(c, err)
			return
		}
		metrics.PostsDeleted.Inc()
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Post %d has been deleted.", id)})
	})
}

// postID parses the :id path parameter. A non-numeric id behaves like an
// unknown post.
func postID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post Not Found"})
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	var verr *post.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post Not Found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
