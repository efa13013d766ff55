package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the posts API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Masterblog API — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// OpenAPI document for the post CRUD and search endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Masterblog API", "version": "v1.0.0" },
  "paths": {
    "/api/posts": {
      "get": {
        "summary": "List all posts, optionally sorted",
        "parameters": [
          { "name": "sort", "in": "query", "schema": { "type": "string", "enum": ["title", "content", "author", "date"] } },
          { "name": "direction", "in": "query", "schema": { "type": "string", "enum": ["asc", "desc"] } }
        ],
        "responses": { "200": { "description": "list of posts" }, "400": { "description": "bad sort or direction" } }
      },
      "post": {
        "summary": "Create a new post",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title","content","author","date"],"properties":{"title":{"type":"string"},"content":{"type":"string"},"author":{"type":"string"},"date":{"type":"string","format":"date"}}}}}},
        "responses": { "201": { "description": "post created" }, "400": { "description": "missing or invalid field" } }
      }
    },
    "/api/posts/search": {
      "get": {
        "summary": "Search posts by field",
        "parameters": [
          { "name": "title", "in": "query", "schema": { "type": "string" } },
          { "name": "content", "in": "query", "schema": { "type": "string" } },
          { "name": "author", "in": "query", "schema": { "type": "string" } },
          { "name": "date", "in": "query", "schema": { "type": "string", "format": "date" } }
        ],
        "responses": { "200": { "description": "matching posts" } }
      }
    },
    "/api/posts/{id}": {
      "put": {
        "summary": "Update a post by id",
        "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "integer" } } ],
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"content":{"type":"string"},"author":{"type":"string"},"date":{"type":"string","format":"date"}}}}}},
        "responses": { "200": { "description": "updated post" }, "400": { "description": "invalid field" }, "404": { "description": "post not found" } }
      },
      "delete": {
        "summary": "Delete a post by id",
        "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "integer" } } ],
        "responses": { "200": { "description": "post deleted" }, "404": { "description": "post not found" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
