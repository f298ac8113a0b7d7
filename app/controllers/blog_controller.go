package controllers

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// BlogController handles HTTP requests for blogs
type BlogController struct {
	blogService *services.BlogService
	templates   map[string]*template.Template
	feedLimit   int
}

// SetService sets the blog service for testing
func (bc *BlogController) SetService(service *services.BlogService) {
	bc.blogService = service
}

// SetFeedLimit caps the web feed at n entries when the request does not ask
// for a limit itself. The API listing is unaffected.
func (bc *BlogController) SetFeedLimit(n int) {
	bc.feedLimit = n
}

// NewBlogControllerWithDB creates a new BlogController with a DB instance
func NewBlogControllerWithDB(db *badger.DB) *BlogController {
	return NewBlogControllerWithDBAndPath(db, "")
}

// NewBlogControllerWithDBAndPath creates a new BlogController with a DB
// instance and a custom base path for templates
func NewBlogControllerWithDBAndPath(db *badger.DB, basePath string) *BlogController {
	blogRepo := repositories.NewBadgerBlogRepository(db)
	blogService := services.NewBlogService(blogRepo, nil)

	return &BlogController{
		blogService: blogService,
		templates:   loadTemplates(basePath),
	}
}

// loadTemplates loads and parses all templates
func loadTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/blogs/index.html"),
	))
	templates["show"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/blogs/show.html"),
	))
	return templates
}

// API handlers

// GetBlogs handles GET /api/get-blogs. An absent or non-positive limit
// returns the entire collection; there is no upper bound, so a caller can
// request an unbounded fetch.
func (bc *BlogController) GetBlogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
			limit = n
		}
	}

	blogs, err := bc.blogService.ListBlogs(limit)
	if err != nil {
		bc.sendJSON(w, http.StatusInternalServerError, failEnvelope("Failed to fetch blogs", err.Error()))
		return
	}

	bc.sendJSON(w, http.StatusOK, blogsEnvelope{
		Envelope: okEnvelope("Fetched blogs successfully"),
		Blogs:    nonNil(blogs),
	})
}

// GetUserBlogs handles GET /api/get-user-blogs
func (bc *BlogController) GetUserBlogs(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		bc.sendJSON(w, http.StatusBadRequest, failEnvelope("User ID is required", "missing userId parameter"))
		return
	}

	blogs, err := bc.blogService.ListBlogsByOwner(userID)
	if err != nil {
		bc.sendJSON(w, http.StatusInternalServerError, failEnvelope("Failed to fetch blogs", err.Error()))
		return
	}

	bc.sendJSON(w, http.StatusOK, blogsEnvelope{
		Envelope: okEnvelope("Fetched user blogs successfully"),
		Blogs:    nonNil(blogs),
	})
}

// GetSingleBlog handles GET /api/get-single-blog. A malformed or unknown id
// is not an error here: the response is success with "blog": null, which is
// what the feed's empty-state rendering expects.
func (bc *BlogController) GetSingleBlog(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	blog, err := bc.blogService.GetBlog(id)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		bc.sendJSON(w, http.StatusInternalServerError, failEnvelope("Failed to fetch single blog", err.Error()))
		return
	}

	bc.sendJSON(w, http.StatusOK, blogEnvelope{
		Envelope: okEnvelope("Fetched blog successfully"),
		Blog:     blog,
	})
}

// SaveBlogInfo handles POST /api/save-blog-info
func (bc *BlogController) SaveBlogInfo(w http.ResponseWriter, r *http.Request) {
	var input services.CreateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		bc.sendJSON(w, http.StatusBadRequest, failEnvelope("Failed to insert blog", "invalid JSON: "+err.Error()))
		return
	}

	blog, err := bc.blogService.CreateBlog(input)
	if err != nil {
		bc.sendJSON(w, http.StatusBadRequest, failEnvelope("Failed to insert blog", err.Error()))
		return
	}

	bc.sendJSON(w, http.StatusCreated, blogEnvelope{
		Envelope: okEnvelope("Blog info inserted successfully to database"),
		Blog:     blog,
	})
}

// DeleteBlog handles DELETE /api/delete-blog. The optional userId parameter
// identifies the requester for the delete authorizer; the default
// authorizer ignores it.
func (bc *BlogController) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	blogID := r.URL.Query().Get("blogId")
	if blogID == "" {
		bc.sendJSON(w, http.StatusBadRequest, failEnvelope("Blog ID is required", "missing blogId parameter"))
		return
	}
	requesterID := r.URL.Query().Get("userId")

	deleted, err := bc.blogService.DeleteBlog(blogID, requesterID)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		bc.sendJSON(w, http.StatusNotFound, failEnvelope("Blog not found", "no blog with id "+blogID))
		return
	case errors.Is(err, services.ErrDeleteNotAllowed):
		bc.sendJSON(w, http.StatusForbidden, failEnvelope("Delete not allowed", err.Error()))
		return
	case err != nil:
		bc.sendJSON(w, http.StatusInternalServerError, failEnvelope("Failed to delete blog", err.Error()))
		return
	}

	bc.sendJSON(w, http.StatusOK, deletedBlogEnvelope{
		Envelope:    okEnvelope("Blog deleted successfully"),
		DeletedBlog: deleted,
	})
}

// Web handlers

// Index renders the blog feed
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	limit := bc.feedLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
			limit = n
		}
	}

	blogs, err := bc.blogService.ListBlogs(limit)
	if err != nil {
		http.Error(w, "Failed to fetch blogs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	data := struct {
		Blogs []*models.Blog
	}{
		Blogs: blogs,
	}
	if err := bc.templates["index"].ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Show renders a single blog
func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blog, err := bc.blogService.GetBlog(vars["id"])
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Blog not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch blog: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := bc.templates["show"].ExecuteTemplate(w, "layout", blog); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Helper methods for consistent response handling

func (bc *BlogController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// nonNil keeps the blogs payload a JSON array even when empty.
func nonNil(blogs []*models.Blog) []*models.Blog {
	if blogs == nil {
		return []*models.Blog{}
	}
	return blogs
}
