package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inkwell/app/controllers"
	"inkwell/app/middleware"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRouter builds the same routing table as SetupRoutes but with
// templates loaded from a temp directory so the tests don't depend on the
// working directory.
func setupTestRouter(t *testing.T) (*mux.Router, *controllers.BlogController) {
	db := setupTestDB(t)
	tmpDir := setupTestTemplates(t)

	blogController := controllers.NewBlogControllerWithDBAndPath(db, tmpDir)

	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.HandleFunc("/", blogController.Index).Methods("GET")
	router.HandleFunc("/blogs", blogController.Index).Methods("GET")
	router.HandleFunc("/blogs/{id}", blogController.Show).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)
	api.HandleFunc("/get-blogs", blogController.GetBlogs).Methods("GET")
	api.HandleFunc("/get-user-blogs", blogController.GetUserBlogs).Methods("GET")
	api.HandleFunc("/get-single-blog", blogController.GetSingleBlog).Methods("GET")
	api.HandleFunc("/save-blog-info", blogController.SaveBlogInfo).Methods("POST")
	api.HandleFunc("/delete-blog", blogController.DeleteBlog).Methods("DELETE")

	return router, blogController
}

func TestAPIRoutesOverBadger(t *testing.T) {
	router, _ := setupTestRouter(t)

	payload := `{
		"author": "Ada",
		"title": "Hi",
		"content": "Hello world",
		"userId": "u1",
		"status": "published",
		"imageUrl": "http://x/y.png"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/save-blog-info", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var created struct {
		Success bool `json:"success"`
		Blog    struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"blog"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.True(t, created.Success)
	require.NotEmpty(t, created.Blog.ID)

	// The record round-trips through Badger.
	req = httptest.NewRequest(http.MethodGet, "/api/get-single-blog?id="+created.Blog.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Hi"`)

	// Delete it and watch the lookup go null.
	req = httptest.NewRequest(http.MethodDelete, "/api/delete-blog?blogId="+created.Blog.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/get-single-blog?id="+created.Blog.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"blog":null`)
}

func TestWebFeed(t *testing.T) {
	db := setupTestDB(t)
	tmpDir := setupTestTemplates(t)
	blogController := controllers.NewBlogControllerWithDBAndPath(db, tmpDir)

	router := mux.NewRouter()
	router.HandleFunc("/blogs", blogController.Index).Methods("GET")
	router.HandleFunc("/blogs/{id}", blogController.Show).Methods("GET")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedBlog(t, db, "Older entry", "u1", base)
	newest := seedBlog(t, db, "Newest entry", "u1", base.Add(time.Hour))

	t.Run("feed lists posts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Newest entry")
		assert.Contains(t, body, "Older entry")
		// Newest-first ordering shows the fresh post before the old one.
		assert.Less(t, strings.Index(body, "Newest entry"), strings.Index(body, "Older entry"))
	})

	t.Run("single post page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/blogs/"+newest.ID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Newest entry")
	})

	t.Run("unknown post is a 404 page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/blogs/no-such-id", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty feed shows the empty state", func(t *testing.T) {
		emptyDB := setupTestDB(t)
		emptyController := controllers.NewBlogControllerWithDBAndPath(emptyDB, tmpDir)

		emptyRouter := mux.NewRouter()
		emptyRouter.HandleFunc("/blogs", emptyController.Index).Methods("GET")

		req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
		w := httptest.NewRecorder()
		emptyRouter.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No blogs found")
	})
}
