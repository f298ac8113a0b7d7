package routes

import (
	"net/http"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router, using
// the provided Badger DB.
func SetupRoutes(db *badger.DB, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	blogController := controllers.NewBlogControllerWithDB(db)
	blogController.SetFeedLimit(cfg.Blog.FeedLimit)

	// Web routes
	router.HandleFunc("/", blogController.Index).Methods("GET")
	router.HandleFunc("/blogs", blogController.Index).Methods("GET")
	router.HandleFunc("/blogs/{id}", blogController.Show).Methods("GET")

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	api.HandleFunc("/get-blogs", blogController.GetBlogs).Methods("GET")
	api.HandleFunc("/get-user-blogs", blogController.GetUserBlogs).Methods("GET")
	api.HandleFunc("/get-single-blog", blogController.GetSingleBlog).Methods("GET")
	api.HandleFunc("/save-blog-info", blogController.SaveBlogInfo).Methods("POST")
	api.HandleFunc("/delete-blog", blogController.DeleteBlog).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
