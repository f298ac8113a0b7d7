package routes

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func setupTestTemplates(t *testing.T) string {
	tmpDir := t.TempDir()
	viewsDir := filepath.Join(tmpDir, "app", "views")

	require.NoError(t, os.MkdirAll(filepath.Join(viewsDir, "blogs"), 0755))

	templates := map[string]string{
		filepath.Join(viewsDir, "layout.html"):      `{{define "layout"}}<!DOCTYPE html><html><body>{{template "content" .}}</body></html>{{end}}`,
		filepath.Join(viewsDir, "blogs/index.html"): `{{define "content"}}<div class="blogs">{{range .Blogs}}<h2>{{.Title}}</h2>{{else}}<p>No blogs found</p>{{end}}</div>{{end}}`,
		filepath.Join(viewsDir, "blogs/show.html"):  `{{define "content"}}<h1>{{.Title}}</h1><p>{{.Content}}</p>{{end}}`,
	}
	for path, content := range templates {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return tmpDir
}

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedBlog(t *testing.T, db *badger.DB, title, userID string, createdAt time.Time) *models.Blog {
	repo := repositories.NewBadgerBlogRepository(db)
	blog := &models.Blog{
		Author:    "Ada",
		Title:     title,
		Content:   "Hello world",
		UserID:    userID,
		Status:    models.StatusPublished,
		ImageURL:  "http://x/y.png",
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Insert(blog))
	return blog
}
