package mock

import (
	"sort"
	"sync"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// BlogRepository is an in-memory implementation of
// repositories.BlogRepository for tests.
type BlogRepository struct {
	blogs map[string]*models.Blog
	mutex sync.RWMutex
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{
		blogs: make(map[string]*models.Blog),
	}
}

func (m *BlogRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.blogs = make(map[string]*models.Blog)
}

// Count reports the number of stored blogs.
func (m *BlogRepository) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.blogs)
}

// BlogRepository implementation

func (m *BlogRepository) Insert(blog *models.Blog) error {
	if err := blog.Validate(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	blog.BeforeCreate()
	m.blogs[blog.ID] = blog
	return nil
}

func (m *BlogRepository) FindByID(id string) (*models.Blog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	blog, exists := m.blogs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return blog, nil
}

func (m *BlogRepository) FindAll(limit int) ([]*models.Blog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	blogs := m.collect(func(*models.Blog) bool { return true })
	if limit > 0 && limit < len(blogs) {
		blogs = blogs[:limit]
	}
	return blogs, nil
}

func (m *BlogRepository) FindByOwner(userID string) ([]*models.Blog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.collect(func(b *models.Blog) bool { return b.UserID == userID }), nil
}

func (m *BlogRepository) DeleteByID(id string) (*models.Blog, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	blog, exists := m.blogs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	delete(m.blogs, id)
	return blog, nil
}

// collect gathers matching blogs newest-first. Callers hold the lock.
func (m *BlogRepository) collect(keep func(*models.Blog) bool) []*models.Blog {
	var blogs []*models.Blog
	for _, blog := range m.blogs {
		if keep(blog) {
			blogs = append(blogs, blog)
		}
	}
	sort.Slice(blogs, func(i, j int) bool {
		if blogs[i].CreatedAt.Equal(blogs[j].CreatedAt) {
			return blogs[i].ID < blogs[j].ID
		}
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
	return blogs
}
