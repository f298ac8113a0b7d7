package repositories

import "inkwell/app/models"

// BlogRepository defines the interface for blog data access
type BlogRepository interface {
	Insert(blog *models.Blog) error
	FindByID(id string) (*models.Blog, error)
	FindAll(limit int) ([]*models.Blog, error)
	FindByOwner(userID string) ([]*models.Blog, error)
	DeleteByID(id string) (*models.Blog, error)
}
