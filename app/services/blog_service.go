package services

import (
	"errors"
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// ErrDeleteNotAllowed is returned when the configured DeleteAuthorizer
// rejects a delete request.
var ErrDeleteNotAllowed = errors.New("delete not allowed")

// CreateBlogInput carries the caller-supplied fields for a new blog. Every
// field is required; the store assigns the ID and timestamps.
type CreateBlogInput struct {
	Author   string `json:"author"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	UserID   string `json:"userId"`
	Status   string `json:"status"`
	ImageURL string `json:"imageUrl"`
}

// DeleteAuthorizer decides whether a requester may delete a blog. The
// original service let any caller delete any blog by id; this hook exists
// so deployments can close that gap without touching the handlers.
type DeleteAuthorizer interface {
	CanDelete(requesterID string, blog *models.Blog) bool
}

// AllowAny permits every delete, matching the original behavior.
type AllowAny struct{}

func (AllowAny) CanDelete(string, *models.Blog) bool { return true }

// OwnerOnly permits deletes only by the blog's owner.
type OwnerOnly struct{}

func (OwnerOnly) CanDelete(requesterID string, blog *models.Blog) bool {
	return blog.OwnedBy(requesterID)
}

// BlogService handles business logic for blogs
type BlogService struct {
	blogRepo   repositories.BlogRepository
	authorizer DeleteAuthorizer
}

// NewBlogService creates a new BlogService. A nil authorizer defaults to
// AllowAny.
func NewBlogService(blogRepo repositories.BlogRepository, authorizer DeleteAuthorizer) *BlogService {
	if authorizer == nil {
		authorizer = AllowAny{}
	}
	return &BlogService{
		blogRepo:   blogRepo,
		authorizer: authorizer,
	}
}

// CreateBlog creates a new blog from caller input with validation
func (s *BlogService) CreateBlog(in CreateBlogInput) (*models.Blog, error) {
	blog := &models.Blog{
		Author:   in.Author,
		Title:    in.Title,
		Content:  in.Content,
		UserID:   in.UserID,
		Status:   in.Status,
		ImageURL: in.ImageURL,
	}

	if err := s.blogRepo.Insert(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// GetBlog retrieves a blog by ID
func (s *BlogService) GetBlog(id string) (*models.Blog, error) {
	return s.blogRepo.FindByID(id)
}

// ListBlogs retrieves blogs newest-first, at most limit of them when limit
// is positive.
func (s *BlogService) ListBlogs(limit int) ([]*models.Blog, error) {
	return s.blogRepo.FindAll(limit)
}

// ListBlogsByOwner retrieves the blogs owned by userID, newest-first.
func (s *BlogService) ListBlogsByOwner(userID string) ([]*models.Blog, error) {
	return s.blogRepo.FindByOwner(userID)
}

// DeleteBlog removes a blog and returns the deleted record. The requester
// id is consulted by the authorizer; with the default AllowAny it is
// ignored.
func (s *BlogService) DeleteBlog(id, requesterID string) (*models.Blog, error) {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !s.authorizer.CanDelete(requesterID, blog) {
		return nil, ErrDeleteNotAllowed
	}

	deleted, err := s.blogRepo.DeleteByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete blog %s: %w", id, err)
	}
	return deleted, nil
}
