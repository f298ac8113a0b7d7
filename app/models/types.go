package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Blog statuses observed in the wild.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

var validate = validator.New()

// Blog represents a single blog entry. ID and the timestamps are assigned
// by the store on insert; everything else comes from the caller.
type Blog struct {
	ID        string    `json:"id" validate:"-"`
	Author    string    `json:"author" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	UserID    string    `json:"userId" validate:"required"`
	Status    string    `json:"status" validate:"required"`
	ImageURL  string    `json:"imageUrl" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
