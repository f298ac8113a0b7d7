package models

import (
	"time"

	"github.com/google/uuid"
)

// Validate checks if the blog meets all validation requirements
func (b *Blog) Validate() error {
	return validate.Struct(b)
}

// BeforeCreate assigns the store-generated fields: a fresh UUID and the
// creation timestamps. CreatedAt and UpdatedAt are equal on a new record.
func (b *Blog) BeforeCreate() {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}
}

// OwnedBy reports whether the blog belongs to the given account.
func (b *Blog) OwnedBy(userID string) bool {
	return userID != "" && b.UserID == userID
}
