package controllers

import "inkwell/app/models"

// Envelope is the uniform response wrapper. Every operation returns it,
// success or not; callers branch on Success alone. Failure responses carry
// Error and no payload field.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// blogEnvelope wraps a single blog. Blog is deliberately not omitempty:
// get-single-blog answers success with "blog": null when nothing matches.
type blogEnvelope struct {
	Envelope
	Blog *models.Blog `json:"blog"`
}

type blogsEnvelope struct {
	Envelope
	Blogs []*models.Blog `json:"blogs"`
}

type deletedBlogEnvelope struct {
	Envelope
	DeletedBlog *models.Blog `json:"deletedBlog"`
}

func okEnvelope(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

func failEnvelope(message, detail string) Envelope {
	return Envelope{Success: false, Message: message, Error: detail}
}
