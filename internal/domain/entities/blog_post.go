package entities

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost represents a published blog post
type BlogPost struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"-"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Image     string    `json:"image"`
	Tags      []string  `json:"tags"`
	Likes     int64     `json:"likes"`
	Comments  int64     `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateBlogPostInput represents input for creating a blog post
type CreateBlogPostInput struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Excerpt string   `json:"excerpt"`
	Image   string   `json:"image"`
	Tags    []string `json:"tags"`
}
