package model

import (
	"errors"
	"strings"
)

// BlogPost is a published article on the public blog.
type BlogPost struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UnmarshalJSON normalizes the casing variants the backend emits.
func (p *BlogPost) UnmarshalJSON(data []byte) error {
	doc, err := decodeDoc(data)
	if err != nil {
		return err
	}
	p.ID = pickString(doc, "ID || id")
	p.Title = pickString(doc, "TITLE || title")
	p.Content = pickString(doc, "CONTENT || content")
	p.Author = pickString(doc, "AUTHOR || author")
	p.CreatedAt = pickString(doc, "CREATED_AT || created_at")
	return nil
}

// BlogPostRequest carries the fields for creating or updating a post.
type BlogPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Normalize trims free-text fields.
func (r *BlogPostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

// Validate checks the request before it is sent to the API.
func (r *BlogPostRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Content == "" {
		return errors.New("content is required")
	}
	return nil
}
