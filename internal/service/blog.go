package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack-go/internal/api"
	"github.com/fintrack/fintrack-go/internal/domain/model"
)

// BlogService manages the /blog resource. Listing is public; writes require
// an authenticated session.
type BlogService struct {
	api *api.Client
}

// NewBlogService constructs a BlogService.
func NewBlogService(client *api.Client) *BlogService {
	if client == nil {
		panic("service: api client is required")
	}
	return &BlogService{api: client}
}

// List returns all published posts.
func (s *BlogService) List(ctx context.Context) ([]model.BlogPost, error) {
	var out []model.BlogPost
	if err := s.api.Get(ctx, "/blog", &out); err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return out, nil
}

// Create publishes a new post.
func (s *BlogService) Create(ctx context.Context, req *model.BlogPostRequest) error {
	if req == nil {
		return errors.New("blog post request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.api.Post(ctx, "/blog", req, nil); err != nil {
		return fmt.Errorf("create blog post: %w", err)
	}
	return nil
}

// Update replaces the title and content of an existing post.
func (s *BlogService) Update(ctx context.Context, id string, req *model.BlogPostRequest) error {
	if id == "" {
		return errors.New("blog post id is required")
	}
	if req == nil {
		return errors.New("blog post request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.api.Put(ctx, "/blog/"+id, req, nil); err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	return nil
}

// Delete removes a post by ID.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("blog post id is required")
	}
	if err := s.api.Delete(ctx, "/blog/"+id); err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return nil
}
