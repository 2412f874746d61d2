package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack-go/internal/api"
	"github.com/fintrack/fintrack-go/internal/domain/model"
)

// ContactService submits messages through the public contact endpoint.
type ContactService struct {
	api *api.Client
}

// NewContactService constructs a ContactService.
func NewContactService(client *api.Client) *ContactService {
	if client == nil {
		panic("service: api client is required")
	}
	return &ContactService{api: client}
}

// Send submits a contact form message.
func (s *ContactService) Send(ctx context.Context, req *model.ContactRequest) error {
	if req == nil {
		return errors.New("contact request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.api.Post(ctx, "/public/contact", req, nil); err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}
	return nil
}
