package service

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack-go/internal/api"
	"github.com/fintrack/fintrack-go/internal/domain/model"
)

// AdminService serves the admin dashboard endpoints. Access is role-gated by
// the route guard on the navigation side and enforced again server-side.
type AdminService struct {
	api *api.Client
}

// NewAdminService constructs an AdminService.
func NewAdminService(client *api.Client) *AdminService {
	if client == nil {
		panic("service: api client is required")
	}
	return &AdminService{api: client}
}

// Stats returns the aggregate counters for the admin dashboard.
func (s *AdminService) Stats(ctx context.Context) (*model.AdminStats, error) {
	var out model.AdminStats
	if err := s.api.Get(ctx, "/admin/stats", &out); err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	return &out, nil
}

// Users returns the full user listing.
func (s *AdminService) Users(ctx context.Context) ([]model.AdminUser, error) {
	var out []model.AdminUser
	if err := s.api.Get(ctx, "/admin/users", &out); err != nil {
		return nil, fmt.Errorf("admin users: %w", err)
	}
	return out, nil
}
