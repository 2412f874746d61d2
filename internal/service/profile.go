package service

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack-go/internal/api"
	"github.com/fintrack/fintrack-go/internal/domain/model"
)

// ProfileService serves the account endpoints, including the export and
// backup downloads.
type ProfileService struct {
	api *api.Client
}

// NewProfileService constructs a ProfileService.
func NewProfileService(client *api.Client) *ProfileService {
	if client == nil {
		panic("service: api client is required")
	}
	return &ProfileService{api: client}
}

// Get returns the caller's account details.
func (s *ProfileService) Get(ctx context.Context) (*model.Profile, error) {
	var out model.Profile
	if err := s.api.Get(ctx, "/user/profile", &out); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &out, nil
}

// Export downloads the account data spreadsheet.
func (s *ProfileService) Export(ctx context.Context) (*api.Download, error) {
	d, err := s.api.Download(ctx, "/user/export")
	if err != nil {
		return nil, fmt.Errorf("export account data: %w", err)
	}
	if d.Filename == "" {
		d.Filename = "export.xlsx"
	}
	return d, nil
}

// Backup downloads the full account backup archive.
func (s *ProfileService) Backup(ctx context.Context) (*api.Download, error) {
	d, err := s.api.Download(ctx, "/user/backup")
	if err != nil {
		return nil, fmt.Errorf("download backup: %w", err)
	}
	if d.Filename == "" {
		d.Filename = "backup.zip"
	}
	return d, nil
}
