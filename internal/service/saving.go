package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack-go/internal/api"
	"github.com/fintrack/fintrack-go/internal/domain/model"
)

// SavingService manages the /savings resource.
type SavingService struct {
	api *api.Client
}

// NewSavingService constructs a SavingService.
func NewSavingService(client *api.Client) *SavingService {
	if client == nil {
		panic("service: api client is required")
	}
	return &SavingService{api: client}
}

// List returns the caller's savings goals.
func (s *SavingService) List(ctx context.Context) ([]model.SavingGoal, error) {
	var out []model.SavingGoal
	if err := s.api.Get(ctx, "/savings", &out); err != nil {
		return nil, fmt.Errorf("list savings: %w", err)
	}
	return out, nil
}

// Create records a new savings goal.
func (s *SavingService) Create(ctx context.Context, req *model.CreateSavingGoalRequest) error {
	if req == nil {
		return errors.New("create saving goal request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.api.Post(ctx, "/savings", req, nil); err != nil {
		return fmt.Errorf("create saving goal: %w", err)
	}
	return nil
}

// Delete removes a savings goal by ID.
func (s *SavingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("saving goal id is required")
	}
	if err := s.api.Delete(ctx, "/savings/"+id); err != nil {
		return fmt.Errorf("delete saving goal: %w", err)
	}
	return nil
}
