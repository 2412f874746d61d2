package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack-go/internal/api"
	"github.com/fintrack/fintrack-go/internal/domain/model"
)

// BudgetService manages the /budgets resource.
type BudgetService struct {
	api *api.Client
}

// NewBudgetService constructs a BudgetService.
func NewBudgetService(client *api.Client) *BudgetService {
	if client == nil {
		panic("service: api client is required")
	}
	return &BudgetService{api: client}
}

// List returns the caller's budgets.
func (s *BudgetService) List(ctx context.Context) ([]model.Budget, error) {
	var out []model.Budget
	if err := s.api.Get(ctx, "/budgets", &out); err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return out, nil
}

// Create records a new budget.
func (s *BudgetService) Create(ctx context.Context, req *model.CreateBudgetRequest) error {
	if req == nil {
		return errors.New("create budget request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.api.Post(ctx, "/budgets", req, nil); err != nil {
		return fmt.Errorf("create budget: %w", err)
	}
	return nil
}

// Delete removes a budget by ID.
func (s *BudgetService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("budget id is required")
	}
	if err := s.api.Delete(ctx, "/budgets/"+id); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}
