package service

// Package service contains the boundary calls against the finance REST API.
// Resource services are thin: validate, call, normalize; all session
// mutation lives in AuthService.

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack-go/internal/api"
	"github.com/fintrack/fintrack-go/internal/domain/model"
)

// ExpenseService manages the /expenses resource.
type ExpenseService struct {
	api *api.Client
}

// NewExpenseService constructs an ExpenseService.
func NewExpenseService(client *api.Client) *ExpenseService {
	if client == nil {
		panic("service: api client is required")
	}
	return &ExpenseService{api: client}
}

// List returns the caller's expenses.
func (s *ExpenseService) List(ctx context.Context) ([]model.Expense, error) {
	var out []model.Expense
	if err := s.api.Get(ctx, "/expenses", &out); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return out, nil
}

// Create records a new expense.
func (s *ExpenseService) Create(ctx context.Context, req *model.CreateExpenseRequest) error {
	if req == nil {
		return errors.New("create expense request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.api.Post(ctx, "/expenses", req, nil); err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// Delete removes an expense by ID.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("expense id is required")
	}
	if err := s.api.Delete(ctx, "/expenses/"+id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
