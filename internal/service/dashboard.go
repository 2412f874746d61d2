package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fintrack/fintrack-go/internal/domain/model"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Expenses *ExpenseService
	Budgets  *BudgetService
	Savings  *SavingService
}

// DashboardService aggregates the three listings the home view renders.
// The fetches are independent and run concurrently; no completion order is
// assumed between them.
type DashboardService struct {
	expenses *ExpenseService
	budgets  *BudgetService
	savings  *SavingService
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	if opts.Expenses == nil || opts.Budgets == nil || opts.Savings == nil {
		panic("service: dashboard requires expense, budget and saving services")
	}
	return &DashboardService{
		expenses: opts.Expenses,
		budgets:  opts.Budgets,
		savings:  opts.Savings,
	}
}

// Summary fetches expenses, budgets and savings concurrently and computes
// the dashboard aggregates.
func (s *DashboardService) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	var (
		expenses []model.Expense
		budgets  []model.Budget
		savings  []model.SavingGoal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenses.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgets.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		savings, err = s.savings.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	return model.BuildDashboardSummary(expenses, budgets, savings), nil
}
