package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardService(t *testing.T, handler http.Handler) *DashboardService {
	t.Helper()

	client := newTestClient(t, handler)
	return NewDashboardService(DashboardServiceOptions{
		Expenses: NewExpenseService(client),
		Budgets:  NewBudgetService(client),
		Savings:  NewSavingService(client),
	})
}

func TestDashboardSummary(t *testing.T) {
	t.Parallel()

	svc := newDashboardService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/expenses":
			_, _ = w.Write([]byte(`[
				{"id":"1","category":"Food","amount":40,"expense_date":"2026-08-01"},
				{"id":"2","category":"Food","amount":10,"expense_date":"2026-08-02"},
				{"id":"3","category":"","amount":5,"expense_date":"2026-08-03"}
			]`))
		case "/budgets":
			_, _ = w.Write([]byte(`[{"id":"b1","category":"Food","amount":200}]`))
		case "/savings":
			_, _ = w.Write([]byte(`[{"id":"s1","goal_name":"Trip","target_amount":1000,"current_amount":250}]`))
		default:
			http.NotFound(w, r)
		}
	}))

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 55.0, sum.TotalExpenses)
	assert.Equal(t, 200.0, sum.TotalBudget)
	assert.Equal(t, 250.0, sum.TotalSaved)
	assert.Equal(t, 50.0, sum.ExpenseByCategory["Food"])
	assert.Equal(t, 5.0, sum.ExpenseByCategory["Uncategorized"])
	assert.Len(t, sum.Expenses, 3)
}

func TestDashboardSummaryPropagatesFirstFailure(t *testing.T) {
	t.Parallel()

	svc := newDashboardService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/budgets" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"db down"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := svc.Summary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
