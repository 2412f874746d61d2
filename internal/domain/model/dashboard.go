package model

// DashboardSummary aggregates the three resource listings the home view
// renders, with the totals and per-category breakdowns its charts need.
type DashboardSummary struct {
	Expenses []Expense    `json:"expenses"`
	Budgets  []Budget     `json:"budgets"`
	Savings  []SavingGoal `json:"savings"`

	TotalExpenses float64 `json:"total_expenses"`
	TotalBudget   float64 `json:"total_budget"`
	TotalSaved    float64 `json:"total_saved"`

	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
	BudgetByCategory  map[string]float64 `json:"budget_by_category"`
}

const uncategorized = "Uncategorized"

// BuildDashboardSummary computes totals and category aggregates from the
// fetched listings.
func BuildDashboardSummary(expenses []Expense, budgets []Budget, savings []SavingGoal) *DashboardSummary {
	s := &DashboardSummary{
		Expenses:          expenses,
		Budgets:           budgets,
		Savings:           savings,
		ExpenseByCategory: make(map[string]float64),
		BudgetByCategory:  make(map[string]float64),
	}
	for _, e := range expenses {
		cat := e.Category
		if cat == "" {
			cat = uncategorized
		}
		s.ExpenseByCategory[cat] += e.Amount
		s.TotalExpenses += e.Amount
	}
	for _, b := range budgets {
		cat := b.Category
		if cat == "" {
			cat = uncategorized
		}
		s.BudgetByCategory[cat] += b.Amount
		s.TotalBudget += b.Amount
	}
	for _, g := range savings {
		s.TotalSaved += g.CurrentAmount
	}
	return s
}
