package model

import (
	"errors"
	"strings"
)

// Expense is a single spend record.
type Expense struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expense_date"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// UnmarshalJSON normalizes the casing variants the backend emits.
func (e *Expense) UnmarshalJSON(data []byte) error {
	doc, err := decodeDoc(data)
	if err != nil {
		return err
	}
	e.ID = pickString(doc, "ID || id")
	e.Category = pickString(doc, "CATEGORY || category")
	e.Amount = pickFloat(doc, "AMOUNT || amount")
	e.ExpenseDate = pickString(doc, "EXPENSE_DATE || expense_date")
	e.CreatedAt = pickString(doc, "CREATED_AT || created_at")
	return nil
}

// CreateExpenseRequest carries the fields for creating an expense.
type CreateExpenseRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expense_date"`
}

// Normalize trims free-text fields.
func (r *CreateExpenseRequest) Normalize() {
	r.Category = strings.TrimSpace(r.Category)
	r.ExpenseDate = strings.TrimSpace(r.ExpenseDate)
}

// Validate checks the request before it is sent to the API.
func (r *CreateExpenseRequest) Validate() error {
	if r.Category == "" {
		return errors.New("category is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if r.ExpenseDate == "" {
		return errors.New("expense date is required")
	}
	return nil
}
