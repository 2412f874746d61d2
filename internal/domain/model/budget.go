package model

import (
	"errors"
	"strings"
)

// Budget is a per-category spending limit.
type Budget struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// UnmarshalJSON normalizes the casing variants the backend emits.
func (b *Budget) UnmarshalJSON(data []byte) error {
	doc, err := decodeDoc(data)
	if err != nil {
		return err
	}
	b.ID = pickString(doc, "ID || id")
	b.Category = pickString(doc, "CATEGORY || category")
	b.Amount = pickFloat(doc, "AMOUNT || amount")
	b.CreatedAt = pickString(doc, "CREATED_AT || created_at")
	return nil
}

// CreateBudgetRequest carries the fields for creating a budget.
type CreateBudgetRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Normalize trims free-text fields.
func (r *CreateBudgetRequest) Normalize() {
	r.Category = strings.TrimSpace(r.Category)
}

// Validate checks the request before it is sent to the API.
func (r *CreateBudgetRequest) Validate() error {
	if r.Category == "" {
		return errors.New("category is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	return nil
}
