package model

import (
	"errors"
	"strings"
)

// SavingGoal tracks progress toward a named savings target.
type SavingGoal struct {
	ID            string  `json:"id"`
	GoalName      string  `json:"goal_name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

// UnmarshalJSON normalizes the casing variants the backend emits.
func (s *SavingGoal) UnmarshalJSON(data []byte) error {
	doc, err := decodeDoc(data)
	if err != nil {
		return err
	}
	s.ID = pickString(doc, "ID || id")
	s.GoalName = pickString(doc, "GOAL_NAME || goal_name")
	s.TargetAmount = pickFloat(doc, "TARGET_AMOUNT || target_amount")
	s.CurrentAmount = pickFloat(doc, "CURRENT_AMOUNT || current_amount")
	s.CreatedAt = pickString(doc, "CREATED_AT || created_at")
	return nil
}

// Progress returns completion as a fraction in [0, 1].
func (s SavingGoal) Progress() float64 {
	if s.TargetAmount <= 0 {
		return 0
	}
	p := s.CurrentAmount / s.TargetAmount
	if p > 1 {
		return 1
	}
	return p
}

// CreateSavingGoalRequest carries the fields for creating a savings goal.
type CreateSavingGoalRequest struct {
	GoalName      string  `json:"goal_name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
}

// Normalize trims free-text fields.
func (r *CreateSavingGoalRequest) Normalize() {
	r.GoalName = strings.TrimSpace(r.GoalName)
}

// Validate checks the request before it is sent to the API.
func (r *CreateSavingGoalRequest) Validate() error {
	if r.GoalName == "" {
		return errors.New("goal name is required")
	}
	if r.TargetAmount <= 0 {
		return errors.New("target amount must be greater than zero")
	}
	if r.CurrentAmount < 0 {
		return errors.New("current amount cannot be negative")
	}
	return nil
}
