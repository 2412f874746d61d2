package model

// AdminStats is the aggregate view served to the admin dashboard.
type AdminStats struct {
	Users         int     `json:"users"`
	ExpensesTotal float64 `json:"expensesTotal"`
	BudgetsTotal  float64 `json:"budgetsTotal"`
	SavingsTotal  float64 `json:"savingsTotal"`
}

// UnmarshalJSON normalizes the casing variants the backend emits.
func (s *AdminStats) UnmarshalJSON(data []byte) error {
	doc, err := decodeDoc(data)
	if err != nil {
		return err
	}
	s.Users = pickInt(doc, "users || USERS")
	s.ExpensesTotal = pickFloat(doc, "expensesTotal || expenses_total || EXPENSES_TOTAL")
	s.BudgetsTotal = pickFloat(doc, "budgetsTotal || budgets_total || BUDGETS_TOTAL")
	s.SavingsTotal = pickFloat(doc, "savingsTotal || savings_total || SAVINGS_TOTAL")
	return nil
}

// AdminUser is one row of the admin user listing.
type AdminUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UnmarshalJSON normalizes the casing variants the backend emits.
func (u *AdminUser) UnmarshalJSON(data []byte) error {
	doc, err := decodeDoc(data)
	if err != nil {
		return err
	}
	u.ID = pickString(doc, "ID || id")
	u.Name = pickString(doc, "NAME || name")
	u.Email = pickString(doc, "EMAIL || email")
	u.Role = pickString(doc, "ROLE || role")
	u.CreatedAt = pickString(doc, "CREATED_AT || created_at")
	return nil
}
