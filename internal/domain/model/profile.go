package model

// Profile is the account detail record served by /user/profile.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UnmarshalJSON normalizes the casing variants the backend emits.
func (p *Profile) UnmarshalJSON(data []byte) error {
	doc, err := decodeDoc(data)
	if err != nil {
		return err
	}
	p.ID = pickString(doc, "ID || id")
	p.Name = pickString(doc, "NAME || name")
	p.Email = pickString(doc, "EMAIL || email")
	p.Role = pickString(doc, "ROLE || role")
	p.CreatedAt = pickString(doc, "CREATED_AT || created_at")
	return nil
}
