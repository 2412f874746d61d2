package auth

// Package auth contains domain-level types for the local session.
// It is pure and free of transport/adapter concerns.

import (
	"encoding/json"
	"fmt"
)

// Role represents an application authorization role as delivered by the API.
// Keep string form for easy persistence and comparison.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the identity record returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// UnmarshalJSON tolerates numeric IDs and the upper-case field names the
// backend has been observed to emit alongside the lower-case ones.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal user: %w", err)
	}
	u.ID = rawString(raw, "id", "ID")
	u.Name = rawString(raw, "name", "NAME")
	u.Email = rawString(raw, "email", "EMAIL")
	u.Role = Role(rawString(raw, "role", "ROLE"))
	return nil
}

// rawString returns the first present key coerced to a string. Numbers keep
// their literal form so numeric IDs survive round-trips unchanged.
func rawString(raw map[string]json.RawMessage, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
		var n json.Number
		if err := json.Unmarshal(v, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

// Session is the local record of the authenticated identity and credential.
// User and Token are set together or not at all; a half-set pair is invalid
// and is normalized away on load.
type Session struct {
	User  *User
	Token string
}

// IsAuthenticated reports whether both the identity and the credential are
// present. It is derived, never stored.
func (s Session) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// HasRole reports whether the session's user holds one of the given roles.
// An empty role list means any authenticated user qualifies.
func (s Session) HasRole(roles ...Role) bool {
	if !s.IsAuthenticated() {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if s.User.Role == r {
			return true
		}
	}
	return false
}
