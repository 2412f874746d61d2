package guard

// Package guard is the admission-control layer for navigations. Decisions
// are computed fresh on every evaluation from the live session; nothing is
// cached across navigations.

import (
	"github.com/fintrack/fintrack-go/internal/domain/auth"
)

// Action is the outcome of a guard evaluation.
type Action string

const (
	// ActionAllow admits the navigation.
	ActionAllow Action = "allow"
	// ActionRedirectLogin sends an unauthenticated visitor to the login
	// view, carrying the attempted location so it can be resumed.
	ActionRedirectLogin Action = "redirect-to-login"
	// ActionRedirectHome sends an authenticated visitor with the wrong role
	// back home.
	ActionRedirectHome Action = "redirect-to-home"
)

const (
	loginPath = "/login"
	homePath  = "/"
)

// Requirement declares who may enter a view. An empty Roles slice admits any
// authenticated user.
type Requirement struct {
	Roles []auth.Role
}

// Decision is the result of evaluating a navigation.
type Decision struct {
	Action Action
	// Target is the path to navigate to for redirect decisions.
	Target string
	// From is the originally requested path, carried on a login redirect so
	// the navigation can be resumed after a successful login.
	From string
}

// Allowed is shorthand for Action == ActionAllow.
func (d Decision) Allowed() bool { return d.Action == ActionAllow }

// Evaluate decides whether the session may enter the view at path under the
// given requirement.
func Evaluate(sess auth.Session, path string, req Requirement) Decision {
	if !sess.IsAuthenticated() {
		return Decision{Action: ActionRedirectLogin, Target: loginPath, From: path}
	}
	if sess.HasRole(req.Roles...) {
		return Decision{Action: ActionAllow}
	}
	return Decision{Action: ActionRedirectHome, Target: homePath}
}

// SessionSource supplies the live session for per-navigation checks.
type SessionSource interface {
	Current() auth.Session
}

// Guard evaluates the application route table against a session source.
type Guard struct {
	sessions SessionSource
}

// New constructs a Guard reading from the given session source.
func New(sessions SessionSource) *Guard {
	if sessions == nil {
		panic("guard: session source is required")
	}
	return &Guard{sessions: sessions}
}

// Check evaluates the requirement registered for path. Unknown and public
// paths are always allowed.
func (g *Guard) Check(path string) Decision {
	req, protected := ForPath(path)
	if !protected {
		return Decision{Action: ActionAllow}
	}
	return Evaluate(g.sessions.Current(), path, req)
}
