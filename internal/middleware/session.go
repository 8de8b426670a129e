package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	// SessionName is the cookie the storefront session travels in.
	SessionName = "storefront-session"

	// SessionKeyEmail is the session value mirroring the logged-in
	// wheel account.
	SessionKeyEmail = "account_email"
)

// SessionMiddleware provides session management functionality
type SessionMiddleware struct {
	store sessions.Store
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store sessions.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// Session returns the request's session, creating it if absent.
func (m *SessionMiddleware) Session(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, SessionName)
}

// SetAccount mirrors the logged-in account email into the session
// cookie. An empty email clears it.
func (m *SessionMiddleware) SetAccount(w http.ResponseWriter, r *http.Request, email string) error {
	session, err := m.Session(r)
	if err != nil {
		return err
	}
	if email == "" {
		delete(session.Values, SessionKeyEmail)
		session.Options.MaxAge = -1
	} else {
		session.Values[SessionKeyEmail] = email
	}
	return session.Save(r, w)
}

// AccountEmail returns the email mirrored in the session, or "".
func (m *SessionMiddleware) AccountEmail(r *http.Request) string {
	session, err := m.Session(r)
	if err != nil {
		return ""
	}
	email, _ := session.Values[SessionKeyEmail].(string)
	return email
}
