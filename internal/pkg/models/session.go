package models

// SessionKind tells whether a request carries an authenticated user.
type SessionKind int

const (
	Anonymous SessionKind = iota
	Authenticated
)

func (k SessionKind) String() string {
	if k == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Session is the explicit authentication state of a request. UserID and TokenID
// are only set for Authenticated sessions.
type Session struct {
	Kind      SessionKind
	UserID    string
	TokenID   string
	ExpiresAt int64
}

// AnonymousSession returns the session of a request without credentials
func AnonymousSession() Session {
	return Session{Kind: Anonymous}
}

// AuthenticatedSession returns the session for a verified token
func AuthenticatedSession(userID, tokenID string, expiresAt int64) Session {
	return Session{
		Kind:      Authenticated,
		UserID:    userID,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}
}

// IsAuthenticated reports whether the session belongs to a signed-in user
func (s Session) IsAuthenticated() bool {
	return s.Kind == Authenticated && s.UserID != ""
}
