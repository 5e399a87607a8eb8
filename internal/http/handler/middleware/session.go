package middleware

import (
	"context"
	"net/http"
)

// SessionResolver resolves an opaque session id to a user id.
type SessionResolver interface {
	GetUserID(ctx context.Context, sessionID string) (int64, bool)
}

type SessionMiddleware struct {
	sessions SessionResolver
}

func NewSessionMiddleware(sessions SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
	}
}

// WithUser resolves the session cookie, if any, and puts the current user id
// in the request context. Handlers that require authentication check for it;
// anonymous requests pass through untouched.
func (m *SessionMiddleware) WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err == nil && cookie.Value != "" {
			if userID, ok := m.sessions.GetUserID(r.Context(), cookie.Value); ok {
				ctx := context.WithValue(r.Context(), CurrentUserKey, userID)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}
