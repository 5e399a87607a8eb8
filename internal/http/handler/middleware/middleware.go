package middleware

type contextKey string

// RequestIDKey carries the request id assigned by RequestIDMiddleware.
const RequestIDKey contextKey = "request_id"

// CurrentUserKey carries the authenticated user's id, set by SessionMiddleware.
const CurrentUserKey contextKey = "current_user"

// SessionCookieName is the cookie holding the opaque session id.
const SessionCookieName = "warbler_session"
