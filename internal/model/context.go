package model

// ContextKey is the type for values this application stores in a
// request context.
type ContextKey string

const (
	// UserIDKey holds the authenticated user's UUID, set by the user
	// context middleware.
	UserIDKey ContextKey = "userID"
)
