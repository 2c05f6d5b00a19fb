package models

// StringTable maps translation keys to user-facing text for one user.
type StringTable map[string]string

// UserProfile is the per-user row the backend resolves languages from.
type UserProfile struct {
	UserID   string
	Language string
}
