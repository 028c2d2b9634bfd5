package models

// User represents a registered guest account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the unique, case-sensitive login name. Charge lines
	// reference users by username, not by ID.
	Username string

	// PasswordHash is the bcrypt hash of the user's password.
	// Never store or log the plaintext password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}
