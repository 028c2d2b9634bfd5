package auth

import (
	"context"

	"github.com/frontdeskhq/frontdesk/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods without
// changing the HTTP shell.
type Authenticator interface {
	// Register creates a new account with the given username and password.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, username, password string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user
	// if successful.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}
