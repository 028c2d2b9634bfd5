// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/frontdeskhq/frontdesk/internal/models"
)

// ErrDuplicateUsername is returned by CreateUser when the username is
// already taken (unique constraint violation).
var ErrDuplicateUsername = errors.New("username already exists")

// ChargeUpdater is the per-category update primitive available inside a
// settlement transaction. The billing engine composes calls to MarkPaid so
// that all category updates commit or roll back together.
type ChargeUpdater interface {
	// MarkPaid flips every unpaid charge of the given category for the
	// user to paid, returning the number of lines affected.
	MarkPaid(ctx context.Context, category models.ChargeCategory, username string) (int64, error)
}

// Store defines the interface for front-desk storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the core components.
type Store interface {
	// CreateUser persists a new user. The user.ID field will be populated
	// by the store. Returns ErrDuplicateUsername if the username exists.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username.
	// Returns (nil, nil) if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// CreateCharge persists a new charge line. The line.ID field will be
	// populated by the store.
	CreateCharge(ctx context.Context, line *models.ChargeLine) error

	// UnpaidCharges returns a fresh snapshot of the user's unpaid charge
	// lines, oldest first.
	UnpaidCharges(ctx context.Context, username string) ([]*models.ChargeLine, error)

	// SettleCharges runs apply inside a single transaction. The updates
	// made through the ChargeUpdater commit only if apply returns nil;
	// any error rolls everything back.
	SettleCharges(ctx context.Context, username string, apply func(tx ChargeUpdater) error) error

	// Close releases any resources held by the store.
	Close() error
}
