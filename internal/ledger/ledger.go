// Package ledger records billable events against guest accounts. Every
// booking and food order becomes one unpaid charge line; only the billing
// engine ever flips lines to paid.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/frontdeskhq/frontdesk/internal/models"
)

// ErrInvalidAmount is returned when a charge would be recorded with a
// non-positive amount. A no-op order is rejected, not silently stored.
var ErrInvalidAmount = errors.New("amount must be positive")

// ChargeStorage defines the persistence operations the ledger needs.
type ChargeStorage interface {
	CreateCharge(ctx context.Context, line *models.ChargeLine) error
	UnpaidCharges(ctx context.Context, username string) ([]*models.ChargeLine, error)
}

// Ledger appends charge lines and answers unpaid-charge queries.
type Ledger struct {
	store ChargeStorage
}

// New creates a Ledger backed by the given storage.
func New(store ChargeStorage) *Ledger {
	return &Ledger{store: store}
}

// RecordBooking appends an unpaid room charge. The cost comes from the
// caller's price list; the ledger only checks that it is positive.
func (l *Ledger) RecordBooking(ctx context.Context, username, roomType string, cost int64) error {
	if cost <= 0 {
		return ErrInvalidAmount
	}

	line := &models.ChargeLine{
		Username: username,
		Category: models.CategoryRoom,
		RoomType: roomType,
		Amount:   cost,
	}
	if err := l.store.CreateCharge(ctx, line); err != nil {
		return fmt.Errorf("failed to record booking: %w", err)
	}

	return nil
}

// RecordFoodOrder appends an unpaid food charge. Returns ErrInvalidAmount
// if amount is zero or negative.
func (l *Ledger) RecordFoodOrder(ctx context.Context, username string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	line := &models.ChargeLine{
		Username: username,
		Category: models.CategoryFood,
		Amount:   amount,
	}
	if err := l.store.CreateCharge(ctx, line); err != nil {
		return fmt.Errorf("failed to record food order: %w", err)
	}

	return nil
}

// UnpaidChargesFor returns a fresh snapshot of the user's unpaid lines.
func (l *Ledger) UnpaidChargesFor(ctx context.Context, username string) ([]*models.ChargeLine, error) {
	lines, err := l.store.UnpaidCharges(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid charges: %w", err)
	}
	return lines, nil
}
