// Package billing aggregates a guest's unpaid charges into a bill and
// performs the all-or-nothing settlement of their debts.
package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/frontdeskhq/frontdesk/internal/models"
	"github.com/frontdeskhq/frontdesk/internal/storage"
)

// ErrSettlementFailed is returned when the settlement transaction could
// not complete. The store is guaranteed to be left in its pre-call state.
var ErrSettlementFailed = errors.New("settlement failed")

// Store defines the persistence operations the billing engine needs.
type Store interface {
	UnpaidCharges(ctx context.Context, username string) ([]*models.ChargeLine, error)
	SettleCharges(ctx context.Context, username string, apply func(tx storage.ChargeUpdater) error) error
}

// Engine produces bill snapshots and settles outstanding charges.
type Engine struct {
	store Store
}

// NewEngine creates a billing engine backed by the given storage.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Checkout computes the guest's current bill from their unpaid charge
// lines. Pure read, no side effects. Bill.Outstanding distinguishes an
// itemized bill from "no outstanding charges".
func (e *Engine) Checkout(ctx context.Context, username string) (*models.Bill, error) {
	lines, err := e.store.UnpaidCharges(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to compute bill: %w", err)
	}

	bill := &models.Bill{}
	for _, line := range lines {
		switch line.Category {
		case models.CategoryRoom:
			bill.RoomTotal += line.Amount
		case models.CategoryFood:
			bill.FoodTotal += line.Amount
		}
	}
	bill.GrandTotal = bill.RoomTotal + bill.FoodTotal

	return bill, nil
}

// Settle marks every currently-unpaid room and food charge for the guest
// as paid, inside a single transaction. Either both category updates
// commit or neither does. Zero counts in the summary mean there was
// nothing to pay; that is not an error. Settle never retries.
func (e *Engine) Settle(ctx context.Context, username string) (*models.SettlementSummary, error) {
	var summary models.SettlementSummary

	err := e.store.SettleCharges(ctx, username, func(tx storage.ChargeUpdater) error {
		rooms, err := tx.MarkPaid(ctx, models.CategoryRoom, username)
		if err != nil {
			return err
		}

		food, err := tx.MarkPaid(ctx, models.CategoryFood, username)
		if err != nil {
			return err
		}

		summary.RoomLinesCleared = rooms
		summary.FoodLinesCleared = food
		return nil
	})
	if err != nil {
		slog.Error("Settlement rolled back", "username", username, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	slog.Info("Settlement committed",
		"username", username,
		"room_lines", summary.RoomLinesCleared,
		"food_lines", summary.FoodLinesCleared,
	)
	return &summary, nil
}
