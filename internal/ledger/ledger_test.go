package ledger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/frontdeskhq/frontdesk/internal/models"
	"github.com/frontdeskhq/frontdesk/internal/storage/sqlite"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(store)
}

func TestRecordBooking(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	if err := l.RecordBooking(ctx, "alice", "Single", 1500); err != nil {
		t.Fatalf("RecordBooking failed: %v", err)
	}

	lines, err := l.UnpaidChargesFor(ctx, "alice")
	if err != nil {
		t.Fatalf("UnpaidChargesFor failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("Expected 1 unpaid line, got %d", len(lines))
	}
	if lines[0].Category != models.CategoryRoom {
		t.Errorf("Category: expected room, got %s", lines[0].Category)
	}
	if lines[0].RoomType != "Single" || lines[0].Amount != 1500 {
		t.Errorf("Unexpected line: %+v", lines[0])
	}
}

func TestRecordBookingRejectsNonPositiveCost(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	for _, cost := range []int64{0, -1500} {
		if err := l.RecordBooking(ctx, "alice", "Single", cost); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("cost=%d: expected ErrInvalidAmount, got %v", cost, err)
		}
	}

	lines, err := l.UnpaidChargesFor(ctx, "alice")
	if err != nil {
		t.Fatalf("UnpaidChargesFor failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected no lines after rejected bookings, got %d", len(lines))
	}
}

func TestRecordFoodOrder(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	if err := l.RecordFoodOrder(ctx, "bob", 200); err != nil {
		t.Fatalf("RecordFoodOrder failed: %v", err)
	}

	lines, err := l.UnpaidChargesFor(ctx, "bob")
	if err != nil {
		t.Fatalf("UnpaidChargesFor failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("Expected 1 unpaid line, got %d", len(lines))
	}
	if lines[0].Category != models.CategoryFood || lines[0].Amount != 200 {
		t.Errorf("Unexpected line: %+v", lines[0])
	}
}

func TestRecordFoodOrderRejectsNonPositiveAmount(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		amount int64
	}{
		{"zero amount", 0},
		{"negative amount", -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := l.RecordFoodOrder(ctx, "bob", tt.amount); !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("Expected ErrInvalidAmount, got %v", err)
			}
		})
	}

	// Rejected orders must not create charge lines
	lines, err := l.UnpaidChargesFor(ctx, "bob")
	if err != nil {
		t.Fatalf("UnpaidChargesFor failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected no lines after rejected orders, got %d", len(lines))
	}
}
