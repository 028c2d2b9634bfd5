package billing

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/frontdeskhq/frontdesk/internal/ledger"
	"github.com/frontdeskhq/frontdesk/internal/models"
	"github.com/frontdeskhq/frontdesk/internal/storage"
	"github.com/frontdeskhq/frontdesk/internal/storage/sqlite"
)

func newTestEngine(t *testing.T) (*Engine, *ledger.Ledger, *sqlite.SQLiteStore) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewEngine(store), ledger.New(store), store
}

func TestCheckoutTotals(t *testing.T) {
	engine, l, _ := newTestEngine(t)
	ctx := context.Background()

	if err := l.RecordBooking(ctx, "alice", "Single", 1500); err != nil {
		t.Fatalf("RecordBooking failed: %v", err)
	}
	if err := l.RecordFoodOrder(ctx, "alice", 150); err != nil {
		t.Fatalf("RecordFoodOrder failed: %v", err)
	}

	bill, err := engine.Checkout(ctx, "alice")
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	if bill.RoomTotal != 1500 {
		t.Errorf("RoomTotal: expected 1500, got %d", bill.RoomTotal)
	}
	if bill.FoodTotal != 150 {
		t.Errorf("FoodTotal: expected 150, got %d", bill.FoodTotal)
	}
	if bill.GrandTotal != 1650 {
		t.Errorf("GrandTotal: expected 1650, got %d", bill.GrandTotal)
	}
	if !bill.Outstanding() {
		t.Error("Expected outstanding bill")
	}
}

func TestCheckoutNoCharges(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	bill, err := engine.Checkout(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if bill.Outstanding() {
		t.Errorf("Expected no outstanding charges, got %+v", bill)
	}
}

func TestSettleScenario(t *testing.T) {
	engine, l, _ := newTestEngine(t)
	ctx := context.Background()

	// alice books a Suite and orders Pizza + Tea
	if err := l.RecordBooking(ctx, "alice", "Suite", 4000); err != nil {
		t.Fatalf("RecordBooking failed: %v", err)
	}
	if err := l.RecordFoodOrder(ctx, "alice", 150+50); err != nil {
		t.Fatalf("RecordFoodOrder failed: %v", err)
	}

	bill, err := engine.Checkout(ctx, "alice")
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if bill.RoomTotal != 4000 || bill.FoodTotal != 200 || bill.GrandTotal != 4200 {
		t.Fatalf("Unexpected bill: %+v", bill)
	}

	summary, err := engine.Settle(ctx, "alice")
	if err != nil {
		t.Fatalf("Settle failed: %v", err)
	}
	if summary.RoomLinesCleared != 1 || summary.FoodLinesCleared != 1 {
		t.Errorf("Expected {1, 1} cleared, got %+v", summary)
	}
	if !summary.Cleared() {
		t.Error("Expected summary.Cleared() to be true")
	}

	// Subsequent checkout shows no outstanding charges
	bill, err = engine.Checkout(ctx, "alice")
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if bill.Outstanding() {
		t.Errorf("Expected no outstanding charges after settle, got %+v", bill)
	}
}

func TestSettleTwiceIsIdempotent(t *testing.T) {
	engine, l, _ := newTestEngine(t)
	ctx := context.Background()

	if err := l.RecordBooking(ctx, "bob", "Double", 2500); err != nil {
		t.Fatalf("RecordBooking failed: %v", err)
	}

	first, err := engine.Settle(ctx, "bob")
	if err != nil {
		t.Fatalf("First settle failed: %v", err)
	}
	if first.RoomLinesCleared != 1 {
		t.Errorf("First settle: expected 1 room line, got %+v", first)
	}

	second, err := engine.Settle(ctx, "bob")
	if err != nil {
		t.Fatalf("Second settle failed: %v", err)
	}
	if second.Cleared() {
		t.Errorf("Second settle: expected zero lines cleared, got %+v", second)
	}
}

// faultStore wraps a real store and fails the food-category update inside
// the settlement transaction, to exercise the rollback guarantee.
type faultStore struct {
	*sqlite.SQLiteStore
	fault error
}

func (f *faultStore) SettleCharges(ctx context.Context, username string, apply func(tx storage.ChargeUpdater) error) error {
	return f.SQLiteStore.SettleCharges(ctx, username, func(tx storage.ChargeUpdater) error {
		return apply(&faultUpdater{ChargeUpdater: tx, fault: f.fault})
	})
}

type faultUpdater struct {
	storage.ChargeUpdater
	fault error
}

func (f *faultUpdater) MarkPaid(ctx context.Context, category models.ChargeCategory, username string) (int64, error) {
	if category == models.CategoryFood {
		return 0, f.fault
	}
	return f.ChargeUpdater.MarkPaid(ctx, category, username)
}

func TestSettleRollsBackOnFoodFault(t *testing.T) {
	_, l, store := newTestEngine(t)
	ctx := context.Background()

	if err := l.RecordBooking(ctx, "carol", "Single", 1500); err != nil {
		t.Fatalf("RecordBooking failed: %v", err)
	}
	if err := l.RecordFoodOrder(ctx, "carol", 100); err != nil {
		t.Fatalf("RecordFoodOrder failed: %v", err)
	}

	fault := errors.New("simulated store fault")
	engine := NewEngine(&faultStore{SQLiteStore: store, fault: fault})

	_, err := engine.Settle(ctx, "carol")
	if !errors.Is(err, ErrSettlementFailed) {
		t.Fatalf("Expected ErrSettlementFailed, got %v", err)
	}

	// The room update must not have committed
	lines, err := store.UnpaidCharges(ctx, "carol")
	if err != nil {
		t.Fatalf("UnpaidCharges failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("Expected both lines still unpaid after rollback, got %d", len(lines))
	}
	for _, line := range lines {
		if line.Paid {
			t.Errorf("Line %s (%s) unexpectedly paid", line.ID, line.Category)
		}
	}
}
