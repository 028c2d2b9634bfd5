package models

// Bill is a derived view over a guest's unpaid charge lines. It holds no
// identity of its own and is recomputed on every checkout.
type Bill struct {
	// RoomTotal is the sum of all unpaid room charges.
	RoomTotal int64

	// FoodTotal is the sum of all unpaid food charges.
	FoodTotal int64

	// GrandTotal is RoomTotal + FoodTotal.
	GrandTotal int64
}

// Outstanding reports whether the guest owes anything. Callers use this to
// distinguish an itemized bill from the "no outstanding charges" state.
func (b *Bill) Outstanding() bool {
	return b.GrandTotal > 0
}

// SettlementSummary reports how many charge lines a settlement cleared,
// per category. Both counts zero means there was nothing to pay.
type SettlementSummary struct {
	RoomLinesCleared int64
	FoodLinesCleared int64
}

// Cleared reports whether the settlement actually flipped any lines.
func (s *SettlementSummary) Cleared() bool {
	return s.RoomLinesCleared > 0 || s.FoodLinesCleared > 0
}
