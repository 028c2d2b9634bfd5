package models

// ChargeCategory distinguishes the two kinds of billable events.
type ChargeCategory string

const (
	// CategoryRoom marks a charge created by a room booking.
	CategoryRoom ChargeCategory = "room"

	// CategoryFood marks a charge created by a food order.
	CategoryFood ChargeCategory = "food"
)

// ChargeLine represents one billable event for a guest: a room booking or
// a food order. Lines are created unpaid and the paid flag flips one way
// only, during settlement. Lines are never deleted.
type ChargeLine struct {
	// ID is the unique identifier for the charge line (UUID format).
	ID string

	// Username is the guest this charge belongs to.
	Username string

	// Category is either CategoryRoom or CategoryFood.
	Category ChargeCategory

	// RoomType names the booked room ("Single", "Double", "Suite").
	// Empty for food charges.
	RoomType string

	// Amount is the charge in the smallest currency unit. Always positive.
	Amount int64

	// Paid reports whether the charge has been settled.
	Paid bool

	// CreatedAt is the Unix timestamp when the charge was recorded.
	CreatedAt int64
}
