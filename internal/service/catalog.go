package service

// RoomType is a bookable room category with its nightly price.
type RoomType struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// MenuItem is an orderable food item with its price.
type MenuItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// The shell owns the price lists; the ledger only checks that amounts
// are positive.
var (
	roomCatalog = []RoomType{
		{Name: "Single", Price: 1500},
		{Name: "Double", Price: 2500},
		{Name: "Suite", Price: 4000},
	}

	foodMenu = []MenuItem{
		{Name: "Pizza", Price: 150},
		{Name: "Burger", Price: 100},
		{Name: "Tea", Price: 50},
	}
)

// roomPrice looks up a room type by name.
func roomPrice(name string) (int64, bool) {
	for _, room := range roomCatalog {
		if room.Name == name {
			return room.Price, true
		}
	}
	return 0, false
}

// itemPrice looks up a menu item by name.
func itemPrice(name string) (int64, bool) {
	for _, item := range foodMenu {
		if item.Name == name {
			return item.Price, true
		}
	}
	return 0, false
}
