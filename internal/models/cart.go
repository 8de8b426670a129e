package models

// CartItem is one line item: a product plus the quantity in the cart.
// Invariants: Quantity >= 1, Quantity <= Stock, one item per ProductID.
// Title, Price, Flavor and Image mirror the catalog and are refreshed
// before every persist so the stored snapshot never drifts from it.
type CartItem struct {
	ProductID int    `json:"id"`
	Title     string `json:"title"`
	Price     int    `json:"price"` // unit price in minor currency units
	Category  string `json:"category"`
	Image     string `json:"image"`
	Stock     int    `json:"stock"`
	Flavor    string `json:"flavor"`
	Quantity  int    `json:"quantity"`
}

// Subtotal returns the line total in minor currency units.
func (i *CartItem) Subtotal() int {
	return i.Price * i.Quantity
}
