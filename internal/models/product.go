package models

// Product is one catalog entry as the storefront currently presents
// it. Prices are in minor currency units (centavos). The cart never
// trusts a cached Product: price, flavor and stock are re-read from
// the catalog provider on every mutation.
type Product struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Stock    int    `json:"stock"`
	Flavor   string `json:"flavor"`
}
