// Package catalog is the cart's read-through source of truth for
// product attributes. The cart asks the provider again on every
// mutation instead of trusting its own copy, so a price or flavor
// edit is visible the moment it lands in the catalog.
package catalog

import (
	"strconv"

	"vapextuc-storefront/internal/models"
)

// DefaultFlavor is reported when a product carries no flavor tag.
const DefaultFlavor = "No especificado"

// DefaultStock is assumed when a product does not declare stock.
const DefaultStock = 10

// Provider serves current product attributes.
type Provider interface {
	// Product returns the product by id, or *models.NotFoundError.
	Product(id int) (*models.Product, error)
	// Products lists the whole catalog.
	Products() ([]*models.Product, error)
}

func notFound(id int) error {
	return &models.NotFoundError{Resource: "product", Key: strconv.Itoa(id)}
}

// normalize fills the defaults the storefront presentation guarantees.
func normalize(p *models.Product) {
	if p.Flavor == "" {
		p.Flavor = DefaultFlavor
	}
}
