package catalog

import (
	"sort"
	"sync"

	"vapextuc-storefront/internal/models"
)

// Static is an in-memory Provider. The setters stand in for the live
// storefront edits (price changes, restocks) that the cart's refresh
// pass has to notice; tests and the built-in sample catalog use it.
type Static struct {
	mu       sync.RWMutex
	products map[int]models.Product
}

// NewStatic builds a Static provider from the given products.
func NewStatic(products ...models.Product) *Static {
	s := &Static{products: make(map[int]models.Product, len(products))}
	for _, p := range products {
		normalize(&p)
		s.products[p.ID] = p
	}
	return s
}

func (s *Static) Product(id int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, notFound(id)
	}
	return &p, nil
}

func (s *Static) Products() ([]*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Product, 0, len(s.products))
	for _, p := range s.products {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SetPrice updates a product's price in minor currency units.
func (s *Static) SetPrice(id, price int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		p.Price = price
		s.products[id] = p
	}
}

// SetStock updates a product's available stock.
func (s *Static) SetStock(id, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		p.Stock = stock
		s.products[id] = p
	}
}

// SetFlavor updates a product's flavor tag.
func (s *Static) SetFlavor(id int, flavor string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		p.Flavor = flavor
		normalize(&p)
		s.products[id] = p
	}
}

// Remove drops a product from the catalog.
func (s *Static) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
}

// Sample is the built-in catalog used when no document is configured.
func Sample() *Static {
	return NewStatic(
		models.Product{ID: 1, Title: "Vapex One 8000", Price: 15000, Category: "Descartables", Stock: 12, Flavor: "Menta"},
		models.Product{ID: 2, Title: "Vapex One 8000", Price: 15000, Category: "Descartables", Stock: 8, Flavor: "Sandía"},
		models.Product{ID: 3, Title: "Vapex Max 12000", Price: 22500, Category: "Descartables", Stock: 5, Flavor: "Uva"},
		models.Product{ID: 4, Title: "Pod Recargable X2", Price: 38000, Category: "Recargables", Stock: 3, Flavor: "Tabaco"},
	)
}
