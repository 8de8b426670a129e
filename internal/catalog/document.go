package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"vapextuc-storefront/internal/models"
)

// Document is a Provider backed by a JSON product document on disk.
// Reload re-reads the file, so price edits show up at the next read,
// which the cart's refresh pass then picks up.
type Document struct {
	mu       sync.RWMutex
	path     string
	products map[int]models.Product
}

// documentEntry decodes one catalog row. Stock is a pointer so an
// absent field can fall back to DefaultStock without turning a real
// zero (sold out) into the default.
type documentEntry struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Stock    *int   `json:"stock"`
	Flavor   string `json:"flavor"`
}

// OpenDocument loads the catalog file at path.
func OpenDocument(path string) (*Document, error) {
	d := &Document{path: path}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload re-reads the document from disk, replacing the catalog
// wholesale.
func (d *Document) Reload() error {
	raw, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("failed to read catalog %s: %w", d.path, err)
	}

	var entries []documentEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("failed to decode catalog %s: %w", d.path, err)
	}

	products := make(map[int]models.Product, len(entries))
	for _, e := range entries {
		p := models.Product{
			ID:       e.ID,
			Title:    e.Title,
			Price:    e.Price,
			Category: e.Category,
			Image:    e.Image,
			Stock:    DefaultStock,
			Flavor:   e.Flavor,
		}
		if e.Stock != nil {
			p.Stock = *e.Stock
		}
		normalize(&p)
		products[p.ID] = p
	}

	d.mu.Lock()
	d.products = products
	d.mu.Unlock()
	return nil
}

// Product returns the current attributes of one product.
func (d *Document) Product(id int) (*models.Product, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, ok := d.products[id]
	if !ok {
		return nil, notFound(id)
	}
	return &p, nil
}

// Products lists the catalog ordered by id.
func (d *Document) Products() ([]*models.Product, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*models.Product, 0, len(d.products))
	for _, p := range d.products {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
