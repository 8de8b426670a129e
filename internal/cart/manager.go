// Package cart owns the shopping cart: an ordered list of line items
// mirrored to the snapshot store on every mutation, with the catalog
// provider as the source of truth for prices, flavors and stock.
package cart

import (
	"fmt"
	"sync"

	"vapextuc-storefront/internal/catalog"
	"vapextuc-storefront/internal/models"
	"vapextuc-storefront/internal/notify"
	"vapextuc-storefront/internal/storage"
)

// Messenger is the outbound hand-off collaborator. Open asks the
// external messaging app to open a conversation with the destination,
// message pre-filled, and returns the link it opened. No response is
// awaited or parsed.
type Messenger interface {
	Open(destination, message string) (string, error)
}

// CheckoutOptions fixes the hand-off destination and the strings woven
// into the order summary.
type CheckoutOptions struct {
	Destination string // WhatsApp number, kept verbatim in the wa.me link
	StoreName   string
	SiteURL     string
}

// Manager owns the cart state. All operations are synchronous and run
// to completion; the mutex only serializes the HTTP glue on top.
type Manager struct {
	mu        sync.Mutex
	items     []models.CartItem
	store     storage.Snapshots
	catalog   catalog.Provider
	notifier  notify.Notifier
	messenger Messenger
	opts      CheckoutOptions
	autoOpen  func()
}

// Option configures a Manager.
type Option func(*Manager)

// WithAutoOpen registers the hook fired after a successful add, when
// the cart view should open shortly after.
func WithAutoOpen(fn func()) Option {
	return func(m *Manager) { m.autoOpen = fn }
}

// NewManager loads the persisted cart snapshot, refreshes it against
// the catalog and persists the result, so the stored cart never starts
// a session stale.
func NewManager(store storage.Snapshots, provider catalog.Provider, notifier notify.Notifier, messenger Messenger, opts CheckoutOptions, options ...Option) (*Manager, error) {
	m := &Manager{
		store:     store,
		catalog:   provider,
		notifier:  notifier,
		messenger: messenger,
		opts:      opts,
	}
	for _, opt := range options {
		opt(m)
	}

	if _, err := storage.GetJSON(store, storage.KeyCart, &m.items); err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if err := m.persistLocked(); err != nil {
		return nil, err
	}
	return m, nil
}

// AddItem puts one unit of the product in the cart, reading every
// attribute from the catalog at add-time. An existing entry has its
// price, title and flavor refreshed before the quantity bump; the bump
// is rejected when it would exceed the current stock.
func (m *Manager) AddItem(productID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.catalog.Product(productID)
	if err != nil {
		m.notifier.Error("Producto no encontrado")
		return err
	}

	if item := m.findLocked(productID); item != nil {
		if item.Quantity >= p.Stock {
			m.notifier.Error(fmt.Sprintf("No hay más stock disponible. Máximo: %d", p.Stock))
			return &models.QuotaError{Resource: "stock", Limit: p.Stock, Unit: "units"}
		}
		item.Title = p.Title
		item.Price = p.Price
		item.Flavor = p.Flavor
		item.Stock = p.Stock
		item.Quantity++
	} else {
		m.items = append(m.items, models.CartItem{
			ProductID: p.ID,
			Title:     p.Title,
			Price:     p.Price,
			Category:  p.Category,
			Image:     p.Image,
			Stock:     p.Stock,
			Flavor:    p.Flavor,
			Quantity:  1,
		})
	}

	if err := m.persistLocked(); err != nil {
		return err
	}

	m.notifier.Success(fmt.Sprintf("✓ %s agregado al carrito", p.Title))
	if m.autoOpen != nil {
		m.autoOpen()
	}
	return nil
}

// RemoveItem deletes the matching entry. Removing an absent id is a
// no-op.
func (m *Manager) RemoveItem(productID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeLocked(productID)
}

func (m *Manager) removeLocked(productID int) error {
	kept := m.items[:0]
	removed := false
	for _, item := range m.items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil
	}
	m.items = kept

	if err := m.persistLocked(); err != nil {
		return err
	}
	m.notifier.Info("Producto eliminado del carrito")
	return nil
}

// SetQuantity sets the quantity of an existing entry. Values above the
// current stock leave the cart unchanged; zero or less removes the
// entry. Setting quantity on an absent id is a no-op.
func (m *Manager) SetQuantity(productID, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := m.findLocked(productID)
	if item == nil {
		return nil
	}

	stock := item.Stock
	if p, err := m.catalog.Product(productID); err == nil {
		stock = p.Stock
	}

	if quantity > stock {
		m.notifier.Error(fmt.Sprintf("No hay suficiente stock. Máximo: %d", stock))
		return &models.QuotaError{Resource: "stock", Limit: stock, Unit: "units"}
	}
	if quantity <= 0 {
		return m.removeLocked(productID)
	}

	item.Quantity = quantity
	return m.persistLocked()
}

// RefreshPrices re-reads every entry from the catalog and overwrites
// price, flavor and image where they changed. It reports whether
// anything changed so callers can skip a redundant re-render.
func (m *Manager) RefreshPrices() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	changed := m.refreshLocked()
	if !changed {
		return false, nil
	}
	return true, storage.PutJSON(m.store, storage.KeyCart, m.items)
}

func (m *Manager) refreshLocked() bool {
	changed := false
	for i := range m.items {
		p, err := m.catalog.Product(m.items[i].ProductID)
		if err != nil {
			continue
		}
		if m.items[i].Price != p.Price {
			m.items[i].Price = p.Price
			changed = true
		}
		if m.items[i].Flavor != p.Flavor {
			m.items[i].Flavor = p.Flavor
			changed = true
		}
		if p.Image != "" && m.items[i].Image != p.Image {
			m.items[i].Image = p.Image
			changed = true
		}
		m.items[i].Stock = p.Stock
	}
	return changed
}

// Clear empties the cart.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = []models.CartItem{}
	if err := m.persistLocked(); err != nil {
		return err
	}
	m.notifier.Info("Carrito vaciado")
	return nil
}

// Items returns a copy of the current line items.
func (m *Manager) Items() []models.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.CartItem, len(m.items))
	copy(out, m.items)
	return out
}

// persistLocked refreshes the snapshot against the catalog and writes
// it wholesale, so the stored cart never drifts from the catalog.
func (m *Manager) persistLocked() error {
	m.refreshLocked()
	if err := storage.PutJSON(m.store, storage.KeyCart, m.items); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

func (m *Manager) findLocked(productID int) *models.CartItem {
	for i := range m.items {
		if m.items[i].ProductID == productID {
			return &m.items[i]
		}
	}
	return nil
}
