package cart

import (
	"fmt"
	"strconv"
	"strings"
)

// View models for the three derived cart renderings: the badge count,
// the mini list and the modal. They carry both raw minor-unit amounts
// and labels formatted the way the storefront prints money.

type BadgeView struct {
	Count int `json:"count"`
}

type MiniCartRow struct {
	ProductID int    `json:"id"`
	Title     string `json:"title"`
	Label     string `json:"label"` // "Descartables • $15.000 x 2"
	LineTotal int    `json:"line_total"`
	TotalTag  string `json:"total_tag"`
}

type MiniCartView struct {
	Rows       []MiniCartRow `json:"rows"`
	Total      int           `json:"total"`
	TotalLabel string        `json:"total_label"`
	Empty      bool          `json:"empty"`
}

type ModalRow struct {
	ProductID int    `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Flavor    string `json:"flavor"`
	Image     string `json:"image"`
	UnitPrice int    `json:"unit_price"`
	PriceTag  string `json:"price_tag"` // "$15.000 c/u"
	Quantity  int    `json:"quantity"`
	LineTotal int    `json:"line_total"`
	TotalTag  string `json:"total_tag"`
}

type ModalView struct {
	Rows       []ModalRow `json:"rows"`
	Total      int        `json:"total"`
	TotalLabel string     `json:"total_label"`
	ItemCount  int        `json:"item_count"`
	Empty      bool       `json:"empty"`
}

// Badge returns the total quantity across all line items.
func (m *Manager) Badge() BadgeView {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, item := range m.items {
		count += item.Quantity
	}
	return BadgeView{Count: count}
}

// MiniCart builds the compact list shown under the cart button.
func (m *Manager) MiniCart() MiniCartView {
	m.mu.Lock()
	defer m.mu.Unlock()

	view := MiniCartView{Rows: []MiniCartRow{}, Empty: len(m.items) == 0}
	for _, item := range m.items {
		lineTotal := item.Subtotal()
		view.Total += lineTotal
		view.Rows = append(view.Rows, MiniCartRow{
			ProductID: item.ProductID,
			Title:     item.Title,
			Label:     fmt.Sprintf("%s • %s x %d", item.Category, FormatMoney(item.Price), item.Quantity),
			LineTotal: lineTotal,
			TotalTag:  FormatMoney(lineTotal),
		})
	}
	view.TotalLabel = FormatMoney(view.Total)
	return view
}

// Modal builds the full cart view with per-item detail and totals.
func (m *Manager) Modal() ModalView {
	m.mu.Lock()
	defer m.mu.Unlock()

	view := ModalView{Rows: []ModalRow{}, Empty: len(m.items) == 0}
	for _, item := range m.items {
		lineTotal := item.Subtotal()
		view.Total += lineTotal
		view.ItemCount += item.Quantity
		view.Rows = append(view.Rows, ModalRow{
			ProductID: item.ProductID,
			Title:     item.Title,
			Category:  item.Category,
			Flavor:    item.Flavor,
			Image:     item.Image,
			UnitPrice: item.Price,
			PriceTag:  FormatMoney(item.Price) + " c/u",
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
			TotalTag:  FormatMoney(lineTotal),
		})
	}
	view.TotalLabel = FormatMoney(view.Total)
	return view
}

// FormatMoney prints a minor-unit amount the way the storefront does:
// a $ sign and dot-grouped thousands ($15.000).
func FormatMoney(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return "$" + sign + strings.Join(groups, ".")
}
