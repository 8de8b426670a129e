package cart

import (
	"fmt"
	"strings"

	"vapextuc-storefront/internal/models"

	"github.com/google/uuid"
)

// CheckoutMessage is the order summary handed to the messaging
// collaborator: an opaque pre-filled text plus the fixed destination.
type CheckoutMessage struct {
	Reference   string `json:"reference"`
	Destination string `json:"destination"`
	Message     string `json:"message"`
	URL         string `json:"url,omitempty"`
	Total       int    `json:"total"`
	ItemCount   int    `json:"item_count"`
}

// BuildCheckoutMessage formats the line-itemized order summary. The
// layout is fixed: numbered items with category, flavor, quantity,
// unit price and subtotal, then a totals block and the source-site
// footer.
func (m *Manager) BuildCheckoutMessage() (*CheckoutMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.items) == 0 {
		m.notifier.Error("El carrito está vacío")
		return nil, models.ErrCartEmpty
	}

	out := &CheckoutMessage{
		Reference:   uuid.New().String(),
		Destination: m.opts.Destination,
	}

	var b strings.Builder
	fmt.Fprintf(&b, "¡Hola %s! 👋\n\n", m.opts.StoreName)
	b.WriteString("*DETALLE DEL PEDIDO:*\n")
	b.WriteString("══════════════════════\n\n")

	for i, item := range m.items {
		subtotal := item.Subtotal()
		out.Total += subtotal
		out.ItemCount += item.Quantity

		unit := "unidad"
		if item.Quantity > 1 {
			unit = "unidades"
		}

		fmt.Fprintf(&b, "*%d. %s*\n", i+1, item.Title)
		fmt.Fprintf(&b, "   • Categoría: %s\n", item.Category)
		fmt.Fprintf(&b, "   • Sabor: %s\n", item.Flavor)
		fmt.Fprintf(&b, "   • Cantidad: %d %s\n", item.Quantity, unit)
		fmt.Fprintf(&b, "   • Precio: %s c/u\n", FormatMoney(item.Price))
		fmt.Fprintf(&b, "   • Subtotal: %s\n\n", FormatMoney(subtotal))
	}

	b.WriteString("══════════════════════\n")
	b.WriteString("*RESUMEN DE COMPRA:*\n\n")
	fmt.Fprintf(&b, "📦 Total productos: %d\n", out.ItemCount)
	fmt.Fprintf(&b, "💰 *TOTAL A PAGAR: %s*\n", FormatMoney(out.Total))
	fmt.Fprintf(&b, "🧾 Referencia: %s\n\n", out.Reference)
	fmt.Fprintf(&b, "_Pedido generado desde %s_\n", m.opts.SiteURL)

	out.Message = b.String()
	return out, nil
}

// Checkout builds the order summary and asks the messenger to open the
// destination with it pre-filled.
func (m *Manager) Checkout() (*CheckoutMessage, error) {
	msg, err := m.BuildCheckoutMessage()
	if err != nil {
		return nil, err
	}

	link, err := m.messenger.Open(msg.Destination, msg.Message)
	if err != nil {
		m.notifier.Error("No se pudo abrir WhatsApp")
		return nil, fmt.Errorf("failed to open messenger: %w", err)
	}
	msg.URL = link

	m.notifier.Success("Redirigiendo a WhatsApp...")
	return msg, nil
}
