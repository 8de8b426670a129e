package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vapextuc-storefront/internal/cart"
	"vapextuc-storefront/internal/notify"

	"github.com/go-chi/chi/v5"
)

// CartHandler exposes the cart manager over HTTP.
type CartHandler struct {
	manager  *cart.Manager
	recorder *notify.Recorder
}

// NewCartHandler creates a new cart handler. recorder must be the
// notifier the manager reports through.
func NewCartHandler(manager *cart.Manager, recorder *notify.Recorder) *CartHandler {
	return &CartHandler{manager: manager, recorder: recorder}
}

// cartView is the full cart state a page render needs.
type cartView struct {
	Badge    cart.BadgeView    `json:"badge"`
	MiniCart cart.MiniCartView `json:"mini_cart"`
	Modal    cart.ModalView    `json:"modal"`
}

func (h *CartHandler) view() cartView {
	return cartView{
		Badge:    h.manager.Badge(),
		MiniCart: h.manager.MiniCart(),
		Modal:    h.manager.Modal(),
	}
}

// GetCart returns the current cart views.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{
		Data:          h.view(),
		Notifications: h.recorder.Drain(),
	})
}

// AddItem adds one unit of a product to the cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Error: "invalid request body"})
		return
	}

	if err := h.manager.AddItem(req.ID); err != nil {
		writeJSON(w, statusFor(err), response{
			Error:         err.Error(),
			Notifications: h.recorder.Drain(),
		})
		return
	}
	writeJSON(w, http.StatusOK, response{
		Data:          h.view(),
		Notifications: h.recorder.Drain(),
	})
}

// RemoveItem deletes a cart entry.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{Error: "invalid product ID"})
		return
	}

	if err := h.manager.RemoveItem(id); err != nil {
		writeJSON(w, statusFor(err), response{
			Error:         err.Error(),
			Notifications: h.recorder.Drain(),
		})
		return
	}
	writeJSON(w, http.StatusOK, response{
		Data:          h.view(),
		Notifications: h.recorder.Drain(),
	})
}

// UpdateQuantity sets the quantity of a cart entry. Zero removes it.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{Error: "invalid product ID"})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Error: "invalid request body"})
		return
	}

	if err := h.manager.SetQuantity(id, req.Quantity); err != nil {
		writeJSON(w, statusFor(err), response{
			Error:         err.Error(),
			Notifications: h.recorder.Drain(),
		})
		return
	}
	writeJSON(w, http.StatusOK, response{
		Data:          h.view(),
		Notifications: h.recorder.Drain(),
	})
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Clear(); err != nil {
		writeJSON(w, statusFor(err), response{
			Error:         err.Error(),
			Notifications: h.recorder.Drain(),
		})
		return
	}
	writeJSON(w, http.StatusOK, response{
		Data:          h.view(),
		Notifications: h.recorder.Drain(),
	})
}

// Checkout builds the order message and the WhatsApp link.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	msg, err := h.manager.Checkout()
	if err != nil {
		writeJSON(w, statusFor(err), response{
			Error:         err.Error(),
			Notifications: h.recorder.Drain(),
		})
		return
	}
	writeJSON(w, http.StatusOK, response{
		Data:          msg,
		Notifications: h.recorder.Drain(),
	})
}
