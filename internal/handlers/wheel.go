package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vapextuc-storefront/internal/account"
	"vapextuc-storefront/internal/middleware"
	"vapextuc-storefront/internal/models"
	"vapextuc-storefront/internal/notify"
	"vapextuc-storefront/internal/wheel"
)

// WheelHandler exposes the prize wheel and its account flow over HTTP.
type WheelHandler struct {
	wheel    *wheel.Wheel
	renderer *wheel.Renderer
	accounts *account.Service
	sessions *middleware.SessionMiddleware
	recorder *notify.Recorder
}

// NewWheelHandler creates a new wheel handler.
func NewWheelHandler(
	w *wheel.Wheel,
	renderer *wheel.Renderer,
	accounts *account.Service,
	sessions *middleware.SessionMiddleware,
	recorder *notify.Recorder,
) *WheelHandler {
	return &WheelHandler{
		wheel:    w,
		renderer: renderer,
		accounts: accounts,
		sessions: sessions,
		recorder: recorder,
	}
}

// accountView is the account as shown to the page. The password hash
// never leaves the store.
type accountView struct {
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	RegistrationDate time.Time           `json:"registration_date"`
	LastSpin         *time.Time          `json:"last_spin,omitempty"`
	SpinHistory      []models.SpinRecord `json:"spin_history"`
}

func viewOf(a *models.Account) *accountView {
	return &accountView{
		Name:             a.Name,
		Email:            a.Email,
		RegistrationDate: a.RegistrationDate,
		LastSpin:         a.LastSpin,
		SpinHistory:      a.SpinHistory,
	}
}

// wheelView is the full wheel state a page render needs.
type wheelView struct {
	Prizes        []models.Prize   `json:"prizes"`
	DisplayPrizes []models.Prize   `json:"display_prizes"`
	Layout        wheel.Layout     `json:"layout"`
	Account       *accountView     `json:"account,omitempty"`
	CanSpin       bool             `json:"can_spin"`
	Countdown     *wheel.Remaining `json:"countdown,omitempty"`
}

// GetWheel returns the wheel state: prize lists, segment layout and
// the logged-in account with its cooldown.
func (h *WheelHandler) GetWheel(w http.ResponseWriter, r *http.Request) {
	view := wheelView{
		Prizes:        h.wheel.Table().Prizes(),
		DisplayPrizes: wheel.DisplayPrizes(),
		Layout:        h.renderer.Layout(0),
	}

	acct, err := h.accounts.Current()
	switch {
	case err == nil:
		view.Account = viewOf(acct)
		view.CanSpin = acct.CanSpin(time.Now())
		if remaining, err := h.wheel.Countdown(); err == nil {
			view.Countdown = &remaining
		}
	case errors.Is(err, models.ErrNotLoggedIn):
		// Logged-out visitors still see the wheel.
	default:
		writeJSON(w, statusFor(err), response{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, response{
		Data:          view,
		Notifications: h.recorder.Drain(),
	})
}

// Register creates an account and logs it in.
func (h *WheelHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Error: "invalid request body"})
		return
	}

	acct, err := h.accounts.Register(&req)
	if err != nil {
		writeJSON(w, statusFor(err), response{
			Error:         err.Error(),
			Notifications: h.recorder.Drain(),
		})
		return
	}

	if err := h.sessions.SetAccount(w, r, acct.Email); err != nil {
		writeJSON(w, http.StatusInternalServerError, response{Error: "failed to save session"})
		return
	}
	writeJSON(w, http.StatusCreated, response{
		Data:          viewOf(acct),
		Notifications: h.recorder.Drain(),
	})
}

// Login authenticates against the account store.
func (h *WheelHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Error: "invalid request body"})
		return
	}

	acct, err := h.accounts.Login(req.Email, req.Password)
	if err != nil {
		writeJSON(w, statusFor(err), response{
			Error:         err.Error(),
			Notifications: h.recorder.Drain(),
		})
		return
	}

	if err := h.sessions.SetAccount(w, r, acct.Email); err != nil {
		writeJSON(w, http.StatusInternalServerError, response{Error: "failed to save session"})
		return
	}
	writeJSON(w, http.StatusOK, response{
		Data:          viewOf(acct),
		Notifications: h.recorder.Drain(),
	})
}

// Logout drops the current account.
func (h *WheelHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.Logout(); err != nil {
		writeJSON(w, statusFor(err), response{Error: err.Error()})
		return
	}
	if err := h.sessions.SetAccount(w, r, ""); err != nil {
		writeJSON(w, http.StatusInternalServerError, response{Error: "failed to save session"})
		return
	}
	writeJSON(w, http.StatusOK, response{Notifications: h.recorder.Drain()})
}

// Spin runs one full wheel spin and returns the outcome.
func (h *WheelHandler) Spin(w http.ResponseWriter, r *http.Request) {
	result, err := h.wheel.Spin(r.Context(), nil)
	if err != nil {
		writeJSON(w, statusFor(err), response{
			Error:         err.Error(),
			Notifications: h.recorder.Drain(),
		})
		return
	}
	writeJSON(w, http.StatusOK, response{
		Data:          result,
		Notifications: h.recorder.Drain(),
	})
}

// Countdown returns the time left until the next allowed spin.
func (h *WheelHandler) Countdown(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.wheel.Countdown()
	if err != nil {
		writeJSON(w, statusFor(err), response{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, response{Data: remaining})
}
