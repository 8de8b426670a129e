package handlers

import (
	"github.com/go-chi/chi/v5"

	"vapextuc-storefront/internal/middleware"
)

// NewRouter wires the storefront routes and middleware.
func NewRouter(carts *CartHandler, wheels *WheelHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.SecurityHeadersMiddleware)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", carts.GetCart)
		r.Delete("/", carts.ClearCart)
		r.Post("/items", carts.AddItem)
		r.Delete("/items/{id}", carts.RemoveItem)
		r.Put("/items/{id}", carts.UpdateQuantity)
		r.Post("/checkout", carts.Checkout)
	})

	r.Route("/wheel", func(r chi.Router) {
		r.Get("/", wheels.GetWheel)
		r.Get("/countdown", wheels.Countdown)
		r.Post("/register", wheels.Register)
		r.Post("/login", wheels.Login)
		r.Post("/logout", wheels.Logout)
		r.Post("/spin", wheels.Spin)
	})

	return r
}
