package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"vapextuc-storefront/internal/account"
	"vapextuc-storefront/internal/cart"
	"vapextuc-storefront/internal/catalog"
	"vapextuc-storefront/internal/config"
	"vapextuc-storefront/internal/database"
	"vapextuc-storefront/internal/handlers"
	"vapextuc-storefront/internal/middleware"
	"vapextuc-storefront/internal/notify"
	"vapextuc-storefront/internal/storage"
	"vapextuc-storefront/internal/wheel"

	"github.com/google/logger"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	defer logger.Init("storefront", cfg.Server.Env == "development", false, os.Stderr).Close()

	// Initialize the snapshot store
	db, err := database.NewConnection(cfg.Store.Path)
	if err != nil {
		log.Fatal("Failed to open snapshot store:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Println("Snapshot store ready")

	store := storage.NewStore(db.DB)

	// Load the product catalog
	var provider catalog.Provider
	if cfg.Catalog.Path != "" {
		doc, err := catalog.OpenDocument(cfg.Catalog.Path)
		if err != nil {
			log.Fatal("Failed to load catalog:", err)
		}
		provider = doc
		log.Printf("Catalog loaded from %s", cfg.Catalog.Path)
	} else {
		provider = catalog.Sample()
		log.Println("Using the built-in sample catalog")
	}

	// Notifications from both widgets are drained into responses
	recorder := &notify.Recorder{}

	manager, err := cart.NewManager(store, provider, recorder, cart.WhatsApp{}, cart.CheckoutOptions{
		Destination: cfg.Checkout.WhatsAppNumber,
		StoreName:   cfg.Checkout.StoreName,
		SiteURL:     cfg.Checkout.SiteURL,
	})
	if err != nil {
		log.Fatal("Failed to initialize cart:", err)
	}

	accounts := account.NewService(store)

	table := wheel.DefaultTable()
	wh := wheel.New(table, accounts, recorder,
		wheel.WithTiming(cfg.Wheel.SpinDuration, cfg.Wheel.FrameInterval),
		wheel.WithRotations(cfg.Wheel.FullRotations),
	)
	renderer := wheel.NewRenderer(table, cfg.Wheel.CanvasSize)

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
	}
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore)

	router := handlers.NewRouter(
		handlers.NewCartHandler(manager, recorder),
		handlers.NewWheelHandler(wh, renderer, accounts, sessionMiddleware, recorder),
	)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Storefront listening on http://%s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
