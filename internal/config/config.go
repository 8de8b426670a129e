package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Session  SessionConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
	Wheel    WheelConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type StoreConfig struct {
	Path string // sqlite file backing the snapshot store
}

type SessionConfig struct {
	Secret string
}

type CatalogConfig struct {
	Path string // JSON product document; empty means built-in sample catalog
}

type CheckoutConfig struct {
	WhatsAppNumber string
	StoreName      string
	SiteURL        string
}

type WheelConfig struct {
	SpinDuration  time.Duration
	FrameInterval time.Duration
	FullRotations int
	CanvasSize    int
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "storefront.db"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
		Checkout: CheckoutConfig{
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "+5493813256714"),
			StoreName:      getEnv("STORE_NAME", "VapexTuc"),
			SiteURL:        getEnv("SITE_URL", "https://vapextuc.netlify.app"),
		},
		Wheel: WheelConfig{
			SpinDuration:  time.Duration(getEnvAsInt("SPIN_DURATION_MS", 4000)) * time.Millisecond,
			FrameInterval: time.Duration(getEnvAsInt("SPIN_FRAME_MS", 16)) * time.Millisecond,
			FullRotations: getEnvAsInt("SPIN_FULL_ROTATIONS", 5),
			CanvasSize:    getEnvAsInt("WHEEL_CANVAS_SIZE", 500),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
