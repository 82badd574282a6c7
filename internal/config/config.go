package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Google Sign-In
	GoogleClientID string

	// Image host
	ImageHostURL     string
	ImageHostAPIKey  string
	ImageHostTimeout time.Duration

	// Admin
	AdminEmails  string
	AdminUserIDs string
	AdminToken   string

	// Server
	Port        string
	CORSOrigins string

	// Gallery tuning
	Gallery GalleryConfig
}

// GalleryConfig holds the spatial tuning values for the 3D viewer.
// The scale factor and fallback size were carried over from the original
// visual tuning; they are configuration values, not derived quantities.
type GalleryConfig struct {
	// Spacing between adjacent murals along the hall axis.
	Spacing float64
	// Margins between the outermost murals and the end walls.
	WallMarginInitial float64
	WallMarginFinal   float64
	// Multiplier applied to parsed meter dimensions.
	DimensionScale float64
	// Fallback mural size when the dimensions string is unusable.
	DefaultWidth  float64
	DefaultHeight float64
	// A room never renders shorter than this.
	MinHallLength float64
	// One fixture per span of hall length, floored at MinFixtures.
	LightSpan   float64
	LampSpan    float64
	MinFixtures int
	// Proximity zone threshold and polling cadence.
	ProximityThreshold float64
	PollInterval       time.Duration
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "murales_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		ImageHostURL:     getEnv("IMAGE_HOST_URL", "https://api.imgbb.com/1/upload"),
		ImageHostAPIKey:  getEnv("IMAGE_HOST_API_KEY", ""),
		ImageHostTimeout: parseDuration(getEnv("IMAGE_HOST_TIMEOUT", "30s")),

		AdminEmails:  getEnv("ADMIN_EMAILS", ""),
		AdminUserIDs: getEnv("ADMIN_USER_IDS", ""),
		AdminToken:   getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		Gallery: LoadGallery(),
	}
}

func LoadGallery() GalleryConfig {
	return GalleryConfig{
		Spacing:            parseFloat(getEnv("GALLERY_SPACING", ""), 2),
		WallMarginInitial:  parseFloat(getEnv("GALLERY_WALL_MARGIN_INITIAL", ""), 10),
		WallMarginFinal:    parseFloat(getEnv("GALLERY_WALL_MARGIN_FINAL", ""), 10),
		DimensionScale:     parseFloat(getEnv("GALLERY_DIMENSION_SCALE", ""), 10),
		DefaultWidth:       parseFloat(getEnv("GALLERY_DEFAULT_WIDTH", ""), 200),
		DefaultHeight:      parseFloat(getEnv("GALLERY_DEFAULT_HEIGHT", ""), 300),
		MinHallLength:      parseFloat(getEnv("GALLERY_MIN_HALL_LENGTH", ""), 40),
		LightSpan:          parseFloat(getEnv("GALLERY_LIGHT_SPAN", ""), 30),
		LampSpan:           parseFloat(getEnv("GALLERY_LAMP_SPAN", ""), 45),
		MinFixtures:        parseInt(getEnv("GALLERY_MIN_FIXTURES", ""), 2),
		ProximityThreshold: parseFloat(getEnv("GALLERY_PROXIMITY_THRESHOLD", ""), 2),
		PollInterval:       parseDuration(getEnv("GALLERY_POLL_INTERVAL", "500ms")),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

func parseFloat(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
