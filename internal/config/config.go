package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Port         string
	DBPath       string
	JWTSecret    string
	GeocoderURL  string
	Engine       EngineConfig
}

// EngineConfig holds the tuning constants for the path-health engine.
// Injected into the engine so policy changes never touch aggregation
// logic.
type EngineConfig struct {
	// Report signal
	Alpha           float64 // weight of a confirmed contribution on reliability
	Beta            float64 // weight of a rejected contribution on reliability
	HalfLifeMinutes float64 // freshness halves every HalfLifeMinutes
	MinReliability  float64
	MaxReliability  float64

	// Segment aggregation
	ReportMinReliability float64 // reports below this weight are discarded

	// Path cascade blend, ReportedWeight + AllWeight = 1
	ReportedWeight float64
	AllWeight      float64

	// Search
	BBoxToleranceDeg  float64 // per-axis endpoint tolerance, ~200m
	MaxDistanceMeters float64 // absolute nearness cutoff
	NearBufferMeters  float64 // admits near-tied candidates past the best match
}

// DefaultEngine returns the production tuning values.
func DefaultEngine() EngineConfig {
	return EngineConfig{
		Alpha:                0.2,
		Beta:                 0.3,
		HalfLifeMinutes:      7 * 24 * 60, // one week
		MinReliability:       0.1,
		MaxReliability:       1.0,
		ReportMinReliability: 0.2,
		ReportedWeight:       0.7,
		AllWeight:            0.3,
		BBoxToleranceDeg:     0.002,
		MaxDistanceMeters:    200,
		NearBufferMeters:     50,
	}
}

// Load reads configuration from the environment with defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/paths.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	geocoderURL := os.Getenv("GEOCODER_URL")
	if geocoderURL == "" {
		geocoderURL = "https://nominatim.openstreetmap.org/search"
	}

	return &Config{
		Port:        port,
		DBPath:      dbPath,
		JWTSecret:   jwtSecret,
		GeocoderURL: geocoderURL,
		Engine:      DefaultEngine(),
	}
}
