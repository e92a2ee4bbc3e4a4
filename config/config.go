// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables
)

type Config struct { // Config struct holds all configuration values
	Port       string // Port the HTTP server listens on
	DBPath     string // Path to the SQLite database file
	JWTSecret  string // Secret key for JWT authentication
	StripeKey  string // Secret key for the Stripe payment provider
	MQTTBroker string // Address of the MQTT broker ("" disables event publishing)
	SeedAdmin  bool   // Whether to seed a default admin user at startup
	AdminEmail string // Email the admin role is granted to
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		Port:       getEnv("PORT", "5000"),                // Get server port or use default
		DBPath:     getEnv("DB_PATH", "toolexpress.db"),   // Get DB path or use default
		JWTSecret:  getEnv("ACCESS_TOKEN", "supersecret"), // Get JWT secret or use default
		StripeKey:  getEnv("STRIPE_SECRET_KEY", ""),       // Stripe secret key (empty disables intents)
		MQTTBroker: getEnv("MQTT_BROKER", ""),             // MQTT broker address (optional)
		SeedAdmin:  getEnv("SEED_ADMIN", "") == "true",    // Seed admin only if explicitly enabled
		AdminEmail: getEnv("ADMIN_EMAIL", ""),             // Email of the seeded admin user
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
