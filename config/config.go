package config

import "time"

// AppConfig carries everything main wires from the environment besides the
// database connection.
type AppConfig struct {
	Port          string
	AdminUsername string
	AdminPassword string // plaintext or bcrypt hash
	SessionSecret string
	SessionTTL    time.Duration
	UploadDir     string
}

func LoadAppConfig() AppConfig {
	return AppConfig{
		Port:          envOrDefault("PORT", "8080"),
		AdminUsername: envOrDefault("ADMIN_USERNAME", ""),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", ""),
		SessionSecret: envOrDefault("SESSION_SECRET", ""),
		SessionTTL:    24 * time.Hour,
		UploadDir:     envOrDefault("UPLOAD_DIR", "./uploads"),
	}
}
